package domain

// Config holds the host configuration loaded from the lodefile.
type Config struct {
	// Entry is the entry module specifier to resolve. May be overridden on
	// the command line.
	Entry string

	// Workdir is the base directory for entry resolution. Empty means the
	// process working directory.
	Workdir string
}
