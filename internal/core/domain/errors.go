package domain

import "go.trai.ch/zerr"

var (
	// ErrBaseUnresolvable is returned when the base path for a resolution
	// cannot be determined (e.g., the working directory is unavailable).
	ErrBaseUnresolvable = zerr.New("cannot determine base path")

	// ErrSourceNotFound is returned when a module path does not exist or
	// denotes a directory.
	ErrSourceNotFound = zerr.New("module file not found")

	// ErrSourceRead is returned when a module file cannot be opened or fully read.
	ErrSourceRead = zerr.New("failed to read module source")

	// ErrParse is returned (wrapped) by engine adapters when source cannot be
	// parsed as a module.
	ErrParse = zerr.New("failed to parse module")

	// ErrDuplicateModule is returned when inserting a cache entry whose
	// (realm, canonical path) key is already present.
	ErrDuplicateModule = zerr.New("module already cached")

	// ErrNoEntry is returned when neither the command line nor the config
	// file names an entry module.
	ErrNoEntry = zerr.New("no entry module specified")

	// ErrResolutionFailed is returned when resolving a module graph fails.
	ErrResolutionFailed = zerr.New("module resolution failed")

	// ErrConfigNotFound is returned when the lodefile cannot be found.
	ErrConfigNotFound = zerr.New("could not find lodefile")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrReportWriteFailed is returned when a resolution report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write resolution report")

	// ErrContextClosed is returned when an engine context is used after Close.
	ErrContextClosed = zerr.New("engine context is closed")
)
