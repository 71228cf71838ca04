package config

// Lodefile represents the structure of the lode.yaml configuration file.
type Lodefile struct {
	Version string `yaml:"version"`
	Entry   string `yaml:"entry"`
	Workdir string `yaml:"workdir"`
}
