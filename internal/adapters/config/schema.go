package config

// Filename is the configuration file looked up in the working directory.
const Filename = "depcollect.yaml"

// File represents the structure of the depcollect.yaml configuration file.
type File struct {
	Probe ProbeDTO `yaml:"probe"`
	Log   LogDTO   `yaml:"log"`
}

// ProbeDTO configures the dependency introspection tool.
type ProbeDTO struct {
	Command  string            `yaml:"command"`
	Args     []string          `yaml:"args"`
	CleanEnv bool              `yaml:"cleanEnv"`
	Env      map[string]string `yaml:"env"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level string `yaml:"level"`
}
