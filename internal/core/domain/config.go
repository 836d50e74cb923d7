package domain

// ManifestFilename is the name of the manifest written into the staging root.
const ManifestFilename = "depending-on.yaml"

// DefaultProbeCommand is the introspection tool used when none is configured.
const DefaultProbeCommand = "ldd"

// Config holds the settings that influence a collection run.
type Config struct {
	Probe    ProbeConfig
	LogLevel LogLevel
}

// ProbeConfig describes how the introspection tool is invoked.
type ProbeConfig struct {
	// Command is the tool name or path.
	Command string
	// Args are placed before the binary path.
	Args []string
	// CleanEnv runs the tool without inheriting the process environment.
	CleanEnv bool
	// Env holds extra variables applied on top of the base environment.
	Env map[string]string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Probe: ProbeConfig{
			Command: DefaultProbeCommand,
		},
		LogLevel: LogLevelInfo,
	}
}
