package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Archive      ArchiveConfig
	Sheets       SheetsConfig
	Snapshots    SnapshotConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Archive:      loadArchive(),
		Sheets:       loadSheets(),
		Snapshots:    loadSnapshots(),
		Metrics:      loadMetrics(),
	}
}
