package config

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = "phebe.yml"

// DefaultConfig returns a Config that serves the embedded site on port 3000.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":3000",
		Site: SiteConfig{
			Title:       "Arend van Beelen jr.",
			Author:      "Arend van Beelen jr.",
			Description: "Personal website of Arend van Beelen jr.: people, projects and the occasional article.",
			URL:         "https://arendjr.nl",
		},
		Log: LogConfig{
			Level:      LogInfo,
			Format:     LogFormatText,
			MaxSizeMB:  10,
			MaxAgeDays: 28,
			MaxBackups: 3,
		},
	}
}
