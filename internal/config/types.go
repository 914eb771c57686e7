package config

// LogLevel is the minimum severity written to the log.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the top-level phebe configuration, corresponding to phebe.yml.
type Config struct {
	ListenAddr string     `yaml:"listen_addr" koanf:"listen_addr"`
	ContentDir string     `yaml:"content_dir" koanf:"content_dir"`
	StaticDir  string     `yaml:"static_dir" koanf:"static_dir"`
	Site       SiteConfig `yaml:"site" koanf:"site"`
	Log        LogConfig  `yaml:"log" koanf:"log"`
	CORS       CORSConfig `yaml:"cors" koanf:"cors"`
}

// SiteConfig is the metadata written into every document and the feed.
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	Author      string `yaml:"author" koanf:"author"`
	Description string `yaml:"description" koanf:"description"`
	URL         string `yaml:"url" koanf:"url"`
}

// LogConfig controls the logger. An empty File means stderr.
type LogConfig struct {
	Level      LogLevel  `yaml:"level" koanf:"level"`
	Format     LogFormat `yaml:"format" koanf:"format"`
	File       string    `yaml:"file" koanf:"file"`
	MaxSizeMB  int       `yaml:"max_size_mb" koanf:"max_size_mb"`
	MaxAgeDays int       `yaml:"max_age_days" koanf:"max_age_days"`
	MaxBackups int       `yaml:"max_backups" koanf:"max_backups"`
}

// CORSConfig holds cross-origin settings. No origins means no CORS headers.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}
