// Package config provides configuration management for pupdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Screenshots: scraper_dir, public_dir
//   - Server: host, port
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.DataFile (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PUPDB_ prefix with underscores for nesting:
//
//	PUPDB_DATABASE_HOST=localhost
//	PUPDB_DATABASE_PASSWORD=secret
//	PUPDB_SERVER_PORT=8080
//	PUPDB_LOG_LEVEL=info
package config

// Config represents the complete pupdb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Screenshots contains filesystem locations for the
	// screenshot reconciliation commands.
	Screenshots ScreenshotsConfig `mapstructure:"screenshots" yaml:"screenshots"`

	// Server contains settings for the HTTP API server.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password. For a hosted
	// database this is the privileged service key.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ScreenshotsConfig contains the filesystem layout for screenshot
// reconciliation.
type ScreenshotsConfig struct {
	// ScraperDir is the root of the scraper output tree
	// (numbered pattern-category folders with image files).
	ScraperDir string `mapstructure:"scraper_dir" yaml:"scraper_dir"`

	// PublicDir is the public static-asset tree screenshots are
	// copied into and served from.
	PublicDir string `mapstructure:"public_dir" yaml:"public_dir"`
}

// ServerConfig contains HTTP API server settings.
type ServerConfig struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the TCP port the server listens on.
	Port int `mapstructure:"port" yaml:"port"`
}

// ImportConfig contains settings specific to the import command.
type ImportConfig struct {
	// DataFile is the path to parsed_data.json produced by the scraper.
	// Runtime-only: set by the --data-file flag, defaults to
	// <scraper_dir>/parsed_data.json.
	DataFile string `mapstructure:"data_file" yaml:"data_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "pupdb",
			SSLMode:  "disable",
		},
		Screenshots: ScreenshotsConfig{
			ScraperDir: "privacy_ui_scraper/privacy_ui_screenshots",
			PublicDir:  "public/screenshots",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
