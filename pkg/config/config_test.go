package config_test

import (
	"path/filepath"
	"testing"

	"github.com/privacyui/pupdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "pupdb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "pupdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "pupdb", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "pupdb", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		// Screenshot defaults
		assert.Equal(t,
			"privacy_ui_scraper/privacy_ui_screenshots",
			cfg.Screenshots.ScraperDir,
		)
		assert.Equal(t, "public/screenshots", cfg.Screenshots.PublicDir)

		// Server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("applies valid options", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDatabaseHost("db.example.org"),
			config.OptDatabasePort(5433),
			config.OptServerPort(3001),
			config.OptLogLevel("debug"),
		})

		assert.Equal(t, "db.example.org", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 3001, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("rejects invalid options", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDatabaseHost(""),
			config.OptDatabasePort(-1),
			config.OptDatabaseSSLMode("tls-13"),
			config.OptLogLevel("loud"),
		})

		// Config keeps its defaults.
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, "info", cfg.Log.Level)
	})
}

func TestToOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptImportDataFile("/tmp/parsed_data.json"),
		config.OptHomeDir("/home/pup"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	// Persistent fields round-trip.
	assert.Equal(t, "db.example.org", clone.Database.Host)
	assert.Equal(t, cfg.Server, clone.Server)
	assert.Equal(t, cfg.Log, clone.Log)

	// Runtime-only fields do not.
	assert.Empty(t, clone.Import.DataFile)
	assert.Empty(t, clone.HomeDir)
}
