package ioscreens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/privacyui/pupdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLWorks(t *testing.T) {
	publicDir := t.TempDir()
	catDir := filepath.Join(publicDir, "01_Cookie_Consent_Banners")
	require.NoError(t, os.MkdirAll(catDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(catDir, "Example_1_Google.png"),
		[]byte("png"), 0644,
	))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptScreenshotsPublicDir(publicDir),
	})
	f := &fixer{cfg: cfg}

	t.Run("file on disk is valid", func(t *testing.T) {
		assert.True(t, f.urlWorks(
			"/screenshots/01_Cookie_Consent_Banners/Example_1_Google.png",
		))
	})

	t.Run("missing file needs fixing", func(t *testing.T) {
		assert.False(t, f.urlWorks("/screenshots/missing.png"))
		assert.False(t, f.urlWorks(
			"/screenshots/01_Cookie_Consent_Banners/gone.png",
		))
	})

	// URLs stored outside the screenshots tree (external hosts,
	// hand-edited paths) are left untouched rather than rewritten
	// against a tree they never pointed into.
	t.Run("url outside screenshots tree is left alone", func(t *testing.T) {
		assert.True(t, f.urlWorks("https://cdn.example.com/shot.png"))
		assert.True(t, f.urlWorks("/assets/shot.png"))
	})
}
