package ioscreens_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/privacyui/pupdb/internal/ioscreens"
	"github.com/privacyui/pupdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	srcDir := filepath.Join(t.TempDir(), "scraper")
	dstDir := filepath.Join(t.TempDir(), "public")

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptScreenshotsScraperDir(srcDir),
		config.OptScreenshotsPublicDir(dstDir),
	})
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCopy(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	src := cfg.Screenshots.ScraperDir
	dst := cfg.Screenshots.PublicDir

	writeFile(t, filepath.Join(src, "01_Cookie", "example_1_google.png"), "png1")
	writeFile(t, filepath.Join(src, "01_Cookie", "example_2_apple.jpg"), "jpg1")
	writeFile(t, filepath.Join(src, "01_Cookie", "notes.txt"), "skip me")
	writeFile(t, filepath.Join(src, "02_Consent", "banner.webp"), "webp1")

	copier := ioscreens.NewCopier(cfg)
	res, err := copier.Copy(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Copied)
	assert.Equal(t, 0, res.Skipped)
	assert.Empty(t, res.Errors)

	t.Run("images land in mirrored tree", func(t *testing.T) {
		data, err := os.ReadFile(
			filepath.Join(dst, "01_Cookie", "example_1_google.png"))
		require.NoError(t, err)
		assert.Equal(t, "png1", string(data))

		_, err = os.Stat(filepath.Join(dst, "02_Consent", "banner.webp"))
		assert.NoError(t, err)
	})

	t.Run("non-image files are not copied", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(dst, "01_Cookie", "notes.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("gitignore has exact content", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dst, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t,
			"# Ignore all screenshot files\n*\n!.gitignore\n",
			string(data))
	})

	t.Run("second run skips existing files", func(t *testing.T) {
		res, err := copier.Copy(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Copied)
		assert.Equal(t, 3, res.Skipped)
	})

	t.Run("existing files are never overwritten", func(t *testing.T) {
		target := filepath.Join(dst, "01_Cookie", "example_1_google.png")
		require.NoError(t, os.WriteFile(target, []byte("edited"), 0644))

		_, err := copier.Copy(ctx)
		require.NoError(t, err)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "edited", string(data))
	})
}

func TestCopyMissingSource(t *testing.T) {
	cfg := testConfig(t)

	copier := ioscreens.NewCopier(cfg)
	_, err := copier.Copy(context.Background())
	assert.Error(t, err)
}
