// Package ioscreens reconciles scraped screenshot files with the
// public static-asset tree and with screenshot URLs stored in the
// database. This is an impure I/O package implementing the
// lifecycle.ScreenshotCopier and lifecycle.URLFixer contracts.
package ioscreens

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/privacyui/pupdb/pkg/config"
	"github.com/privacyui/pupdb/pkg/lifecycle"
)

// gitignoreContent excludes every copied binary from version
// control; its bytes are fixed.
const gitignoreContent = "# Ignore all screenshot files\n*\n!.gitignore\n"

// imageExtensions lists the file extensions treated as screenshots.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// copier implements lifecycle.ScreenshotCopier.
type copier struct {
	cfg *config.Config
}

// NewCopier creates a new ScreenshotCopier.
func NewCopier(cfg *config.Config) lifecycle.ScreenshotCopier {
	return &copier{cfg: cfg}
}

// Copy mirrors image files from the scraper tree into the public
// tree, skipping destinations that already exist, then writes the
// catch-all .gitignore. A missing source root is fatal; per-file
// failures land in the result's error list.
func (c *copier) Copy(ctx context.Context) (lifecycle.CopyResult, error) {
	var res lifecycle.CopyResult

	srcDir := c.cfg.Screenshots.ScraperDir
	dstDir := c.cfg.Screenshots.PublicDir

	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return res, SourceMissingError(srcDir, err)
	}

	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return res, CreateDestError(dstDir, err)
	}

	res, err = copyTree(srcDir, dstDir)
	if err != nil {
		return res, err
	}

	gitignorePath := filepath.Join(dstDir, ".gitignore")
	if err := os.WriteFile(
		gitignorePath, []byte(gitignoreContent), 0644,
	); err != nil {
		return res, GitignoreError(gitignorePath, err)
	}
	slog.Info("Created .gitignore in screenshots directory",
		"path", gitignorePath)

	return res, nil
}

// copyTree copies one directory level and recurses into
// subdirectories. Each call returns its own accumulator; the
// caller merges them, so no state is shared across the walk.
func copyTree(srcDir, dstDir string) (lifecycle.CopyResult, error) {
	var res lifecycle.CopyResult

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return res, ScanError(srcDir, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())

		if entry.IsDir() {
			if err := os.MkdirAll(dstPath, 0755); err != nil {
				return res, CreateDestError(dstPath, err)
			}
			sub, err := copyTree(srcPath, dstPath)
			res.Merge(sub)
			if err != nil {
				return res, err
			}
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExtensions[ext] {
			continue
		}

		copied, err := copyFile(srcPath, dstPath)
		if err != nil {
			res.Errors = append(res.Errors,
				fmt.Sprintf("failed to copy %s: %v", srcPath, err))
			continue
		}
		if copied {
			res.Copied++
			slog.Info("Copied screenshot", "file", entry.Name())
		} else {
			res.Skipped++
			slog.Debug("Skipped existing screenshot", "file", entry.Name())
		}
	}

	return res, nil
}

// copyFile copies src to dst unless dst already exists.
// Returns true when a copy happened.
func copyFile(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return false, err
	}

	if err := out.Close(); err != nil {
		return false, err
	}

	return true, nil
}
