package ioscreens

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/privacyui/pupdb/pkg/config"
	"github.com/privacyui/pupdb/pkg/db"
	"github.com/privacyui/pupdb/pkg/lifecycle"
)

// fixer implements lifecycle.URLFixer.
type fixer struct {
	cfg      *config.Config
	operator db.Operator
}

// NewFixer creates a new URLFixer.
func NewFixer(cfg *config.Config, op db.Operator) lifecycle.URLFixer {
	return &fixer{cfg: cfg, operator: op}
}

// exampleRow is the slice of an example the fixer needs.
type exampleRow struct {
	id            string
	company       string
	screenshotURL string
}

// FixURLs scans the public tree into a normalized index, fetches
// all example rows ordered by id, and repairs every stored URL
// whose file is missing on disk. Each decision (already valid,
// fixed, not found) is logged; per-row failures are collected and
// the run continues.
func (f *fixer) FixURLs(ctx context.Context) (lifecycle.FixResult, error) {
	var res lifecycle.FixResult

	pool := f.operator.Pool()
	if pool == nil {
		return res, NotConnectedError()
	}

	index, err := f.scanScreenshots()
	if err != nil {
		return res, err
	}
	slog.Info("Scanned screenshot directory", "files", index.Len())

	rows, err := pool.Query(ctx,
		`SELECT id, company, screenshot_url
		 FROM examples ORDER BY id`)
	if err != nil {
		return res, FetchExamplesError(err)
	}
	defer rows.Close()

	var examples []exampleRow
	for rows.Next() {
		var ex exampleRow
		if err := rows.Scan(
			&ex.id, &ex.company, &ex.screenshotURL,
		); err != nil {
			return res, FetchExamplesError(err)
		}
		examples = append(examples, ex)
	}
	if err := rows.Err(); err != nil {
		return res, FetchExamplesError(err)
	}

	for _, ex := range examples {
		res.Checked++

		if f.urlWorks(ex.screenshotURL) {
			slog.Info("Screenshot URL already valid",
				"company", ex.company, "url", ex.screenshotURL)
			continue
		}

		matched, ok := index.BestMatch(path.Base(ex.screenshotURL))
		if !ok {
			res.NotFound++
			slog.Warn("No screenshot match found",
				"company", ex.company, "url", ex.screenshotURL)
			continue
		}

		_, err := pool.Exec(ctx,
			`UPDATE examples SET screenshot_url = $1, updated_at = NOW()
			 WHERE id = $2`,
			matched, ex.id)
		if err != nil {
			res.Errors = append(res.Errors,
				fmt.Sprintf("failed to update %s: %v", ex.company, err))
			continue
		}

		res.Fixed++
		slog.Info("Fixed screenshot URL",
			"company", ex.company,
			"old", ex.screenshotURL, "new", matched)
	}

	return res, nil
}

// scanScreenshots walks the public tree and indexes every .png by
// its normalized filename. Directory entries come back sorted, so
// the index order (and with it the tie-break) is stable.
func (f *fixer) scanScreenshots() (*Index, error) {
	index := NewIndex()
	root := f.cfg.Screenshots.PublicDir

	var scan func(dir, rel string) error
	scan = func(dir, rel string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return ScanError(dir, err)
		}
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			relEntry := path.Join(rel, entry.Name())
			if entry.IsDir() {
				if err := scan(full, relEntry); err != nil {
					return err
				}
				continue
			}
			if strings.HasSuffix(
				strings.ToLower(entry.Name()), ".png",
			) {
				index.Add(
					Normalize(entry.Name()),
					"/screenshots/"+relEntry,
				)
			}
		}
		return nil
	}

	if err := scan(root, ""); err != nil {
		return nil, err
	}
	return index, nil
}

// urlWorks reports whether a stored screenshot URL resolves to a
// file on disk. Stored URLs look like /screenshots/<dir>/<file>;
// the public dir is the on-disk root of /screenshots.
func (f *fixer) urlWorks(url string) bool {
	rel := strings.TrimPrefix(url, "/screenshots/")
	if rel == url {
		// URL outside the screenshots tree; leave it alone.
		return true
	}
	full := filepath.Join(
		f.cfg.Screenshots.PublicDir, filepath.FromSlash(rel),
	)
	_, err := os.Stat(full)
	return err == nil
}
