// Package ioimport implements the lifecycle.Importer interface.
// It reads the scraper's parsed_data.json and inserts patterns and
// examples into the catalog, resolving the scraper's drifting
// folder names to curated category slugs along the way.
package ioimport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/privacyui/pupdb/pkg/config"
	"github.com/privacyui/pupdb/pkg/db"
	"github.com/privacyui/pupdb/pkg/lifecycle"
	"github.com/privacyui/pupdb/pkg/schema"
)

// importer implements lifecycle.Importer.
type importer struct {
	cfg      *config.Config
	operator db.Operator
}

// NewImporter creates a new Importer.
func NewImporter(cfg *config.Config, op db.Operator) lifecycle.Importer {
	return &importer{cfg: cfg, operator: op}
}

// Import loads the parsed data file, resolves each pattern to a
// curated category, and inserts patterns with their examples. A
// missing or unparsable data file aborts the run; a pattern whose
// name maps to no category, or whose (category, slug) pair already
// exists, is skipped; failed example inserts are collected and the
// run continues.
func (imp *importer) Import(
	ctx context.Context,
) (lifecycle.ImportResult, error) {
	var res lifecycle.ImportResult
	start := time.Now()

	pool := imp.operator.Pool()
	if pool == nil {
		return res, NotConnectedError()
	}

	data, err := imp.loadData()
	if err != nil {
		return res, err
	}

	categories, err := fetchCategories(ctx, pool)
	if err != nil {
		return res, err
	}

	slog.Info("Importing patterns",
		"patterns", len(data.Patterns), "categories", len(categories))

	bar := pb.Full.Start(len(data.Patterns))
	bar.Set(pb.CleanOnFinish, true)

	for _, p := range data.Patterns {
		imp.importPattern(ctx, pool, categories, p, &res)
		bar.Increment()
	}
	bar.Finish()

	slog.Info("Import finished",
		"patternsCreated", humanize.Comma(int64(res.PatternsCreated)),
		"patternsSkipped", humanize.Comma(int64(res.PatternsSkipped)),
		"examplesCreated", humanize.Comma(int64(res.ExamplesCreated)),
		"errors", len(res.Errors),
		"time", gnfmt.TimeString(time.Since(start).Seconds()),
	)

	return res, nil
}

// loadData reads and decodes the parsed data file. When no path is
// configured it falls back to parsed_data.json in the scraper dir.
func (imp *importer) loadData() (*ParsedData, error) {
	path := imp.cfg.Import.DataFile
	if path == "" {
		path = filepath.Join(
			imp.cfg.Screenshots.ScraperDir, "parsed_data.json",
		)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, DataFileError(path, err)
	}

	var data ParsedData
	enc := gnfmt.GNjson{}
	if err := enc.Decode(bytes, &data); err != nil {
		return nil, ParseError(path, err)
	}

	return &data, nil
}

// fetchCategories loads the slug to id mapping for all categories.
func fetchCategories(
	ctx context.Context,
	pool *pgxpool.Pool,
) (map[string]string, error) {
	rows, err := pool.Query(ctx,
		`SELECT id, slug FROM pattern_categories`)
	if err != nil {
		return nil, CategoriesError(err)
	}
	defer rows.Close()

	res := make(map[string]string)
	for rows.Next() {
		var id, slug string
		if err := rows.Scan(&id, &slug); err != nil {
			return nil, CategoriesError(err)
		}
		res[slug] = id
	}
	if err := rows.Err(); err != nil {
		return nil, CategoriesError(err)
	}

	return res, nil
}

// importPattern inserts one pattern and its examples, accumulating
// the outcome into res.
func (imp *importer) importPattern(
	ctx context.Context,
	pool *pgxpool.Pool,
	categories map[string]string,
	p ParsedPattern,
	res *lifecycle.ImportResult,
) {
	catSlug, ok := CategorySlug(p.PatternName)
	if !ok {
		res.PatternsSkipped++
		slog.Warn("No category mapping for pattern",
			"pattern", p.PatternName)
		return
	}

	catID, ok := categories[catSlug]
	if !ok {
		res.PatternsSkipped++
		slog.Warn("Category missing from database",
			"pattern", p.PatternName, "category", catSlug)
		return
	}

	patternSlug := schema.Slugify(p.PatternName)

	var existingID string
	err := pool.QueryRow(ctx,
		`SELECT id FROM patterns WHERE category_id = $1 AND slug = $2`,
		catID, patternSlug,
	).Scan(&existingID)
	if err == nil {
		res.PatternsSkipped++
		slog.Info("Pattern already exists",
			"pattern", p.PatternName, "slug", patternSlug)
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		res.Errors = append(res.Errors,
			fmt.Sprintf("lookup of %s failed: %v", p.PatternName, err))
		return
	}

	content := ContentFor(patternSlug, p)
	patternID := schema.PatternID(catSlug, patternSlug)

	_, err = pool.Exec(ctx,
		`INSERT INTO patterns
			(id, category_id, slug, title, description, explanation,
			 relevance, sources, pbd_alignment, nielsen_alignment,
			 created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`,
		patternID, catID, patternSlug,
		content.Title, content.Description,
		content.Explanation, content.Relevance,
		schema.Sources{}, schema.Alignment{}, schema.Alignment{},
	)
	if err != nil {
		res.Errors = append(res.Errors,
			fmt.Sprintf("insert of %s failed: %v", p.PatternName, err))
		return
	}
	res.PatternsCreated++

	folder := ResolveFolder(
		imp.cfg.Screenshots.ScraperDir, p.PatternNumber, p.PatternName,
	)

	for _, ex := range p.Examples {
		if err := insertExample(ctx, pool, patternID, folder, ex); err != nil {
			res.Errors = append(res.Errors,
				fmt.Sprintf("example %s of %s failed: %v",
					ex.Company, p.PatternName, err))
			continue
		}
		res.ExamplesCreated++
	}
}

// insertExample inserts one example row for a pattern.
func insertExample(
	ctx context.Context,
	pool *pgxpool.Pool,
	patternID, folder string,
	ex ParsedExample,
) error {
	file := strings.TrimSpace(ex.ScreenshotFile)
	if file == "" {
		file = fmt.Sprintf("example_%d_%s.png",
			ex.ExampleNumber, sanitizeCompany(ex.Company))
	}
	screenshotURL := "/screenshots/" + folder + "/" + file

	metadata := schema.Metadata{
		"pbd_alignment":      splitList(ex.PbdAlignment, ","),
		"nielsen_heuristics": splitList(ex.NielsenHeuristics, ";"),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO examples
			(id, pattern_id, company, title, use_case, description,
			 why_selected, screenshot_url, source_url, metadata,
			 display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			 NOW(), NOW())`,
		uuid.New().String(), patternID,
		cleanText(ex.Company), cleanText(ex.Title),
		cleanText(ex.UseCase), cleanText(ex.Description),
		cleanText(ex.WhySelected),
		screenshotURL, strings.TrimSpace(ex.URL), metadata,
		ex.ExampleNumber,
	)
	return err
}

// sanitizeCompany makes a company name filesystem-safe the same
// way the scraper names its fallback screenshots.
func sanitizeCompany(company string) string {
	var b strings.Builder
	for _, r := range company {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// splitList splits a delimited alignment string into trimmed,
// non-empty items. An empty input yields an empty (not nil) slice
// so the stored JSON is always an array.
func splitList(s, sep string) []string {
	res := []string{}
	for _, item := range strings.Split(s, sep) {
		item = strings.TrimSpace(item)
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}

// cleanText collapses newlines and repeated whitespace left over
// from scraping into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
