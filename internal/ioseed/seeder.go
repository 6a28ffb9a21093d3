// Package ioseed implements the lifecycle.Seeder interface. It
// fills an empty catalog with synthetic content for local
// development: one test pattern with three examples for each of
// the first few categories.
package ioseed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/privacyui/pupdb/pkg/db"
	"github.com/privacyui/pupdb/pkg/lifecycle"
	"github.com/privacyui/pupdb/pkg/schema"
)

// exampleCompanies cycles through well-known companies so seeded
// examples look plausible in the UI.
var exampleCompanies = []string{
	"Google", "Apple", "Microsoft", "Meta", "Amazon",
}

// seeder implements lifecycle.Seeder.
type seeder struct {
	operator db.Operator
}

// NewSeeder creates a new Seeder.
func NewSeeder(op db.Operator) lifecycle.Seeder {
	return &seeder{operator: op}
}

// Seed creates a test pattern with three examples for each of the
// first three categories. An empty category table is fatal; a
// pattern that already exists (a previous seed run) is logged and
// skipped.
func (s *seeder) Seed(ctx context.Context) error {
	pool := s.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	categories, err := s.fetchCategories(ctx, pool)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return NoCategoriesError()
	}

	for _, cat := range categories {
		if err := s.seedCategory(ctx, pool, cat); err != nil {
			slog.Warn("Cannot seed category",
				"category", cat.name, "error", err)
		}
	}

	return nil
}

// seedCat is the slice of a category the seeder needs.
type seedCat struct {
	id   string
	name string
	slug string
}

func (s *seeder) fetchCategories(
	ctx context.Context,
	pool *pgxpool.Pool,
) ([]seedCat, error) {
	rows, err := pool.Query(ctx,
		`SELECT id, name, slug FROM pattern_categories
		 ORDER BY order_index LIMIT 3`)
	if err != nil {
		return nil, FetchCategoriesError(err)
	}
	defer rows.Close()

	var res []seedCat
	for rows.Next() {
		var cat seedCat
		if err := rows.Scan(&cat.id, &cat.name, &cat.slug); err != nil {
			return nil, FetchCategoriesError(err)
		}
		res = append(res, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, FetchCategoriesError(err)
	}

	return res, nil
}

// seedCategory inserts one test pattern and its three examples.
func (s *seeder) seedCategory(
	ctx context.Context,
	pool *pgxpool.Pool,
	cat seedCat,
) error {
	patternSlug := fmt.Sprintf("test-%s-pattern", cat.slug)
	patternID := schema.PatternID(cat.slug, patternSlug)

	sources := schema.Sources{
		{
			Title: "GDPR Article 7",
			URL:   "https://gdpr-info.eu/art-7-gdpr/",
		},
		{
			Title: "Privacy by Design",
			URL: "https://www.ipc.on.ca/wp-content/uploads/" +
				"resources/7foundationalprinciples.pdf",
		},
	}
	pbd := schema.Alignment{
		"proactive":        true,
		"privacy_default":  true,
		"privacy_embedded": true,
	}
	nielsen := schema.Alignment{
		"visibility":   true,
		"user_control": true,
		"consistency":  true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO patterns
			(id, category_id, slug, title, description, explanation,
			 relevance, sources, pbd_alignment, nielsen_alignment,
			 created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`,
		patternID, cat.id, patternSlug,
		fmt.Sprintf("Test %s Pattern", cat.name),
		fmt.Sprintf("This is a test pattern for %s", cat.name),
		fmt.Sprintf(
			"This pattern demonstrates best practices for %s. It helps "+
				"users understand and control their privacy settings "+
				"effectively.", strings.ToLower(cat.name)),
		"Critical for GDPR compliance and building user trust. This "+
			"pattern addresses key privacy concerns in modern applications.",
		sources, pbd, nielsen,
	)
	if err != nil {
		return SeedPatternError(cat.name, err)
	}
	slog.Info("Created test pattern", "category", cat.name)

	for i := 0; i < 3; i++ {
		company := exampleCompanies[i%len(exampleCompanies)]

		metadata := schema.Metadata{
			"last_updated": time.Now().UTC().Format(time.RFC3339),
			"platform":     []string{"web", "mobile"}[i%2],
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO examples
				(id, pattern_id, company, title, use_case, description,
				 why_selected, screenshot_url, source_url, metadata,
				 display_order, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
				 NOW(), NOW())`,
			uuid.New().String(), patternID, company,
			fmt.Sprintf("%s's implementation of %s", company, cat.name),
			fmt.Sprintf(
				"%s uses this pattern for their main application", company),
			fmt.Sprintf(
				"A detailed look at how %s implements privacy controls",
				company),
			fmt.Sprintf(
				"This example demonstrates industry best practices and "+
					"innovative approaches to %s",
				strings.ToLower(cat.name)),
			fmt.Sprintf("/screenshots/placeholder-%d.png", i+1),
			fmt.Sprintf("https://example.com/%s-privacy",
				strings.ToLower(company)),
			metadata, i,
		)
		if err != nil {
			return SeedExampleError(company, err)
		}
		slog.Info("Added test example",
			"category", cat.name, "company", company)
	}

	return nil
}
