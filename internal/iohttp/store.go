package iohttp

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/privacyui/pupdb/pkg/db"
)

// Store is the read-side catalog access the HTTP handlers need.
// Lookups by slug or id return pgx.ErrNoRows when nothing matches;
// handlers translate that into domain 404 responses.
type Store interface {
	Categories(ctx context.Context) ([]CategoryWithStats, error)
	CategoryBySlug(ctx context.Context, slug string) (Category, error)
	MainPattern(ctx context.Context, categoryID string) (Pattern, error)
	Patterns(
		ctx context.Context, categoryID string, limit, offset int,
	) ([]PatternListItem, error)
	PatternByID(ctx context.Context, id string) (PatternDetail, error)
	PatternsByCategory(
		ctx context.Context, categoryID string, limit, offset int,
	) ([]PatternListItem, error)
	Search(ctx context.Context, query string) (SearchResult, error)
}

// pgxStore implements Store over a pgx connection pool.
type pgxStore struct {
	operator db.Operator
}

// NewStore creates a Store backed by the operator's pool.
func NewStore(op db.Operator) Store {
	return &pgxStore{operator: op}
}

func (s *pgxStore) pool() *pgxpool.Pool {
	return s.operator.Pool()
}

const categoryColumns = `id, name, slug, description, order_index,
	icon, created_at, updated_at`

const patternColumns = `id, category_id, slug, title, description,
	explanation, relevance, sources, pbd_alignment, nielsen_alignment,
	created_at, updated_at`

// Categories returns all categories ordered by their curated order,
// each with its pattern count and the slug of its oldest pattern.
func (s *pgxStore) Categories(
	ctx context.Context,
) ([]CategoryWithStats, error) {
	rows, err := s.pool().Query(ctx, `
		SELECT c.id, c.name, c.slug, c.description, c.order_index,
			c.icon, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM patterns p
			 WHERE p.category_id = c.id) AS pattern_count,
			(SELECT p.slug FROM patterns p
			 WHERE p.category_id = c.id
			 ORDER BY p.created_at LIMIT 1) AS main_pattern_slug
		FROM pattern_categories c
		ORDER BY c.order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []CategoryWithStats{}
	for rows.Next() {
		var cat CategoryWithStats
		err := rows.Scan(
			&cat.ID, &cat.Name, &cat.Slug, &cat.Description,
			&cat.OrderIndex, &cat.Icon, &cat.CreatedAt, &cat.UpdatedAt,
			&cat.PatternCount, &cat.MainPatternSlug,
		)
		if err != nil {
			return nil, err
		}
		res = append(res, cat)
	}

	return res, rows.Err()
}

func (s *pgxStore) CategoryBySlug(
	ctx context.Context,
	slug string,
) (Category, error) {
	var cat Category
	err := s.pool().QueryRow(ctx, `
		SELECT `+categoryColumns+`
		FROM pattern_categories WHERE slug = $1`, slug,
	).Scan(
		&cat.ID, &cat.Name, &cat.Slug, &cat.Description,
		&cat.OrderIndex, &cat.Icon, &cat.CreatedAt, &cat.UpdatedAt,
	)
	return cat, err
}

// MainPattern returns the oldest pattern of a category.
func (s *pgxStore) MainPattern(
	ctx context.Context,
	categoryID string,
) (Pattern, error) {
	var p Pattern
	err := s.pool().QueryRow(ctx, `
		SELECT `+patternColumns+`
		FROM patterns WHERE category_id = $1
		ORDER BY created_at LIMIT 1`, categoryID,
	).Scan(
		&p.ID, &p.CategoryID, &p.Slug, &p.Title, &p.Description,
		&p.Explanation, &p.Relevance, &p.Sources,
		&p.PbdAlignment, &p.NielsenAlignment,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Patterns returns the newest patterns first, each with its
// category and example count. An empty categoryID returns patterns
// from all categories.
func (s *pgxStore) Patterns(
	ctx context.Context,
	categoryID string,
	limit, offset int,
) ([]PatternListItem, error) {
	query := `
		SELECT p.id, p.category_id, p.slug, p.title, p.description,
			p.explanation, p.relevance, p.sources, p.pbd_alignment,
			p.nielsen_alignment, p.created_at, p.updated_at,
			c.id, c.name, c.slug, c.description, c.order_index,
			c.icon, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM examples e
			 WHERE e.pattern_id = p.id) AS example_count
		FROM patterns p
		JOIN pattern_categories c ON c.id = p.category_id`

	args := []any{limit, offset}
	if categoryID != "" {
		query += ` WHERE p.category_id = $3`
		args = append(args, categoryID)
	}
	query += ` ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`

	rows, err := s.pool().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []PatternListItem{}
	for rows.Next() {
		var item PatternListItem
		var cat Category
		err := rows.Scan(
			&item.ID, &item.CategoryID, &item.Slug, &item.Title,
			&item.Description, &item.Explanation, &item.Relevance,
			&item.Sources, &item.PbdAlignment, &item.NielsenAlignment,
			&item.CreatedAt, &item.UpdatedAt,
			&cat.ID, &cat.Name, &cat.Slug, &cat.Description,
			&cat.OrderIndex, &cat.Icon, &cat.CreatedAt, &cat.UpdatedAt,
			&item.ExampleCount,
		)
		if err != nil {
			return nil, err
		}
		item.Category = &cat
		res = append(res, item)
	}

	return res, rows.Err()
}

// PatternByID returns one pattern with its category and examples
// in display order.
func (s *pgxStore) PatternByID(
	ctx context.Context,
	id string,
) (PatternDetail, error) {
	var detail PatternDetail
	var cat Category

	err := s.pool().QueryRow(ctx, `
		SELECT p.id, p.category_id, p.slug, p.title, p.description,
			p.explanation, p.relevance, p.sources, p.pbd_alignment,
			p.nielsen_alignment, p.created_at, p.updated_at,
			c.id, c.name, c.slug, c.description, c.order_index,
			c.icon, c.created_at, c.updated_at
		FROM patterns p
		JOIN pattern_categories c ON c.id = p.category_id
		WHERE p.id = $1`, id,
	).Scan(
		&detail.ID, &detail.CategoryID, &detail.Slug, &detail.Title,
		&detail.Description, &detail.Explanation, &detail.Relevance,
		&detail.Sources, &detail.PbdAlignment, &detail.NielsenAlignment,
		&detail.CreatedAt, &detail.UpdatedAt,
		&cat.ID, &cat.Name, &cat.Slug, &cat.Description,
		&cat.OrderIndex, &cat.Icon, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return detail, err
	}
	detail.Category = &cat

	rows, err := s.pool().Query(ctx, `
		SELECT id, pattern_id, company, title, use_case, description,
			why_selected, screenshot_url, cropped_screenshot_url,
			source_url, metadata, display_order, created_at, updated_at
		FROM examples WHERE pattern_id = $1
		ORDER BY display_order`, id)
	if err != nil {
		return detail, err
	}
	defer rows.Close()

	detail.Examples = []Example{}
	for rows.Next() {
		var ex Example
		err := rows.Scan(
			&ex.ID, &ex.PatternID, &ex.Company, &ex.Title, &ex.UseCase,
			&ex.Description, &ex.WhySelected, &ex.ScreenshotURL,
			&ex.CroppedScreenshotURL, &ex.SourceURL, &ex.Metadata,
			&ex.DisplayOrder, &ex.CreatedAt, &ex.UpdatedAt,
		)
		if err != nil {
			return detail, err
		}
		detail.Examples = append(detail.Examples, ex)
	}

	return detail, rows.Err()
}

// PatternsByCategory returns a page of one category's patterns,
// newest first, each with its example count.
func (s *pgxStore) PatternsByCategory(
	ctx context.Context,
	categoryID string,
	limit, offset int,
) ([]PatternListItem, error) {
	rows, err := s.pool().Query(ctx, `
		SELECT p.id, p.category_id, p.slug, p.title, p.description,
			p.explanation, p.relevance, p.sources, p.pbd_alignment,
			p.nielsen_alignment, p.created_at, p.updated_at,
			(SELECT COUNT(*) FROM examples e
			 WHERE e.pattern_id = p.id) AS example_count
		FROM patterns p
		WHERE p.category_id = $1
		ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`,
		categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []PatternListItem{}
	for rows.Next() {
		var item PatternListItem
		err := rows.Scan(
			&item.ID, &item.CategoryID, &item.Slug, &item.Title,
			&item.Description, &item.Explanation, &item.Relevance,
			&item.Sources, &item.PbdAlignment, &item.NielsenAlignment,
			&item.CreatedAt, &item.UpdatedAt,
			&item.ExampleCount,
		)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

// Search matches patterns on title, description and explanation,
// and examples on company, title and use case, up to ten of each.
func (s *pgxStore) Search(
	ctx context.Context,
	query string,
) (SearchResult, error) {
	res := SearchResult{
		Patterns: []PatternHit{},
		Examples: []ExampleHit{},
	}
	needle := "%" + query + "%"

	rows, err := s.pool().Query(ctx, `
		SELECT p.id, p.title, p.slug, p.description,
			c.id, c.name, c.slug
		FROM patterns p
		JOIN pattern_categories c ON c.id = p.category_id
		WHERE p.title ILIKE $1
			OR p.description ILIKE $1
			OR p.explanation ILIKE $1
		LIMIT 10`, needle)
	if err != nil {
		return res, err
	}
	defer rows.Close()

	for rows.Next() {
		var hit PatternHit
		err := rows.Scan(
			&hit.ID, &hit.Title, &hit.Slug, &hit.Description,
			&hit.Category.ID, &hit.Category.Name, &hit.Category.Slug,
		)
		if err != nil {
			return res, err
		}
		res.Patterns = append(res.Patterns, hit)
	}
	if err := rows.Err(); err != nil {
		return res, err
	}

	exRows, err := s.pool().Query(ctx, `
		SELECT e.id, e.company, e.title,
			p.id, p.title, p.slug,
			c.id, c.name, c.slug
		FROM examples e
		JOIN patterns p ON p.id = e.pattern_id
		JOIN pattern_categories c ON c.id = p.category_id
		WHERE e.company ILIKE $1
			OR e.title ILIKE $1
			OR e.use_case ILIKE $1
		LIMIT 10`, needle)
	if err != nil {
		return res, err
	}
	defer exRows.Close()

	for exRows.Next() {
		var hit ExampleHit
		err := exRows.Scan(
			&hit.ID, &hit.Company, &hit.Title,
			&hit.Pattern.ID, &hit.Pattern.Title, &hit.Pattern.Slug,
			&hit.Pattern.Category.ID, &hit.Pattern.Category.Name,
			&hit.Pattern.Category.Slug,
		)
		if err != nil {
			return res, err
		}
		res.Examples = append(res.Examples, hit)
	}

	return res, exRows.Err()
}

// errNotFound reports whether an error is a no-rows lookup miss.
func errNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
