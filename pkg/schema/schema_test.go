package schema_test

import (
	"strings"
	"testing"

	"github.com/privacyui/pupdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		msg, input, want string
	}{
		{"simple", "Cookie Consent Banner", "cookie-consent-banner"},
		{"punctuation", "Just-in-Time Permission!", "just-in-time-permission"},
		{"run of separators", "Data  --  Access", "data-access"},
		{"leading and trailing", " Privacy Dashboard ", "privacy-dashboard"},
		{"parentheses", "Permissions (Camera/Location)", "permissions-camera-location"},
		{"digits kept", "Top 10 Patterns", "top-10-patterns"},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, schema.Slugify(v.input), v.msg)
	}
}

func TestInitialCategories(t *testing.T) {
	cats := schema.InitialCategories()
	require.Len(t, cats, 16)

	t.Run("slugs are unique and slugified", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, cat := range cats {
			assert.False(t, seen[cat.Slug], "duplicate slug %s", cat.Slug)
			seen[cat.Slug] = true
			assert.Equal(t, schema.Slugify(cat.Slug), cat.Slug)
			assert.NotEmpty(t, cat.Name)
			assert.NotEmpty(t, cat.Description)
			assert.NotEmpty(t, cat.Icon)
		}
	})

	t.Run("order indexes are sequential", func(t *testing.T) {
		for i, cat := range cats {
			assert.Equal(t, i+1, cat.OrderIndex, cat.Slug)
		}
	})

	t.Run("lookup by slug", func(t *testing.T) {
		cat, ok := schema.InitialCategoryBySlug("cookie-banners")
		require.True(t, ok)
		assert.Equal(t, "Cookie Banners", cat.Name)

		_, ok = schema.InitialCategoryBySlug("no-such-category")
		assert.False(t, ok)
	})
}

func TestDeterministicIDs(t *testing.T) {
	t.Run("category id is stable", func(t *testing.T) {
		id1 := schema.CategoryID("cookie-banners")
		id2 := schema.CategoryID("cookie-banners")
		assert.Equal(t, id1, id2)
		assert.NotEqual(t, id1, schema.CategoryID("child-privacy"))
	})

	t.Run("pattern id depends on both slugs", func(t *testing.T) {
		id := schema.PatternID("cookie-banners", "cookie-consent-banner")
		assert.Equal(t, id,
			schema.PatternID("cookie-banners", "cookie-consent-banner"))
		assert.NotEqual(t, id,
			schema.PatternID("child-privacy", "cookie-consent-banner"))
		assert.NotEqual(t, id,
			schema.PatternID("cookie-banners", "other-pattern"))
	})
}

func TestPrinciples(t *testing.T) {
	pbd := schema.PbdPrinciples()
	assert.Len(t, pbd, 7)

	nielsen := schema.NielsenHeuristics()
	assert.Len(t, nielsen, 10)

	for _, p := range append(pbd, nielsen...) {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
	}
}

func TestBadgeForCount(t *testing.T) {
	tests := []struct {
		msg   string
		count int
		want  string
	}{
		{"zero contributions", 0, "Privacy Pioneer"},
		{"first contribution", 1, "Privacy Pioneer"},
		{"below guardian", 4, "Privacy Pioneer"},
		{"guardian", 5, "Guardian"},
		{"sentinel", 10, "Sentinel"},
		{"just below master", 24, "Sentinel"},
		{"master investigator", 25, "Master Investigator"},
		{"far beyond", 1000, "Master Investigator"},
	}

	for _, v := range tests {
		badge := schema.BadgeForCount(v.count)
		assert.Equal(t, v.want, badge.Name, v.msg)
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "pattern_categories",
		schema.PatternCategory{}.TableName())
	assert.Equal(t, "patterns", schema.Pattern{}.TableName())
	assert.Equal(t, "examples", schema.Example{}.TableName())
	assert.Equal(t, "templates", schema.Template{}.TableName())
	assert.Equal(t, "submissions", schema.Submission{}.TableName())
	assert.Equal(t, "contributors", schema.Contributor{}.TableName())
}

// TestPatternCategoryTableDDL tests DDL generation for
// PatternCategory model
func TestPatternCategoryTableDDL(t *testing.T) {
	pc := schema.PatternCategory{}
	ddl := pc.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE pattern_categories")

	// Should have UUID primary key
	assert.Contains(t, ddl, "id UUID PRIMARY KEY")

	// Should have required fields
	assert.Contains(t, ddl, "name VARCHAR(255) NOT NULL")
	assert.Contains(t, ddl, "slug VARCHAR(255) NOT NULL UNIQUE")

	// Should have ordering with default
	assert.Contains(t, ddl, "order_index INT NOT NULL DEFAULT 0")
}

// TestPatternCategoryIndexDDL tests index generation for
// PatternCategory model
func TestPatternCategoryIndexDDL(t *testing.T) {
	pc := schema.PatternCategory{}
	indexes := pc.IndexDDL()

	require.NotEmpty(t, indexes)
	allIndexes := strings.Join(indexes, "\n")
	assert.Contains(t, allIndexes, "slug")
	assert.Contains(t, allIndexes, "order_index")
}

// TestPatternTableDDL tests DDL generation for Pattern model
func TestPatternTableDDL(t *testing.T) {
	p := schema.Pattern{}
	ddl := p.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE patterns")

	// Should have UUID primary key
	assert.Contains(t, ddl, "id UUID PRIMARY KEY")

	// Should reference owning category
	assert.Contains(t, ddl,
		"category_id UUID NOT NULL REFERENCES pattern_categories(id)")

	// Should have JSONB columns with defaults
	assert.Contains(t, ddl, "sources JSONB NOT NULL DEFAULT '[]'")
	assert.Contains(t, ddl, "pbd_alignment JSONB NOT NULL DEFAULT '{}'")
	assert.Contains(t, ddl,
		"nielsen_alignment JSONB NOT NULL DEFAULT '{}'")
}

// TestPatternIndexDDL tests index generation for Pattern model
func TestPatternIndexDDL(t *testing.T) {
	p := schema.Pattern{}
	indexes := p.IndexDDL()

	require.NotEmpty(t, indexes)
	allIndexes := strings.Join(indexes, "\n")

	// Slug must be unique per category, not globally
	assert.Contains(t, allIndexes,
		"UNIQUE INDEX idx_patterns_category_slug")
	assert.Contains(t, allIndexes, "(category_id, slug)")
}

// TestExampleTableDDL tests DDL generation for Example model
func TestExampleTableDDL(t *testing.T) {
	e := schema.Example{}
	ddl := e.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE examples")

	// Should reference owning pattern
	assert.Contains(t, ddl,
		"pattern_id UUID NOT NULL REFERENCES patterns(id)")

	// Should have screenshot paths and metadata
	assert.Contains(t, ddl, "screenshot_url VARCHAR(500)")
	assert.Contains(t, ddl, "cropped_screenshot_url VARCHAR(500)")
	assert.Contains(t, ddl, "metadata JSONB NOT NULL DEFAULT '{}'")

	// Should have display order with default
	assert.Contains(t, ddl, "display_order INT NOT NULL DEFAULT 0")
}

// TestExampleIndexDDL tests index generation for Example model
func TestExampleIndexDDL(t *testing.T) {
	e := schema.Example{}
	indexes := e.IndexDDL()

	require.NotEmpty(t, indexes)
	allIndexes := strings.Join(indexes, "\n")

	// Display order must be unique per pattern for a stable sort
	assert.Contains(t, allIndexes,
		"UNIQUE INDEX idx_examples_pattern_order")
	assert.Contains(t, allIndexes, "company")
}

// TestDDLGeneratorInterface verifies every model satisfies
// DDLGenerator.
func TestDDLGeneratorInterface(t *testing.T) {
	generators := []schema.DDLGenerator{
		schema.PatternCategory{},
		schema.Pattern{},
		schema.Example{},
		schema.Template{},
		schema.Submission{},
		schema.Contributor{},
	}

	for _, g := range generators {
		ddl := g.TableDDL()
		assert.Contains(t, ddl,
			"CREATE TABLE "+g.TableName())
	}
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	require.Len(t, models, 6)

	// Categories must come before patterns, patterns before
	// examples, so foreign keys resolve during migration.
	_, ok := models[0].(*schema.PatternCategory)
	assert.True(t, ok)
	_, ok = models[1].(*schema.Pattern)
	assert.True(t, ok)
	_, ok = models[2].(*schema.Example)
	assert.True(t, ok)
}
