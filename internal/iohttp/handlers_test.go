package iohttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore returns canned results so handlers can be tested
// without a database.
type stubStore struct {
	categories    []CategoryWithStats
	categoriesErr error
	category      Category
	categoryErr   error
	mainPattern   Pattern
	mainErr       error
	patterns      []PatternListItem
	patternDetail PatternDetail
	patternErr    error
	searchRes     SearchResult
	searchCalled  bool
}

func (s *stubStore) Categories(
	ctx context.Context,
) ([]CategoryWithStats, error) {
	return s.categories, s.categoriesErr
}

func (s *stubStore) CategoryBySlug(
	ctx context.Context, slug string,
) (Category, error) {
	return s.category, s.categoryErr
}

func (s *stubStore) MainPattern(
	ctx context.Context, categoryID string,
) (Pattern, error) {
	return s.mainPattern, s.mainErr
}

func (s *stubStore) Patterns(
	ctx context.Context, categoryID string, limit, offset int,
) ([]PatternListItem, error) {
	return s.patterns, nil
}

func (s *stubStore) PatternByID(
	ctx context.Context, id string,
) (PatternDetail, error) {
	return s.patternDetail, s.patternErr
}

func (s *stubStore) PatternsByCategory(
	ctx context.Context, categoryID string, limit, offset int,
) ([]PatternListItem, error) {
	return s.patterns, nil
}

func (s *stubStore) Search(
	ctx context.Context, query string,
) (SearchResult, error) {
	s.searchCalled = true
	return s.searchRes, nil
}

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handlers{store: store}

	router := gin.New()
	api := router.Group("/api")
	api.GET("/categories", h.getCategories)
	api.GET("/categories/:slug/main-pattern", h.getMainPattern)
	api.GET("/patterns", h.getPatterns)
	api.GET("/patterns/category/:slug", h.getCategoryPatterns)
	api.GET("/patterns/:id", h.getPattern)
	api.GET("/search", h.search)
	return router
}

func doGet(
	t *testing.T, router *gin.Engine, path string,
) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetCategories(t *testing.T) {
	slug := "test-cookie-banners-pattern"
	store := &stubStore{
		categories: []CategoryWithStats{
			{
				Category:        Category{Name: "Cookie Banners", Slug: "cookie-banners"},
				PatternCount:    3,
				MainPatternSlug: &slug,
			},
			{
				Category: Category{Name: "Data Export", Slug: "data-export"},
			},
		},
	}
	router := newTestRouter(store)

	w, body := doGet(t, router, "/api/categories")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	assert.Equal(t, float64(3), first["pattern_count"])
	assert.Equal(t, slug, first["main_pattern_slug"])

	second := data[1].(map[string]any)
	assert.Nil(t, second["main_pattern_slug"])
}

func TestStoreErrorResponse(t *testing.T) {
	t.Run("store error message reaches the client", func(t *testing.T) {
		store := &stubStore{
			categoriesErr: errors.New("connection refused"),
		}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/categories")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "connection refused", body["error"])
	})

	t.Run("empty error message falls back", func(t *testing.T) {
		store := &stubStore{categoriesErr: errors.New("")}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/categories")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to fetch categories", body["error"])
	})
}

func TestGetMainPattern(t *testing.T) {
	t.Run("category missing", func(t *testing.T) {
		store := &stubStore{categoryErr: pgx.ErrNoRows}
		router := newTestRouter(store)

		w, body := doGet(t, router,
			"/api/categories/no-such/main-pattern")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Category not found", body["error"])
	})

	t.Run("category has no patterns", func(t *testing.T) {
		store := &stubStore{
			category: Category{ID: "cat-1", Slug: "data-export"},
			mainErr:  pgx.ErrNoRows,
		}
		router := newTestRouter(store)

		w, body := doGet(t, router,
			"/api/categories/data-export/main-pattern")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t,
			"No patterns found for this category", body["error"])
	})

	t.Run("category and pattern found", func(t *testing.T) {
		store := &stubStore{
			category:    Category{ID: "cat-1", Slug: "cookie-banners"},
			mainPattern: Pattern{ID: "pat-1", Slug: "cookie-consent-banner"},
		}
		router := newTestRouter(store)

		w, body := doGet(t, router,
			"/api/categories/cookie-banners/main-pattern")
		assert.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		category := data["category"].(map[string]any)
		pattern := data["pattern"].(map[string]any)
		assert.Equal(t, "cookie-banners", category["slug"])
		assert.Equal(t, "cookie-consent-banner", pattern["slug"])
	})
}

func TestGetPatterns(t *testing.T) {
	store := &stubStore{
		patterns: []PatternListItem{
			{Pattern: Pattern{ID: "pat-1"}, ExampleCount: 4},
		},
	}
	router := newTestRouter(store)

	t.Run("default pagination is echoed", func(t *testing.T) {
		w, body := doGet(t, router, "/api/patterns")
		assert.Equal(t, http.StatusOK, w.Code)

		page := body["pagination"].(map[string]any)
		assert.Equal(t, float64(50), page["limit"])
		assert.Equal(t, float64(0), page["offset"])
	})

	t.Run("explicit pagination is echoed", func(t *testing.T) {
		_, body := doGet(t, router, "/api/patterns?limit=5&offset=10")
		page := body["pagination"].(map[string]any)
		assert.Equal(t, float64(5), page["limit"])
		assert.Equal(t, float64(10), page["offset"])
	})

	t.Run("garbage pagination falls back", func(t *testing.T) {
		_, body := doGet(t, router, "/api/patterns?limit=ten&offset=-3")
		page := body["pagination"].(map[string]any)
		assert.Equal(t, float64(50), page["limit"])
		assert.Equal(t, float64(0), page["offset"])
	})
}

func TestGetPattern(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		store := &stubStore{patternErr: pgx.ErrNoRows}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/patterns/no-such-id")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Pattern not found", body["error"])
	})

	t.Run("found with examples", func(t *testing.T) {
		store := &stubStore{
			patternDetail: PatternDetail{
				Pattern:  Pattern{ID: "pat-1"},
				Category: &Category{Slug: "cookie-banners"},
				Examples: []Example{
					{ID: "ex-1", DisplayOrder: 1},
					{ID: "ex-2", DisplayOrder: 2},
				},
			},
		}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/patterns/pat-1")
		assert.Equal(t, http.StatusOK, w.Code)

		data := body["data"].(map[string]any)
		examples := data["examples"].([]any)
		assert.Len(t, examples, 2)
	})
}

func TestGetCategoryPatterns(t *testing.T) {
	t.Run("category missing", func(t *testing.T) {
		store := &stubStore{categoryErr: pgx.ErrNoRows}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/patterns/category/no-such")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Category not found", body["error"])
	})

	t.Run("default limit is 20", func(t *testing.T) {
		store := &stubStore{
			category: Category{ID: "cat-1", Slug: "cookie-banners"},
		}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/patterns/category/cookie-banners")
		assert.Equal(t, http.StatusOK, w.Code)

		page := body["pagination"].(map[string]any)
		assert.Equal(t, float64(20), page["limit"])

		data := body["data"].(map[string]any)
		assert.Equal(t, "cookie-banners",
			data["category"].(map[string]any)["slug"])
	})
}

func TestSearch(t *testing.T) {
	t.Run("short query short-circuits", func(t *testing.T) {
		store := &stubStore{}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/search?q=a")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		assert.False(t, store.searchCalled)

		data := body["data"].(map[string]any)
		assert.Empty(t, data["patterns"])
		assert.Empty(t, data["examples"])
	})

	t.Run("single multibyte rune short-circuits", func(t *testing.T) {
		store := &stubStore{}
		router := newTestRouter(store)

		_, body := doGet(t, router, "/api/search?q=%C3%A9")
		assert.Equal(t, true, body["success"])
		assert.False(t, store.searchCalled)
	})

	t.Run("empty query short-circuits", func(t *testing.T) {
		store := &stubStore{}
		router := newTestRouter(store)

		_, body := doGet(t, router, "/api/search")
		assert.Equal(t, true, body["success"])
		assert.False(t, store.searchCalled)
	})

	t.Run("real query hits the store", func(t *testing.T) {
		store := &stubStore{
			searchRes: SearchResult{
				Patterns: []PatternHit{{ID: "pat-1", Title: "Cookie Banner"}},
				Examples: []ExampleHit{},
			},
		}
		router := newTestRouter(store)

		w, body := doGet(t, router, "/api/search?q=cookie")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, store.searchCalled)

		data := body["data"].(map[string]any)
		patterns := data["patterns"].([]any)
		require.Len(t, patterns, 1)
		assert.Equal(t, "Cookie Banner",
			patterns[0].(map[string]any)["title"])
	})
}
