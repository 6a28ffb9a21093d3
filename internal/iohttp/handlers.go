package iohttp

import (
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// handlers holds the route handlers for the catalog API.
type handlers struct {
	store Store
}

// envelope is the uniform response wrapper of the API.
type envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondPage(c *gin.Context, data any, page Pagination) {
	c.JSON(http.StatusOK, envelope{
		Success:    true,
		Data:       data,
		Pagination: &page,
	})
}

func respondNotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, envelope{Success: false, Error: msg})
}

// respondError logs the failure and returns a 500 carrying the
// store error's message, falling back to msg when there is none.
func respondError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "path", c.FullPath(), "error", err)
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError,
		envelope{Success: false, Error: msg})
}

// intQuery parses an integer query parameter, falling back to a
// default on absence or garbage.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return fallback
	}
	return val
}

// getCategories returns all categories with pattern counts.
// GET /api/categories
func (h *handlers) getCategories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch categories", err)
		return
	}
	respondOK(c, categories)
}

// getMainPattern returns a category and its oldest pattern.
// GET /api/categories/:slug/main-pattern
func (h *handlers) getMainPattern(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	category, err := h.store.CategoryBySlug(ctx, slug)
	if errNotFound(err) {
		respondNotFound(c, "Category not found")
		return
	}
	if err != nil {
		respondError(c, "Failed to fetch main pattern", err)
		return
	}

	pattern, err := h.store.MainPattern(ctx, category.ID)
	if errNotFound(err) {
		respondNotFound(c, "No patterns found for this category")
		return
	}
	if err != nil {
		respondError(c, "Failed to fetch main pattern", err)
		return
	}

	respondOK(c, MainPattern{Category: category, Pattern: pattern})
}

// getPatterns returns a page of patterns, newest first, optionally
// filtered by category id.
// GET /api/patterns?category_id=&limit=&offset=
func (h *handlers) getPatterns(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	categoryID := c.Query("category_id")

	patterns, err := h.store.Patterns(
		c.Request.Context(), categoryID, limit, offset,
	)
	if err != nil {
		respondError(c, "Failed to fetch patterns", err)
		return
	}

	respondPage(c, patterns, Pagination{Limit: limit, Offset: offset})
}

// getPattern returns one pattern with category and examples.
// GET /api/patterns/:id
func (h *handlers) getPattern(c *gin.Context) {
	pattern, err := h.store.PatternByID(
		c.Request.Context(), c.Param("id"),
	)
	if errNotFound(err) {
		respondNotFound(c, "Pattern not found")
		return
	}
	if err != nil {
		respondError(c, "Failed to fetch pattern", err)
		return
	}
	respondOK(c, pattern)
}

// getCategoryPatterns returns a category and a page of its
// patterns.
// GET /api/patterns/category/:slug?limit=&offset=
func (h *handlers) getCategoryPatterns(c *gin.Context) {
	ctx := c.Request.Context()
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)

	category, err := h.store.CategoryBySlug(ctx, c.Param("slug"))
	if errNotFound(err) {
		respondNotFound(c, "Category not found")
		return
	}
	if err != nil {
		respondError(c, "Failed to fetch patterns", err)
		return
	}

	patterns, err := h.store.PatternsByCategory(
		ctx, category.ID, limit, offset,
	)
	if err != nil {
		respondError(c, "Failed to fetch patterns", err)
		return
	}

	respondPage(c,
		CategoryPatterns{Category: category, Patterns: patterns},
		Pagination{Limit: limit, Offset: offset},
	)
}

// search returns pattern and example hits for a query. Queries
// shorter than two characters return empty results without
// touching the database.
// GET /api/search?q=
func (h *handlers) search(c *gin.Context) {
	query := c.Query("q")
	if utf8.RuneCountInString(query) < 2 {
		respondOK(c, SearchResult{
			Patterns: []PatternHit{},
			Examples: []ExampleHit{},
		})
		return
	}

	res, err := h.store.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, "Failed to search", err)
		return
	}
	respondOK(c, res)
}
