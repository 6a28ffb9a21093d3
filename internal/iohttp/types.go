package iohttp

import (
	"time"

	"github.com/privacyui/pupdb/pkg/schema"
)

// Category is a pattern category as it appears in API responses.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryWithStats augments a category with the pattern count and
// the slug of its main pattern (the oldest one, nil when the
// category has no patterns yet).
type CategoryWithStats struct {
	Category
	PatternCount    int     `json:"pattern_count"`
	MainPatternSlug *string `json:"main_pattern_slug"`
}

// Pattern is a privacy UI pattern as it appears in API responses.
type Pattern struct {
	ID               string           `json:"id"`
	CategoryID       string           `json:"category_id"`
	Slug             string           `json:"slug"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Explanation      string           `json:"explanation"`
	Relevance        string           `json:"relevance"`
	Sources          schema.Sources   `json:"sources"`
	PbdAlignment     schema.Alignment `json:"pbd_alignment"`
	NielsenAlignment schema.Alignment `json:"nielsen_alignment"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// PatternListItem augments a pattern with its category and example
// count for list endpoints.
type PatternListItem struct {
	Pattern
	Category     *Category `json:"category,omitempty"`
	ExampleCount int       `json:"example_count"`
}

// PatternDetail is a pattern with its category and all examples.
type PatternDetail struct {
	Pattern
	Category *Category `json:"category"`
	Examples []Example `json:"examples"`
}

// Example is a real-world example as it appears in API responses.
type Example struct {
	ID                   string          `json:"id"`
	PatternID            string          `json:"pattern_id"`
	Company              string          `json:"company"`
	Title                string          `json:"title"`
	UseCase              string          `json:"use_case"`
	Description          string          `json:"description"`
	WhySelected          string          `json:"why_selected"`
	ScreenshotURL        string          `json:"screenshot_url"`
	CroppedScreenshotURL *string         `json:"cropped_screenshot_url"`
	SourceURL            string          `json:"source_url"`
	Metadata             schema.Metadata `json:"metadata"`
	DisplayOrder         int             `json:"display_order"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// MainPattern pairs a category with its oldest pattern.
type MainPattern struct {
	Category Category `json:"category"`
	Pattern  Pattern  `json:"pattern"`
}

// CategoryPatterns pairs a category with a page of its patterns.
type CategoryPatterns struct {
	Category Category          `json:"category"`
	Patterns []PatternListItem `json:"patterns"`
}

// CategoryRef is the category breadcrumb attached to search hits.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PatternRef is the pattern breadcrumb attached to example hits.
type PatternRef struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Slug     string      `json:"slug"`
	Category CategoryRef `json:"category"`
}

// PatternHit is a pattern search result.
type PatternHit struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Category    CategoryRef `json:"category"`
}

// ExampleHit is an example search result.
type ExampleHit struct {
	ID      string     `json:"id"`
	Company string     `json:"company"`
	Title   string     `json:"title"`
	Pattern PatternRef `json:"pattern"`
}

// SearchResult groups pattern and example hits for one query.
type SearchResult struct {
	Patterns []PatternHit `json:"patterns"`
	Examples []ExampleHit `json:"examples"`
}

// Pagination echoes the paging parameters of a list response.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
