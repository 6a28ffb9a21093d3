package ioimport

// ParsedData is the shape of parsed_data.json produced by the
// screenshot scraper.
type ParsedData struct {
	Patterns []ParsedPattern `json:"patterns"`
}

// ParsedPattern is one scraped pattern with its examples.
type ParsedPattern struct {
	// PatternNumber matches the numeric prefix of the scraper's
	// category folder.
	PatternNumber int `json:"pattern_number"`

	// PatternName is the scraper's raw pattern name; folder naming
	// conventions for it drifted over time.
	PatternName string `json:"pattern_name"`

	Description string          `json:"description,omitempty"`
	Examples    []ParsedExample `json:"examples"`
}

// ParsedExample is one scraped real-world example.
type ParsedExample struct {
	Company     string `json:"company"`
	Title       string `json:"title,omitempty"`
	UseCase     string `json:"use_case,omitempty"`
	Description string `json:"description,omitempty"`
	WhySelected string `json:"why_selected,omitempty"`

	// ScreenshotFile is the captured filename; when empty the
	// importer falls back to example_<n>_<company>.png.
	ScreenshotFile string `json:"screenshot_file,omitempty"`

	// ExampleNumber doubles as the display order.
	ExampleNumber int `json:"example_number"`

	// URL is the page the screenshot was captured from.
	URL string `json:"url"`

	// PbdAlignment is a comma-separated list of PbD principles.
	PbdAlignment string `json:"pbd_alignment,omitempty"`

	// NielsenHeuristics is a semicolon-separated list of heuristics.
	NielsenHeuristics string `json:"nielsen_heuristics,omitempty"`
}
