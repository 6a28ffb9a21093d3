package lifecycle

import (
	"context"
)

// ImportResult accumulates the outcome of one pattern import run.
type ImportResult struct {
	// PatternsCreated is the number of new pattern rows inserted.
	PatternsCreated int

	// PatternsSkipped counts patterns skipped because no category
	// mapping exists or the (category, slug) pair already exists.
	PatternsSkipped int

	// ExamplesCreated is the number of example rows inserted.
	ExamplesCreated int

	// Errors lists per-item failures that did not abort the run.
	Errors []string
}

// Importer reads a scraped parsed_data.json document and inserts
// patterns and examples into the catalog. There is no transactional
// all-or-nothing guarantee: a failed item is logged and the run
// continues with the next one.
type Importer interface {
	// Import runs the whole import. A missing or unparsable data file
	// is fatal; per-item insertion failures are collected in the result.
	Import(ctx context.Context) (ImportResult, error)
}

// Seeder creates synthetic catalog content for local development:
// one test pattern with three examples for up to three categories.
type Seeder interface {
	Seed(ctx context.Context) error
}
