package lifecycle

import (
	"context"
)

// CopyResult accumulates the outcome of one screenshot copy run.
// Per-directory results are merged by the caller, so the walk needs
// no shared mutable state.
type CopyResult struct {
	// Copied is the number of files written to the public tree.
	Copied int

	// Skipped is the number of files whose destination already existed.
	Skipped int

	// Errors lists per-file failures that did not abort the walk.
	Errors []string
}

// Merge folds another result into this one.
func (r *CopyResult) Merge(other CopyResult) {
	r.Copied += other.Copied
	r.Skipped += other.Skipped
	r.Errors = append(r.Errors, other.Errors...)
}

// FixResult accumulates the outcome of one URL-fix run.
type FixResult struct {
	// Checked is the number of example rows examined.
	Checked int

	// Fixed is the number of rows whose screenshot_url was updated.
	Fixed int

	// NotFound is the number of broken URLs with no acceptable match.
	NotFound int

	// Errors lists per-row failures that did not abort the run.
	Errors []string
}

// ScreenshotCopier mirrors image files from the scraper output tree
// into the public static-asset tree. Copying is idempotent: a
// destination that already exists is never overwritten.
type ScreenshotCopier interface {
	// Copy walks the scraper tree and copies recognized image files,
	// preserving subdirectory structure, then writes a catch-all
	// .gitignore into the destination root. A missing source root is
	// fatal; individual file failures are collected in the result.
	Copy(ctx context.Context) (CopyResult, error)
}

// URLFixer reconciles stored screenshot_url values with the files
// actually present in the public tree, using normalized-filename
// matching with a fuzzy fallback.
type URLFixer interface {
	// FixURLs scans the public tree, fetches all example rows, and
	// updates broken URLs in place. Per-row failures are collected in
	// the result; only a failed scan or fetch aborts the run.
	FixURLs(ctx context.Context) (FixResult, error)
}
