package ioscreens

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/privacyui/pupdb/pkg/errcode"
)

// SourceMissingError creates a fatal error for a missing scraper
// output directory.
func SourceMissingError(dir string, err error) error {
	msg := `Source directory not found: <em>%s</em>

<em>How to fix:</em>
  1. Run the scraper first, or
  2. Point screenshots.scraper_dir at the scraper output tree`
	vars := []any{dir}

	if err == nil {
		err = fmt.Errorf("not a directory")
	}
	return &gn.Error{
		Code: errcode.ScreensSourceMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("source directory %s: %w", dir, err),
	}
}

// CreateDestError creates an error for a destination directory that
// cannot be created.
func CreateDestError(dir string, err error) error {
	msg := "Cannot create destination directory <em>%s</em>"
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create %s: %w", dir, err),
	}
}

// ScanError creates an error for an unreadable directory during a walk.
func ScanError(dir string, err error) error {
	msg := "Cannot read directory <em>%s</em>"
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.ScreensScanError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read directory %s: %w", dir, err),
	}
}

// GitignoreError creates an error for a failed .gitignore write.
func GitignoreError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ScreensGitignoreError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write gitignore %s: %w", path, err),
	}
}

// NotConnectedError creates an error for a fix attempted without a
// database connection.
func NotConnectedError() error {
	msg := "URL fix attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// FetchExamplesError creates an error for a failed examples query.
func FetchExamplesError(err error) error {
	msg := "Cannot fetch examples from the database"

	return &gn.Error{
		Code: errcode.ScreensFetchExamplesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot fetch examples: %w", err),
	}
}
