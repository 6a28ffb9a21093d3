package ioimport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/privacyui/pupdb/pkg/errcode"
)

// NotConnectedError creates an error for an import attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Import attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// DataFileError creates an error for an unreadable data file.
func DataFileError(path string, err error) error {
	msg := "Cannot read data file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ImportDataFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read data file %s: %w", path, err),
	}
}

// ParseError creates an error for a data file that is not valid JSON.
func ParseError(path string, err error) error {
	msg := "Cannot parse data file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ImportParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse data file %s: %w", path, err),
	}
}

// CategoriesError creates an error for a failed category lookup.
func CategoriesError(err error) error {
	msg := "Cannot load categories from database"

	return &gn.Error{
		Code: errcode.ImportCategoriesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot load categories: %w", err),
	}
}
