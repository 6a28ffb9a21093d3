package ioseed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/privacyui/pupdb/pkg/errcode"
)

// NotConnectedError creates an error for seeding attempted without
// a database connection.
func NotConnectedError() error {
	msg := "Seeding attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NoCategoriesError creates an error for an empty category table.
func NoCategoriesError() error {
	msg := "No categories found, run <em>pupdb migrate</em> first"

	return &gn.Error{
		Code: errcode.SeedNoCategoriesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("no categories found"),
	}
}

// FetchCategoriesError creates an error for a failed category query.
func FetchCategoriesError(err error) error {
	msg := "Cannot fetch categories from database"

	return &gn.Error{
		Code: errcode.SeedNoCategoriesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot fetch categories: %w", err),
	}
}

// SeedPatternError creates an error for a failed test pattern insert.
func SeedPatternError(category string, err error) error {
	msg := "Cannot create test pattern for <em>%s</em>"
	vars := []any{category}

	return &gn.Error{
		Code: errcode.SeedPatternError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("cannot create test pattern for %s: %w",
			category, err),
	}
}

// SeedExampleError creates an error for a failed test example insert.
func SeedExampleError(company string, err error) error {
	msg := "Cannot create test example for <em>%s</em>"
	vars := []any{company}

	return &gn.Error{
		Code: errcode.SeedExampleError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("cannot create test example for %s: %w",
			company, err),
	}
}
