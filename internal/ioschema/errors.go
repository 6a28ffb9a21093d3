package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/privacyui/pupdb/pkg/errcode"
)

// NotConnectedError creates an error for schema operations
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for a failed GORM session.
func GORMConnectionError(err error) error {
	msg := "Cannot open GORM session over the connection pool"

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot open gorm session: %w", err),
	}
}

// CreateSchemaError creates an error for a failed schema creation.
func CreateSchemaError(err error) error {
	msg := "Cannot create database schema"

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("automigrate failed: %w", err),
	}
}

// MigrateSchemaError creates an error for a failed migration.
func MigrateSchemaError(err error) error {
	msg := "Cannot migrate database schema"

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("automigrate failed: %w", err),
	}
}

// SeedCategoriesError creates an error for a failed category upsert.
func SeedCategoriesError(slug string, err error) error {
	msg := "Cannot seed category <em>%s</em>"
	vars := []any{slug}

	return &gn.Error{
		Code: errcode.SchemaSeedCategoriesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot seed category %s: %w", slug, err),
	}
}
