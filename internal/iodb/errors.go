package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/privacyui/pupdb/pkg/errcode"
)

// ConnectionError creates an error for a failed database connection.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Could not connect to PostgreSQL database

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify the database exists:
     <em>psql -h %s -U %s -l</em>

  3. Check your configuration:
     <em>~/.config/pupdb/config.yaml</em> or PUPDB_DATABASE_* variables`
	vars := []any{host, port, host, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"cannot connect to %s@%s:%d/%s: %w",
			user, host, port, database, err),
	}
}

// NotConnectedError creates an error for operations attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for a failed table existence check.
func TableCheckError(err error) error {
	msg := "Cannot check for existing tables"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot check tables: %w", err),
	}
}

// TableExistsCheckError creates an error for a failed check of one table.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot check table %s: %w", table, err),
	}
}

// QueryTablesError creates an error for a failed table listing.
func QueryTablesError(err error) error {
	msg := "Cannot list tables in public schema"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot query tables: %w", err),
	}
}

// ScanTableError creates an error for a failed table name scan.
func ScanTableError(err error) error {
	msg := "Cannot read table names"

	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot scan table name: %w", err),
	}
}

// DropTableError creates an error for a failed DROP TABLE.
func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot drop table %s: %w", table, err),
	}
}
