package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaSeedCategoriesError

	// Screenshot errors
	ScreensSourceMissingError
	ScreensScanError
	ScreensGitignoreError
	ScreensFetchExamplesError
	ScreensUpdateURLError

	// Import errors
	ImportDataFileError
	ImportParseError
	ImportCategoriesError
	ImportPatternError
	ImportExampleError

	// Seed errors
	SeedNoCategoriesError
	SeedPatternError
	SeedExampleError

	// Server errors
	ServerStartError
)
