package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Order matters: referenced tables come before referencing ones.
func AllModels() []interface{} {
	return []interface{}{
		&PatternCategory{},
		&Pattern{},
		&Example{},
		&Template{},
		&Contributor{},
		&Submission{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
