// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/privacyui/pupdb/pkg/config"
	"github.com/privacyui/pupdb/pkg/db"
	"github.com/privacyui/pupdb/pkg/lifecycle"
	"github.com/privacyui/pupdb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using GORM
// AutoMigrate and seeds the initial pattern categories.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	// Connect with GORM
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	// Run GORM AutoMigrate to create schema
	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.seedCategories(ctx); err != nil {
		return err
	}

	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate, then upserts the initial categories
// so new seed entries appear after an upgrade.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	// Connect with GORM
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	if err := m.seedCategories(ctx); err != nil {
		return err
	}

	return nil
}

// seedCategories upserts the 16 curated pattern categories.
// Category IDs are deterministic UUID v5 values derived from the
// slug, so repeated seeding never duplicates rows.
func (m *manager) seedCategories(ctx context.Context) error {
	pool := m.operator.Pool()

	query := `
		INSERT INTO pattern_categories
			(id, name, slug, description, order_index, icon,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			order_index = EXCLUDED.order_index,
			icon = EXCLUDED.icon,
			updated_at = NOW()
	`

	for _, cat := range schema.InitialCategories() {
		_, err := pool.Exec(ctx, query,
			schema.CategoryID(cat.Slug),
			cat.Name,
			cat.Slug,
			cat.Description,
			cat.OrderIndex,
			cat.Icon,
		)
		if err != nil {
			return SeedCategoriesError(cat.Slug, err)
		}
	}

	return nil
}
