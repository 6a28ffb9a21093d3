// Package schema provides database schema models for the privacy
// UI pattern catalog. Models align with the hosted database the
// web application reads from.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// PatternCategory groups related privacy UI patterns
// (e.g. "Cookie Banners"). Categories are seeded once and
// rarely mutated.
type PatternCategory struct {
	// ID is UUID v5 generated from the category slug, so reseeding
	// is idempotent.
	ID string `gorm:"type:uuid;primaryKey" db:"id" ddl:"UUID PRIMARY KEY"`

	// Name is the display name of the category.
	Name string `gorm:"size:255;not null" db:"name" ddl:"VARCHAR(255) NOT NULL"`

	// Slug is the unique URL-safe identifier.
	Slug string `gorm:"size:255;not null;uniqueIndex" db:"slug" ddl:"VARCHAR(255) NOT NULL UNIQUE"`

	// Description summarizes what the category covers.
	Description string `gorm:"type:text" db:"description" ddl:"TEXT"`

	// OrderIndex defines display ordering on the catalog page.
	OrderIndex int `db:"order_index" ddl:"INT NOT NULL DEFAULT 0"`

	// Icon is a symbolic icon name used by the presentation layer.
	Icon string `gorm:"size:50" db:"icon" ddl:"VARCHAR(50)"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// Pattern is a named UI/UX solution to a recurring
// privacy-disclosure problem, owned by exactly one category.
type Pattern struct {
	// ID is UUID v5 generated from "<category-slug>/<pattern-slug>".
	ID string `gorm:"type:uuid;primaryKey" db:"id" ddl:"UUID PRIMARY KEY"`

	// CategoryID references the owning category.
	CategoryID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_patterns_category_slug" db:"category_id" ddl:"UUID NOT NULL REFERENCES pattern_categories(id)"`

	// Title is the display title of the pattern.
	Title string `gorm:"size:255;not null" db:"title" ddl:"VARCHAR(255) NOT NULL"`

	// Slug is unique within the owning category.
	Slug string `gorm:"size:255;not null;uniqueIndex:idx_patterns_category_slug" db:"slug" ddl:"VARCHAR(255) NOT NULL"`

	// Description is a one-sentence summary.
	Description string `gorm:"type:text" db:"description" ddl:"TEXT"`

	// Explanation is the long-form discussion of the pattern.
	Explanation string `gorm:"type:text" db:"explanation" ddl:"TEXT"`

	// Relevance explains which regulations make the pattern matter.
	Relevance string `gorm:"type:text" db:"relevance" ddl:"TEXT"`

	// Sources is the ordered citation list.
	Sources Sources `gorm:"type:jsonb" db:"sources" ddl:"JSONB NOT NULL DEFAULT '[]'"`

	// PbdAlignment flags the pattern against Cavoukian's 7
	// Privacy-by-Design principles.
	PbdAlignment Alignment `gorm:"type:jsonb" db:"pbd_alignment" ddl:"JSONB NOT NULL DEFAULT '{}'"`

	// NielsenAlignment flags the pattern against Nielsen's 10
	// usability heuristics.
	NielsenAlignment Alignment `gorm:"type:jsonb" db:"nielsen_alignment" ddl:"JSONB NOT NULL DEFAULT '{}'"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// Example is a real-world instance of a pattern, tied to a
// company, with a screenshot and sourcing metadata.
type Example struct {
	ID string `gorm:"type:uuid;primaryKey" db:"id" ddl:"UUID PRIMARY KEY"`

	// PatternID references the owning pattern.
	PatternID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_examples_pattern_order" db:"pattern_id" ddl:"UUID NOT NULL REFERENCES patterns(id)"`

	// Company is the organization whose UI is shown.
	Company string `gorm:"size:255;not null" db:"company" ddl:"VARCHAR(255) NOT NULL"`

	// Title is the display title of the example.
	Title string `gorm:"size:255" db:"title" ddl:"VARCHAR(255)"`

	// UseCase describes where the company applies the pattern.
	UseCase string `gorm:"type:text" db:"use_case" ddl:"TEXT"`

	// Description is free-form commentary.
	Description string `gorm:"type:text" db:"description" ddl:"TEXT"`

	// WhySelected records why the curator picked this example.
	WhySelected string `gorm:"type:text" db:"why_selected" ddl:"TEXT"`

	// ScreenshotURL is a path into the public static-asset tree.
	ScreenshotURL string `gorm:"size:500" db:"screenshot_url" ddl:"VARCHAR(500)"`

	// CroppedScreenshotURL is an optional tighter crop.
	CroppedScreenshotURL sql.NullString `gorm:"size:500" db:"cropped_screenshot_url" ddl:"VARCHAR(500)"`

	// SourceURL is the page the screenshot was captured from.
	SourceURL string `gorm:"size:500" db:"source_url" ddl:"VARCHAR(500)"`

	// Metadata holds free-form key/value data (platform, raw
	// alignment strings from the scraper, etc.).
	Metadata Metadata `gorm:"type:jsonb" db:"metadata" ddl:"JSONB NOT NULL DEFAULT '{}'"`

	// DisplayOrder defines presentation order within a pattern.
	// Unique per pattern for a stable sort.
	DisplayOrder int `gorm:"not null;uniqueIndex:idx_examples_pattern_order" db:"display_order" ddl:"INT NOT NULL DEFAULT 0"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// Template is a downloadable design artifact (Figma file) for
// a pattern. Counters increase monotonically.
type Template struct {
	ID string `gorm:"type:uuid;primaryKey" db:"id" ddl:"UUID PRIMARY KEY"`

	// PatternID references the owning pattern.
	PatternID string `gorm:"type:uuid;not null;index" db:"pattern_id" ddl:"UUID NOT NULL REFERENCES patterns(id)"`

	// Title is the display title of the template.
	Title string `gorm:"size:255;not null" db:"title" ddl:"VARCHAR(255) NOT NULL"`

	// Description summarizes the template.
	Description string `gorm:"type:text" db:"description" ddl:"TEXT"`

	// FigmaFileURL links to the Figma file.
	FigmaFileURL string `gorm:"size:500" db:"figma_file_url" ddl:"VARCHAR(500)"`

	// ThumbnailURL is a preview image path.
	ThumbnailURL string `gorm:"size:500" db:"thumbnail_url" ddl:"VARCHAR(500)"`

	// DownloadCount counts template downloads.
	DownloadCount int `gorm:"not null;default:0" db:"download_count" ddl:"INT NOT NULL DEFAULT 0"`

	// ExternalClickCount counts clicks through to Figma.
	ExternalClickCount int `gorm:"not null;default:0" db:"external_click_count" ddl:"INT NOT NULL DEFAULT 0"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// Submission types and statuses.
const (
	SubmissionTypeExample    = "example"
	SubmissionTypeTemplate   = "template"
	SubmissionTypeNewPattern = "new_pattern"

	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Submission is a user-proposed addition or edit to the catalog.
type Submission struct {
	ID string `gorm:"type:uuid;primaryKey" db:"id" ddl:"UUID PRIMARY KEY"`

	// SubmissionType is one of: example, template, new_pattern.
	SubmissionType string `gorm:"size:20;not null" db:"submission_type" ddl:"VARCHAR(20) NOT NULL"`

	// Status is one of: pending, approved, rejected.
	Status string `gorm:"size:20;not null;default:pending;index" db:"status" ddl:"VARCHAR(20) NOT NULL DEFAULT 'pending'"`

	// PatternID optionally references an existing pattern.
	PatternID sql.NullString `gorm:"type:uuid" db:"pattern_id" ddl:"UUID REFERENCES patterns(id)"`

	// CategoryID optionally references an existing category.
	CategoryID sql.NullString `gorm:"type:uuid" db:"category_id" ddl:"UUID REFERENCES pattern_categories(id)"`

	// ContributorID references the submitting contributor.
	ContributorID sql.NullString `gorm:"type:uuid" db:"contributor_id" ddl:"UUID REFERENCES contributors(id)"`

	// Content is the proposed data, shape depends on SubmissionType.
	Content Metadata `gorm:"type:jsonb" db:"content" ddl:"JSONB NOT NULL DEFAULT '{}'"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// Contributor is a display identity whose contribution count
// maps to a badge tier.
type Contributor struct {
	ID string `gorm:"type:uuid;primaryKey" db:"id" ddl:"UUID PRIMARY KEY"`

	// Name is the display name.
	Name string `gorm:"size:255;not null" db:"name" ddl:"VARCHAR(255) NOT NULL"`

	// AvatarURL is an optional profile image.
	AvatarURL string `gorm:"size:500" db:"avatar_url" ddl:"VARCHAR(500)"`

	// ContributionCount increases monotonically with approved
	// submissions.
	ContributionCount int `gorm:"not null;default:0" db:"contribution_count" ddl:"INT NOT NULL DEFAULT 0"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}
