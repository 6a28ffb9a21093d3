package schema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Source is a citation attached to a pattern.
type Source struct {
	// Title is the human-readable name of the source.
	Title string `json:"title"`

	// URL points to the source document.
	URL string `json:"url"`

	// Type is one of: academic, industry, regulatory, blog.
	Type string `json:"type,omitempty"`
}

// Sources is an ordered list of citations stored as JSONB.
type Sources []Source

// Alignment maps taxonomy principle IDs to boolean flags,
// stored as JSONB. Used for both Privacy-by-Design principles
// and Nielsen heuristics.
type Alignment map[string]bool

// Metadata is free-form key/value data stored as JSONB.
type Metadata map[string]any

// Value implements driver.Valuer for JSONB storage.
func (s Sources) Value() (driver.Value, error) {
	if s == nil {
		s = Sources{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (s *Sources) Scan(value any) error {
	return scanJSON(value, s)
}

// Value implements driver.Valuer for JSONB storage.
func (a Alignment) Value() (driver.Value, error) {
	if a == nil {
		a = Alignment{}
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (a *Alignment) Scan(value any) error {
	return scanJSON(value, a)
}

// Value implements driver.Valuer for JSONB storage.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		m = Metadata{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *Metadata) Scan(value any) error {
	return scanJSON(value, m)
}

func scanJSON(value, dest any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", value)
	}
}
