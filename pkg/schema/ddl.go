package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// PatternCategory DDL methods
func (pc PatternCategory) TableDDL() string {
	return generateDDL(pc, "pattern_categories")
}

func (pc PatternCategory) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_pattern_categories_slug ON pattern_categories(slug);",
		"CREATE INDEX idx_pattern_categories_order ON pattern_categories(order_index);",
	}
}

func (pc PatternCategory) TableName() string {
	return "pattern_categories"
}

// Pattern DDL methods
func (p Pattern) TableDDL() string {
	return generateDDL(p, "patterns")
}

func (p Pattern) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_patterns_category_slug ON patterns(category_id, slug);",
		"CREATE INDEX idx_patterns_category ON patterns(category_id);",
	}
}

func (p Pattern) TableName() string {
	return "patterns"
}

// Example DDL methods
func (e Example) TableDDL() string {
	return generateDDL(e, "examples")
}

func (e Example) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_examples_pattern_order ON examples(pattern_id, display_order);",
		"CREATE INDEX idx_examples_pattern ON examples(pattern_id);",
		"CREATE INDEX idx_examples_company ON examples(company);",
	}
}

func (e Example) TableName() string {
	return "examples"
}

// Template DDL methods
func (t Template) TableDDL() string {
	return generateDDL(t, "templates")
}

func (t Template) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_templates_pattern ON templates(pattern_id);",
	}
}

func (t Template) TableName() string {
	return "templates"
}

// Submission DDL methods
func (s Submission) TableDDL() string {
	return generateDDL(s, "submissions")
}

func (s Submission) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_submissions_status ON submissions(status);",
		"CREATE INDEX idx_submissions_type ON submissions(submission_type);",
	}
}

func (s Submission) TableName() string {
	return "submissions"
}

// Contributor DDL methods
func (c Contributor) TableDDL() string {
	return generateDDL(c, "contributors")
}

func (c Contributor) IndexDDL() []string {
	return nil
}

func (c Contributor) TableName() string {
	return "contributors"
}
