package ioimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		msg, input, sep string
		want            []string
	}{
		{"comma separated",
			"Proactive, Privacy by Default, End-to-End Security", ",",
			[]string{"Proactive", "Privacy by Default", "End-to-End Security"}},
		{"semicolon separated",
			"Visibility of system status; User control and freedom", ";",
			[]string{"Visibility of system status", "User control and freedom"}},
		{"empty input", "", ",", []string{}},
		{"dangling separators", ", Proactive, ,", ",",
			[]string{"Proactive"}},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, splitList(v.input, v.sep), v.msg)
	}
}

func TestSanitizeCompany(t *testing.T) {
	tests := []struct {
		msg, input, want string
	}{
		{"plain", "Google", "Google"},
		{"spaces and punctuation", "Duck Duck Go!", "Duck_Duck_Go_"},
		{"dots", "Last.fm", "Last_fm"},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, sanitizeCompany(v.input), v.msg)
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", cleanText("a\nb\n  c\n"))
	assert.Equal(t, "", cleanText("  \n "))
}

func TestContentFor(t *testing.T) {
	t.Run("curated slug", func(t *testing.T) {
		content := ContentFor("cookie-consent-banner", ParsedPattern{
			PatternName: "Cookie Consent Banners",
		})
		assert.Equal(t, "Cookie Consent Banner", content.Title)
		assert.NotEmpty(t, content.Explanation)
		assert.NotEmpty(t, content.Relevance)
	})

	t.Run("unknown slug falls back to scraped text", func(t *testing.T) {
		content := ContentFor("mystery-pattern", ParsedPattern{
			PatternName: "Mystery Pattern",
			Description: "Scraped description",
		})
		assert.Equal(t, "Mystery Pattern", content.Title)
		assert.Equal(t, "Scraped description", content.Description)
		assert.NotEmpty(t, content.Explanation)
	})

	t.Run("unknown slug without description", func(t *testing.T) {
		content := ContentFor("mystery-pattern", ParsedPattern{
			PatternName: "Mystery Pattern",
		})
		assert.Equal(t, "Patterns for mystery pattern", content.Description)
	})
}
