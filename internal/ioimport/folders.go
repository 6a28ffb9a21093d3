package ioimport

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// categoryByKey maps canonical folder keys to database category
// slugs. The scraper's folder names drifted over time (different
// hyphen codepoints, underscores, parentheses, a REDO: marker), so
// every historical variant of the same logical category reduces to
// one canonical key via CanonicalKey instead of being listed here
// verbatim.
var categoryByKey = map[string]string{
	"cookie consent banners":                        "cookie-banners",
	"just in time":                                  "just-in-time-consent",
	"permission requests camera microphone location": "permission-requests",
	"privacy settings":                              "privacy-dashboards",
	"third party":                                   "third-party-tracking",
	"device permission flows ios android":           "device-permissions",
	"contextual consent for sensitive data":         "consent-management",
	"child privacy":                                 "child-privacy",
	"privacy first":                                 "privacy-defaults",
	"data access":                                   "data-access-rights",
	"incident breach notifications":                 "incident-notifications",
	"biometric privacy controls":                    "biometric-privacy",
	"data retention":                                "data-retention",
}

// CanonicalKey reduces a folder or pattern name to its canonical
// lookup key: leading number prefix and REDO: markers dropped,
// lower-cased, every punctuation/separator run collapsed to a
// single space. "07_REDO:_Third‑Party" and "07_Third_Party" both
// become "third party".
func CanonicalKey(name string) string {
	tokens := tokenize(name)

	// Drop the numeric folder prefix and redo markers.
	var kept []string
	for i, tok := range tokens {
		if i == 0 && isDigits(tok) {
			continue
		}
		if tok == "redo" {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}

// CategorySlug resolves a folder or pattern name to its database
// category slug. Returns false when no mapping exists.
func CategorySlug(name string) (string, bool) {
	slug, ok := categoryByKey[CanonicalKey(name)]
	return slug, ok
}

// ResolveFolder finds the on-disk scraper folder for a pattern so
// that screenshot paths point at real files. It prefers a folder
// whose full token sequence (REDO markers included) matches the
// pattern, then any folder with the same canonical key and number
// prefix. When the scraper tree is unavailable it synthesizes the
// conventional <NN>_<Name_with_underscores> form.
func ResolveFolder(scraperDir string, number int, name string) string {
	prefix := fmt.Sprintf("%02d_", number)

	entries, err := os.ReadDir(scraperDir)
	if err == nil {
		wantExact := strings.Join(tokenize(name), " ")
		wantKey := CanonicalKey(name)

		var keyMatch string
		for _, entry := range entries {
			if !entry.IsDir() ||
				!strings.HasPrefix(entry.Name(), prefix) {
				continue
			}
			folderTokens := tokenize(entry.Name())
			// Folder tokens start with the number prefix.
			if len(folderTokens) > 0 && isDigits(folderTokens[0]) {
				folderTokens = folderTokens[1:]
			}
			if strings.Join(folderTokens, " ") == wantExact {
				return entry.Name()
			}
			if keyMatch == "" &&
				CanonicalKey(entry.Name()) == wantKey {
				keyMatch = entry.Name()
			}
		}
		if keyMatch != "" {
			return keyMatch
		}
	}

	return prefix + strings.Join(strings.Fields(name), "_")
}

// tokenize lower-cases a name and splits it on every run of
// characters that is not a letter or digit. This absorbs the
// underscore/hyphen/non-breaking-hyphen/parenthesis drift between
// folder naming generations.
func tokenize(name string) []string {
	return strings.FieldsFunc(
		strings.ToLower(name),
		func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		},
	)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
