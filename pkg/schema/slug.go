package schema

import (
	"strings"
)

// Slugify converts a display name to a URL-safe slug: lower-cased,
// runs of non-alphanumeric characters collapsed to single hyphens,
// leading and trailing hyphens trimmed.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
