package ioscreens

import (
	"strings"
)

// Index holds the screenshots actually present in the public tree,
// keyed by normalized filename. Iteration order is the directory
// scan order: the fuzzy matcher resolves score ties by first-seen
// entry, so the order must be stable across runs.
type Index struct {
	keys  []string
	paths map[string]string
}

// NewIndex returns an empty screenshot index.
func NewIndex() *Index {
	return &Index{paths: make(map[string]string)}
}

// Add records a normalized key and its URL path. A duplicate key
// updates the stored path but keeps its original position.
func (ix *Index) Add(key, urlPath string) {
	if _, ok := ix.paths[key]; !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.paths[key] = urlPath
}

// Len returns the number of indexed screenshots.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// Get returns the URL path for an exact normalized key.
func (ix *Index) Get(key string) (string, bool) {
	p, ok := ix.paths[key]
	return p, ok
}

// Normalize reduces a filename to its matching key: lower-cased
// with all non-alphanumeric characters stripped, so
// "Example_1_Google.PNG" and "example_1_google.png" both become
// "example1google".
func Normalize(filename string) string {
	var b strings.Builder
	b.Grow(len(filename))
	for _, r := range strings.ToLower(filename) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BestMatch finds the stored URL for the screenshot that best
// matches the target filename.
//
// An exact normalized match wins outright. Otherwise every
// candidate is scored: the length of the common leading run
// between target and candidate, plus a bonus equal to the length
// of each digit-delimited segment of the target longer than 3
// characters that appears as a substring of the candidate. The
// highest score wins only if it exceeds half the target's length;
// ties keep the first-seen candidate.
//
// The formula is a heuristic carried over from earlier runs of the
// reconciliation; treat its thresholds as policy, not ground truth.
func (ix *Index) BestMatch(filename string) (string, bool) {
	target := Normalize(filename)

	if p, ok := ix.paths[target]; ok {
		return p, true
	}

	var bestMatch string
	var found bool
	bestScore := 0

	segments := digitSegments(target)

	for _, key := range ix.keys {
		score := commonPrefixLen(target, key)

		for _, seg := range segments {
			if len(seg) > 3 && strings.Contains(key, seg) {
				score += len(seg)
			}
		}

		if score > bestScore && float64(score) > float64(len(target))*0.5 {
			bestScore = score
			bestMatch = ix.paths[key]
			found = true
		}
	}

	return bestMatch, found
}

// commonPrefixLen returns the length of the common leading
// character run of two strings.
func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// digitSegments splits a normalized key on runs of digits.
func digitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}
