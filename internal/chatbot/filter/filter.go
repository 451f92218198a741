// Package filter cleans up the comma-separated places list returned by the
// encyclopedia search. It is a precision heuristic, not a semantic
// classifier; boundary misses are acceptable and never raise errors.
package filter

import (
	"regexp"
	"strings"
)

// NoItemsSentinel is returned when the input is empty or every item was
// filtered out. It survives re-filtering, which keeps Places idempotent.
const NoItemsSentinel = "no items available"

// yearPattern flags a standalone 4-digit number, the usual tell of a dated
// event title rather than a place.
var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// blockedKeywords catch non-geographic search hits such as elections and
// film titles.
var blockedKeywords = []string{"election", "film", "movie", "race", "title"}

// Places drops low-quality entries from a comma-separated list and rejoins
// the survivors.
func Places(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return NoItemsSentinel
	}

	items := strings.Split(raw, ",")
	kept := make([]string, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if yearPattern.MatchString(item) {
			continue
		}
		if containsBlockedKeyword(item) {
			continue
		}
		kept = append(kept, item)
	}

	if len(kept) == 0 {
		return NoItemsSentinel
	}

	return strings.Join(kept, ", ")
}

func containsBlockedKeyword(item string) bool {
	lower := strings.ToLower(item)
	for _, kw := range blockedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
