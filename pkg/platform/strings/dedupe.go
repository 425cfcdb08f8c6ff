// Package strings provides helpers for list-valued configuration such as blocklists.
package strings

import (
	"strings"
)

// DedupeNormalized applies normalize to each element, drops empty results and
// duplicates, and preserves first-seen order.
//
// Example:
//
//	DedupeNormalized([]string{"de12 5001", "DE125001", ""}, payment.NormalizeIBAN)
//	// Returns: []string{"DE125001"}
func DedupeNormalized(values []string, normalize func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}

	return result
}

// DedupeAndTrim removes duplicates and empty strings, trimming whitespace from each
// element. Order is preserved.
func DedupeAndTrim(values []string) []string {
	return DedupeNormalized(values, strings.TrimSpace)
}

// DedupeAndTrimLower is like DedupeAndTrim but also lowercases each element.
// Used for case-insensitive word lists.
func DedupeAndTrimLower(values []string) []string {
	return DedupeNormalized(values, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
}
