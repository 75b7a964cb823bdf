package util

import (
	"sort"
	"strings"
)

func MapContains[T comparable, S any](m map[T]S, k T) bool {
	if _, exists := m[k]; exists {
		return true
	}
	return false
}

func SortedKeys[S any](m map[string]S) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeName trims surrounding whitespace and reports whether the result
// is usable as a queue or vhost name.
func NormalizeName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, 0) {
		return s, false
	}
	return s, true
}
