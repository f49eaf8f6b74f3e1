// Package strings provides small string helpers shared by core and cmd code
package strings

import (
	"slices"
	std "strings"
)

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps.
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// DerefOr returns def if ps is nil, else *ps
func DerefOr(ps *string, def string) string {
	if ps == nil {
		return def
	}
	return *ps
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// FoldLabel lowercases s and maps '-' and ' ' to '_' (e.g. "ISO-8859-1" -> "iso_8859_1")
func FoldLabel(s string) string {
	return std.NewReplacer("-", "_", " ", "_").Replace(std.ToLower(std.TrimSpace(s)))
}

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}
