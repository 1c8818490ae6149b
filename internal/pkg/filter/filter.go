// Package filter implements the conjunctive search used by every list page:
// a collection is narrowed by a set of predicates, all of which must hold.
//
// A nil Predicate is inactive. Constructors return nil when their input is
// empty, so callers can pass every filter unconditionally and let Apply skip
// the ones the user left blank.
package filter

import (
	"sort"
	"strings"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// Apply returns the items satisfying all active predicates, preserving order.
// With no active predicates the input slice is returned as is.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return items
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, active) {
			result = append(result, item)
		}
	}
	return result
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

// Contains matches items where any of the given fields contains needle,
// case-insensitively.
func Contains[T any](needle string, fields ...func(T) string) Predicate[T] {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" || len(fields) == 0 {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals matches items whose field equals value exactly. The zero value of V
// means "match all".
func Equals[T any, V comparable](value V, field func(T) V) Predicate[T] {
	var zero V
	if value == zero {
		return nil
	}
	return func(item T) bool {
		return field(item) == value
	}
}

// Joined pairs an item with the record its foreign key resolved to.
type Joined[T, R any] struct {
	Item T
	Ref  R
}

// Join resolves key(item) against index. Items whose key has no entry are
// dropped; this is not an error.
func Join[T any, K comparable, R any](items []T, key func(T) K, index map[K]R) []Joined[T, R] {
	result := make([]Joined[T, R], 0, len(items))
	for _, item := range items {
		ref, ok := index[key(item)]
		if !ok {
			continue
		}
		result = append(result, Joined[T, R]{Item: item, Ref: ref})
	}
	return result
}

// Index builds a lookup map keyed by key(item). Later items win on duplicates.
func Index[T any, K comparable](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}

// SortBy sorts a copy of items with a stable sort, leaving the input intact.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred Predicate[T]) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}
