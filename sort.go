package underz

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// sortEntry pairs an element with its computed sort key.
type sortEntry[T, K any] struct {
	item   T
	key    K
	absent bool
}

// SortBy returns the elements of c ordered ascending by the key iteratee
// computes for each of them. The sort is stable and c is left untouched.
//
//	byAge := underz.SortBy(underz.Sequence(people...), func(p Person, _ underz.Key) int {
//	    return p.Age
//	})
func SortBy[T any, K constraints.Ordered](c Collection[T], iteratee func(item T, key Key) K) []T {
	return sortEntries(c, func(item T, key Key) (K, bool) {
		return iteratee(item, key), true
	}, cmp.Compare[K])
}

// SortByOptional is SortBy for keys that may be absent. Elements whose key
// is nil sort after every element with a key, keeping their relative order.
func SortByOptional[T any, K constraints.Ordered](c Collection[T], iteratee func(item T, key Key) *K) []T {
	return sortEntries(c, func(item T, key Key) (K, bool) {
		k := iteratee(item, key)
		if k == nil {
			var zero K
			return zero, false
		}
		return *k, true
	}, cmp.Compare[K])
}

// SortByProperty orders mappings by the value of one property. Values are
// compared loosely: numbers numerically across numeric types, strings
// lexically, false before true, anything else by its printed form. A
// missing or nil property sorts last.
func SortByProperty[V any](c Collection[map[string]V], name string) []map[string]V {
	return sortEntries(c, func(item map[string]V, _ Key) (any, bool) {
		v, ok := item[name]
		if !ok || isNil(v) {
			return nil, false
		}
		return any(v), true
	}, compareLoose)
}

func sortEntries[T, K any](c Collection[T], keyOf func(T, Key) (K, bool), compare func(a, b K) int) []T {
	entries := Map(c, func(item T, key Key) sortEntry[T, K] {
		k, ok := keyOf(item, key)
		return sortEntry[T, K]{item: item, key: k, absent: !ok}
	})
	slices.SortStableFunc(entries, func(a, b sortEntry[T, K]) int {
		switch {
		case a.absent && b.absent:
			return 0
		case a.absent:
			return 1
		case b.absent:
			return -1
		}
		return compare(a.key, b.key)
	})
	return Map(Sequence(entries...), func(e sortEntry[T, K], _ Key) T {
		return e.item
	})
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func compareLoose(a, b any) int {
	if x, ok := asFloat(a); ok {
		if y, ok := asFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	}
	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
