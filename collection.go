package underz

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/slices"
)

// Kind tags which variant a Collection holds.
type Kind uint8

const (
	// SequenceKind marks an ordered, index-addressed collection.
	SequenceKind Kind = iota
	// MappingKind marks a collection addressed by string keys.
	MappingKind
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Key locates an element inside a Collection: an index for sequences,
// a property name for mappings.
type Key struct {
	name  string
	index int
	named bool
}

// IndexKey returns the key of the i-th element of a sequence.
func IndexKey(i int) Key { return Key{index: i} }

// NameKey returns the key of a mapping property.
func NameKey(name string) Key { return Key{name: name, named: true} }

// IsIndex reports whether the key addresses a sequence position.
func (k Key) IsIndex() bool { return !k.named }

// Index returns the sequence position, or -1 for mapping keys.
func (k Key) Index() int {
	if k.named {
		return -1
	}
	return k.index
}

// Name returns the property name. For sequence keys it is the decimal index.
func (k Key) Name() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// String implements fmt.Stringer.
func (k Key) String() string { return k.Name() }

// Collection is either an ordered sequence of T or a mapping from string
// keys to T. Every algorithm in this package reaches the elements through
// Each, which is the only place that looks at the tag.
//
// The zero value is an empty sequence.
type Collection[T any] struct {
	items   []T
	mapping map[string]T
	kind    Kind
}

// Sequence wraps items as an ordered collection. The slice is not copied.
func Sequence[T any](items ...T) Collection[T] {
	return Collection[T]{items: items, kind: SequenceKind}
}

// Mapping wraps m as a keyed collection. The map is not copied.
func Mapping[T any](m map[string]T) Collection[T] {
	return Collection[T]{mapping: m, kind: MappingKind}
}

// Kind returns the variant held by c.
func (c Collection[T]) Kind() Kind { return c.kind }

// IsSequence reports whether c is an ordered sequence.
func (c Collection[T]) IsSequence() bool { return c.kind == SequenceKind }

// Len returns the number of elements.
func (c Collection[T]) Len() int {
	if c.kind == MappingKind {
		return len(c.mapping)
	}
	return len(c.items)
}

// Values returns the elements in traversal order as a new slice.
func (c Collection[T]) Values() []T {
	out := make([]T, 0, c.Len())
	Each(c, func(v T, _ Key, _ Collection[T]) {
		out = append(out, v)
	})
	return out
}

// Each calls fn(value, key, c) once for every element of c.
//
// Sequences are visited in index order. Mappings are visited once per key
// in ascending key order, so results built from a mapping are
// deterministic.
func Each[T any](c Collection[T], fn func(value T, key Key, c Collection[T])) {
	if c.kind == MappingKind {
		for _, name := range sortedKeys(c.mapping) {
			fn(c.mapping[name], NameKey(name), c)
		}
		return
	}
	for i := 0; i < len(c.items); i++ {
		fn(c.items[i], IndexKey(i), c)
	}
}

// IndexOf returns the position of the first element identical to target,
// or -1. Identity is ==, except that maps and slices held in interface
// values match only the very same map or slice.
func IndexOf[T comparable](seq []T, target T) int {
	result := -1
	Each(Sequence(seq...), func(item T, key Key, _ Collection[T]) {
		if result == -1 && identical(item, target) {
			result = key.Index()
		}
	})
	return result
}

// identical is == made safe for interface values holding uncomparable
// types. Maps and slices compare by reference; anything else that cannot
// be compared is never identical.
func identical[T comparable](a, b T) (same bool) {
	x, y := any(a), any(b)
	if tx := reflect.TypeOf(x); tx != nil && !tx.Comparable() {
		if tx != reflect.TypeOf(y) {
			return false
		}
		vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
		switch vx.Kind() {
		case reflect.Map:
			return vx.Pointer() == vy.Pointer()
		case reflect.Slice:
			return vx.Pointer() == vy.Pointer() && vx.Len() == vy.Len()
		}
		return false
	}
	// Comparable structs and arrays can still hold uncomparable values in
	// interface fields.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
