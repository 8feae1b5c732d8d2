package underz

import (
	"reflect"
	"testing"
)

// sameRef reports whether a and b hold the very same map or slice.
func sameRef(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestReferenceIdentity(t *testing.T) {
	m1 := map[string]any{"a": 1}
	m2 := map[string]any{"a": 1}
	s1 := []int{1, 2}

	t.Run("IndexOf", func(t *testing.T) {
		items := []any{1, m1, m2, s1}
		if got := IndexOf(items, any(m2)); got != 2 {
			t.Errorf("expected 2 for the second map, got %d", got)
		}
		if got := IndexOf(items, any(s1)); got != 3 {
			t.Errorf("expected 3 for the slice, got %d", got)
		}
		if got := IndexOf(items, any(s1[:1])); got != -1 {
			t.Errorf("expected a shorter view of the slice not to match, got %d", got)
		}
		if got := IndexOf(items, any(map[string]any{})); got != -1 {
			t.Errorf("expected an unrelated map not to match, got %d", got)
		}
	})

	t.Run("Uniq", func(t *testing.T) {
		got := Uniq([]any{m1, m1, 1, m2, s1, s1})
		if len(got) != 4 {
			t.Fatalf("expected 4 distinct elements, got %d: %v", len(got), got)
		}
		if !sameRef(got[0], m1) || got[1] != 1 || !sameRef(got[2], m2) || !sameRef(got[3], s1) {
			t.Errorf("expected [m1 1 m2 s1] by reference, got %v", got)
		}
	})

	t.Run("Intersection", func(t *testing.T) {
		got := Intersection([]any{m1, s1, 3}, []any{3, s1, m2})
		if len(got) != 2 || !sameRef(got[0], s1) || got[1] != 3 {
			t.Errorf("expected [s1 3], got %v", got)
		}
	})

	t.Run("Difference", func(t *testing.T) {
		got := Difference([]any{m1, m2, "x"}, []any{m1})
		if len(got) != 2 || !sameRef(got[0], m2) || got[1] != "x" {
			t.Errorf("expected [m2 x], got %v", got)
		}
	})

	t.Run("Contains", func(t *testing.T) {
		if !Contains(Sequence[any](m1, 2), any(m1)) {
			t.Error("expected the same map to be found")
		}
		if Contains(Sequence[any](m1), any(m2)) {
			t.Error("expected an equal but distinct map not to be found")
		}
	})

	t.Run("Structs Holding Maps", func(t *testing.T) {
		type box struct{ v any }
		if Contains(Sequence(box{m1}), box{m1}) {
			t.Error("expected structs holding maps never to be identical")
		}
		if !Contains(Sequence(box{1}), box{1}) {
			t.Error("expected comparable structs to compare with ==")
		}
	})
}
