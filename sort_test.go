package underz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type person struct {
	name string
	age  int
}

func TestSortBy(t *testing.T) {
	t.Run("Ascending By Function", func(t *testing.T) {
		people := []person{{"curly", 50}, {"moe", 30}, {"larry", 40}}
		got := SortBy(Sequence(people...), func(p person, _ Key) int { return p.age })
		names := Map(Sequence(got...), func(p person, _ Key) string { return p.name })
		if diff := cmp.Diff([]string{"moe", "larry", "curly"}, names); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		if people[0].name != "curly" {
			t.Error("expected input to stay untouched")
		}
	})

	t.Run("Stable", func(t *testing.T) {
		words := []string{"bb", "a", "cc", "d", "ee"}
		got := SortBy(Sequence(words...), func(s string, _ Key) int { return len(s) })
		if diff := cmp.Diff([]string{"a", "d", "bb", "cc", "ee"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Uses Key", func(t *testing.T) {
		got := SortBy(Sequence("a", "b", "c"), func(_ string, k Key) int { return -k.Index() })
		if diff := cmp.Diff([]string{"c", "b", "a"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Mapping", func(t *testing.T) {
		got := SortBy(Mapping(map[string]int{"a": 3, "b": 1, "c": 2}), func(n int, _ Key) int { return n })
		if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestSortByOptional(t *testing.T) {
	ptr := func(n int) *int { return &n }
	ages := []*int{ptr(40), nil, ptr(1), nil, ptr(20)}
	got := SortByOptional(Sequence(ages...), func(p *int, _ Key) *int { return p })

	var rendered []any
	for _, p := range got {
		if p == nil {
			rendered = append(rendered, nil)
			continue
		}
		rendered = append(rendered, *p)
	}
	if diff := cmp.Diff([]any{1, 20, 40, nil, nil}, rendered); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByProperty(t *testing.T) {
	t.Run("Nil Sorts Last", func(t *testing.T) {
		people := Sequence(Object{"age": 40}, Object{"age": 1}, Object{"age": nil})
		got := Pluck(Sequence(SortByProperty(people, "age")...), "age")
		if diff := cmp.Diff([]any{1, 40, nil}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Missing Sorts Last", func(t *testing.T) {
		people := Sequence(Object{"id": "a"}, Object{"id": "b", "age": 3}, Object{"id": "c", "age": 2})
		got := Pluck(Sequence(SortByProperty(people, "age")...), "id")
		if diff := cmp.Diff([]any{"c", "b", "a"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Mixed Numeric Types", func(t *testing.T) {
		items := Sequence(Object{"n": 2.5}, Object{"n": int64(1)}, Object{"n": uint8(3)})
		got := Pluck(Sequence(SortByProperty(items, "n")...), "n")
		if diff := cmp.Diff([]any{int64(1), 2.5, uint8(3)}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Strings And Bools", func(t *testing.T) {
		names := Sequence(Object{"v": "pear"}, Object{"v": "apple"})
		if got := Pluck(Sequence(SortByProperty(names, "v")...), "v"); got[0] != "apple" {
			t.Errorf("expected apple first, got %v", got)
		}
		flags := Sequence(Object{"v": true}, Object{"v": false})
		if got := Pluck(Sequence(SortByProperty(flags, "v")...), "v"); got[0] != false {
			t.Errorf("expected false first, got %v", got)
		}
	})

	t.Run("Typed Nil Is Absent", func(t *testing.T) {
		var missing *int
		one := 1
		items := Sequence(map[string]*int{"v": missing}, map[string]*int{"v": &one})
		got := SortByProperty(items, "v")
		if got[0]["v"] != &one {
			t.Error("expected the present pointer first")
		}
	})
}
