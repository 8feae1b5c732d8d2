package underz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilter(t *testing.T) {
	t.Run("Sequence", func(t *testing.T) {
		got := Filter(Sequence(1, 2, 3, 4, 5, 6), isEven)
		if diff := cmp.Diff([]int{2, 4, 6}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Mapping", func(t *testing.T) {
		got := Filter(Mapping(map[string]int{"a": 1, "b": 2, "c": 4}), isEven)
		if diff := cmp.Diff([]int{2, 4}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Nothing Passes", func(t *testing.T) {
		got := Filter(Sequence(1, 3), isEven)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})
}

func TestReject(t *testing.T) {
	got := Reject(Sequence(1, 2, 3, 4, 5, 6), isEven)
	if diff := cmp.Diff([]int{1, 3, 5}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRejectPartition(t *testing.T) {
	cases := map[string][]int{
		"distinct":          {1, 2, 3, 4, 5},
		"duplicates pass":   {2, 2, 1, 2, 3, 2},
		"duplicates mixed":  {4, 1, 4, 1, 4},
		"all pass":          {2, 4, 4},
		"none pass":         {1, 1, 3},
		"empty":             {},
		"interleaved equal": {2, 3, 2, 3, 2, 3},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			kept := Filter(Sequence(input...), isEven)
			dropped := Reject(Sequence(input...), isEven)

			if len(kept)+len(dropped) != len(input) {
				t.Fatalf("expected %d elements across both, got %d+%d", len(input), len(kept), len(dropped))
			}

			// Merging back by predicate must reproduce the input exactly.
			var merged []int
			k, d := 0, 0
			for _, v := range input {
				if isEven(v) {
					merged = append(merged, kept[k])
					k++
				} else {
					merged = append(merged, dropped[d])
					d++
				}
			}
			if diff := cmp.Diff(input, merged, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("partition does not recover input (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUniq(t *testing.T) {
	got := Uniq([]int{1, 2, 2, 3, 1})
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	words := Uniq([]string{"b", "a", "b", "c", "a"})
	if diff := cmp.Diff([]string{"b", "a", "c"}, words); diff != "" {
		t.Errorf("first-occurrence order not kept (-want +got):\n%s", diff)
	}

	if got := Uniq([]int(nil)); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
