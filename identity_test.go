package underz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdentity(t *testing.T) {
	if Identity(7) != 7 {
		t.Error("expected identity to return its argument")
	}
	m := map[string]int{"a": 1}
	if got := Identity(m); got["a"] != 1 {
		t.Error("expected the same map back")
	}
}

func TestFirstLast(t *testing.T) {
	seq := []int{1, 2, 3, 4}

	t.Run("Single Elements", func(t *testing.T) {
		if First(seq) != 1 {
			t.Errorf("expected 1, got %d", First(seq))
		}
		if Last(seq) != 4 {
			t.Errorf("expected 4, got %d", Last(seq))
		}
		if First([]string{}) != "" || Last([]string{}) != "" {
			t.Error("expected zero values for empty input")
		}
	})

	t.Run("FirstN", func(t *testing.T) {
		cases := []struct {
			n    int
			want []int
		}{
			{0, []int{}},
			{2, []int{1, 2}},
			{10, []int{1, 2, 3, 4}},
			{-1, []int{1, 2, 3}},
			{-10, []int{}},
		}
		for _, tc := range cases {
			if diff := cmp.Diff(tc.want, FirstN(seq, tc.n)); diff != "" {
				t.Errorf("FirstN(%d) mismatch (-want +got):\n%s", tc.n, diff)
			}
		}
	})

	t.Run("LastN", func(t *testing.T) {
		cases := []struct {
			n    int
			want []int
		}{
			{0, []int{}},
			{2, []int{3, 4}},
			{10, []int{1, 2, 3, 4}},
			{-1, []int{}},
		}
		for _, tc := range cases {
			if diff := cmp.Diff(tc.want, LastN(seq, tc.n)); diff != "" {
				t.Errorf("LastN(%d) mismatch (-want +got):\n%s", tc.n, diff)
			}
		}
	})

	t.Run("Results Do Not Alias Input", func(t *testing.T) {
		first := FirstN(seq, 2)
		first[0] = 100
		if seq[0] != 1 {
			t.Error("expected input to stay untouched")
		}
	})
}
