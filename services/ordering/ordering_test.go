package ordering

import (
	"reflect"
	"testing"
)

func TestPlanReorderFullPermutation(t *testing.T) {
	siblings := []string{"a", "b", "c", "d"}
	requested := []string{"c", "a", "d", "b"}

	got := PlanReorder(siblings, requested)
	want := map[string]int{"c": 0, "a": 1, "d": 2, "b": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlanReorder() = %v, want %v", got, want)
	}
}

func TestPlanReorderSubsetPacksRemainder(t *testing.T) {
	siblings := []string{"a", "b", "c", "d", "e"}
	requested := []string{"d", "b"}

	got := PlanReorder(siblings, requested)

	// Requested IDs take the leading positions, the rest keep their
	// previous relative order after the block.
	want := map[string]int{"d": 0, "b": 1, "a": 2, "c": 3, "e": 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlanReorder() = %v, want %v", got, want)
	}
}

func TestPlanReorderIsDense(t *testing.T) {
	cases := []struct {
		name      string
		siblings  []string
		requested []string
	}{
		{"empty request", []string{"a", "b", "c"}, nil},
		{"full request", []string{"a", "b", "c"}, []string{"c", "b", "a"}},
		{"partial request", []string{"a", "b", "c", "d"}, []string{"c"}},
		{"no siblings", nil, []string{"x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PlanReorder(tc.siblings, tc.requested)
			if len(got) != len(tc.siblings) {
				t.Fatalf("assigned %d siblings, want %d", len(got), len(tc.siblings))
			}
			seen := make(map[int]bool, len(got))
			for id, index := range got {
				if index < 0 || index >= len(tc.siblings) {
					t.Errorf("sibling %s got out-of-range index %d", id, index)
				}
				if seen[index] {
					t.Errorf("index %d assigned twice", index)
				}
				seen[index] = true
			}
		})
	}
}

func TestPlanReorderIgnoresForeignIDs(t *testing.T) {
	siblings := []string{"a", "b"}
	requested := []string{"intruder", "b", "a"}

	got := PlanReorder(siblings, requested)
	if _, ok := got["intruder"]; ok {
		t.Fatal("foreign ID received an assignment")
	}
	want := map[string]int{"b": 0, "a": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlanReorder() = %v, want %v", got, want)
	}
}

func TestPlanReorderDeduplicatesRequest(t *testing.T) {
	siblings := []string{"a", "b", "c"}
	requested := []string{"b", "b", "a", "b"}

	got := PlanReorder(siblings, requested)
	want := map[string]int{"b": 0, "a": 1, "c": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlanReorder() = %v, want %v", got, want)
	}
}

func TestPlanReorderIdempotent(t *testing.T) {
	siblings := []string{"a", "b", "c", "d", "e"}
	requested := []string{"e", "c"}

	first := PlanReorder(siblings, requested)

	// Re-run against the sibling order the first pass produced.
	reordered := make([]string, len(siblings))
	for id, index := range first {
		reordered[index] = id
	}
	second := PlanReorder(reordered, requested)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second application diverged: first %v, second %v", first, second)
	}
}
