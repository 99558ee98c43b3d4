package catalog_test

import (
	"testing"

	"cafestore/internal/catalog"
)

func TestPage_ConcatenationReconstructsItems(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		size := 10
		var got []int
		for page := 1; page <= catalog.TotalPages(len(items), size); page++ {
			got = append(got, catalog.Page(items, page, size)...)
		}
		if len(got) != n {
			t.Fatalf("n=%d: concatenated %d items", n, len(got))
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("n=%d: item %d out of place (%d)", n, i, v)
			}
		}
	}
}

func TestPage_OutOfRangeClamped(t *testing.T) {
	items := []string{"a", "b", "c"}
	if got := catalog.Page(items, 99, 2); len(got) != 0 {
		t.Fatalf("page beyond range should be empty, got %v", got)
	}
	if got := catalog.Page(items, 0, 2); len(got) != 2 || got[0] != "a" {
		t.Fatalf("page < 1 should clamp to 1, got %v", got)
	}
}

func TestTotalPages_MinimumOne(t *testing.T) {
	if got := catalog.TotalPages(0, 10); got != 1 {
		t.Fatalf("empty sequence should have one page, got %d", got)
	}
	if got := catalog.TotalPages(11, 10); got != 2 {
		t.Fatalf("want 2 pages for 11 items, got %d", got)
	}
}
