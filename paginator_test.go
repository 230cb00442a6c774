package search

import "testing"

func TestPaginate_EvenSplit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	pages := Paginate(items, 2)
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	if pages[0][0] != 1 || pages[0][1] != 2 {
		t.Errorf("page 0 = %v, want [1 2]", pages[0])
	}
	if pages[2][0] != 5 || pages[2][1] != 6 {
		t.Errorf("page 2 = %v, want [5 6]", pages[2])
	}
}

func TestPaginate_RemainderLastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	pages := Paginate(items, 2)
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	if len(pages[2]) != 1 || pages[2][0] != 5 {
		t.Errorf("last page = %v, want [5]", pages[2])
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	pages := Paginate([]int{}, 3)
	if pages != nil {
		t.Errorf("Paginate(empty) = %v, want nil", pages)
	}
}

func TestPaginate_NonPositivePageSizePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for non-positive page size")
		}
	}()
	Paginate([]int{1, 2, 3}, 0)
}

func TestPaginate_PagesAreNonOwningViews(t *testing.T) {
	items := []int{1, 2, 3, 4}
	pages := Paginate(items, 2)
	pages[0][0] = 99
	if items[0] != 99 {
		t.Error("expected page mutation to be visible through backing array")
	}
}
