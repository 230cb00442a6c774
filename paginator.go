package search

// ═══════════════════════════════════════════════════════════════════════════════
// PAGINATION
// ═══════════════════════════════════════════════════════════════════════════════
// Paginate splits a sequence into fixed-size, non-owning pages: each
// page is a subslice of the original backing array, so mutating the
// input after pagination (which callers shouldn't do mid-iteration)
// would be visible through the pages too.
// ═══════════════════════════════════════════════════════════════════════════════

// Page is a non-owning view over a subrange of a paginated sequence.
type Page[T any] []T

// Paginate splits items into pages of pageSize elements each, except
// possibly the last page, which holds the remainder. pageSize must be
// greater than 0.
func Paginate[T any](items []T, pageSize int) []Page[T] {
	if pageSize <= 0 {
		panic("search: page size must be positive")
	}
	if len(items) == 0 {
		return nil
	}
	pages := make([]Page[T], 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, Page[T](items[start:end]))
	}
	return pages
}
