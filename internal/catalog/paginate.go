package catalog

// Page returns the 1-based page-th fixed-size slice of items, clamped to the
// available range. Out-of-range pages yield an empty slice.
func Page[T any](items []T, page, size int) []T {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(n/size), never less than 1 so boundary controls always
// have a valid last page.
func TotalPages(n, size int) int {
	if size < 1 {
		size = 1
	}
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}
