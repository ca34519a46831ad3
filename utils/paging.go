package utils

// Page is one slice of a list plus the numbers the pagination bar needs.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate slices items for the requested page. Pages are 1-based; an
// out-of-range or missing page collapses to 1, matching the managers that
// reset to the first page whenever their filter changes.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
