package pipeline

import "github.com/user235678/yt-adawi-sub002/internal/domain"

// DefaultPageSize is the number of products shown per catalog page.
const DefaultPageSize = 15

// TotalPages reports how many 1-indexed pages the list spans. An empty list
// still has one page so "page 1 of 1, showing 0 items" stays representable.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the visible slice for the given 1-indexed page. Pages
// beyond the list yield an empty slice; callers clamp the page before
// slicing (see Run).
func Paginate(products []domain.Product, page, pageSize int) []domain.Product {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
