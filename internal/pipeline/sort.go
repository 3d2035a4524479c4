package pipeline

import (
	"sort"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

type SortOption string

func (o SortOption) String() string {
	return string(o)
}

const (
	// SortFeatured preserves the input order unchanged.
	SortFeatured  SortOption = "featured"
	SortNewest    SortOption = "newest"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
)

// ParseSortOption maps a sort selector from the facet controls onto a known
// option, defaulting to featured.
func ParseSortOption(s string) (SortOption, bool) {
	switch SortOption(s) {
	case SortNewest:
		return SortNewest, true
	case SortPriceLow:
		return SortPriceLow, true
	case SortPriceHigh:
		return SortPriceHigh, true
	case SortFeatured:
		return SortFeatured, true
	default:
		return SortFeatured, false
	}
}

// Sort returns a new slice ordered by the given policy. Ties keep their
// relative input order and the input slice is never mutated.
func Sort(products []domain.Product, option SortOption) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	switch option {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue < out[j].PriceValue
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue > out[j].PriceValue
		})
	}

	return out
}
