package pipeline

import (
	"strings"
	"time"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

// newArrivalWindowDays is the age limit, in whole calendar days, for the
// nouveaute virtual selector.
const newArrivalWindowDays = 15

// Selection is one facet selection: the active category plus optional size
// and color picks. Empty size/color means unset and matches every product.
type Selection struct {
	Category domain.Category
	Size     string
	Color    string
}

// Filter reduces products to those matching the selection. The category step
// runs first (vedette passes everything, nouveaute applies the recency rule),
// then the size and color tests, which apply regardless of which category was
// chosen. The input slice is never mutated.
func Filter(products []domain.Product, sel Selection, now time.Time) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, sel.Category, now) {
			continue
		}
		if !matchesFacet(p.Size, p.Sizes, sel.Size) {
			continue
		}
		if !matchesFacet(p.Color, p.Colors, sel.Color) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p domain.Product, active domain.Category, now time.Time) bool {
	switch active {
	case "", domain.CategoryVedette:
		return true
	case domain.CategoryNouveaute:
		if p.CreatedAt.IsZero() {
			return false
		}
		return daysBetween(p.CreatedAt, now) <= newArrivalWindowDays
	default:
		return p.Category == active
	}
}

// matchesFacet applies the size/color test: an unset selection passes, a set
// one must equal the representative value or appear in the comma-joined list,
// case-insensitively. An empty list never matches a non-empty selection.
func matchesFacet(representative, joined, selected string) bool {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return true
	}
	if representative != "" && strings.EqualFold(representative, selected) {
		return true
	}
	if joined == "" {
		return false
	}
	for _, item := range strings.Split(joined, ",") {
		if strings.EqualFold(strings.TrimSpace(item), selected) {
			return true
		}
	}
	return false
}

// daysBetween counts whole calendar days from t to now, truncating both to
// their calendar date first so sub-day precision never shifts the window.
func daysBetween(t, now time.Time) int {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	start := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	end := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
