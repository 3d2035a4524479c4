// Package pipeline implements the catalog pipeline: facet filtering,
// sorting, pagination, and stock-gated detail resolution over an immutable
// catalog snapshot. Everything here is a pure function of (products, view
// state, now); re-running on every dependency change is cheap and keeps the
// package testable without any HTTP harness.
package pipeline

import (
	"time"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

// View is one rendered catalog page.
type View struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// Run executes the whole pipeline for one snapshot and one view state:
// filter, sort, then paginate. A current page that no longer exists after
// filtering clamps back to page 1 rather than rendering an empty page.
func Run(products []domain.Product, state ViewState, now time.Time, pageSize int) View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	filtered := Filter(products, Selection{
		Category: state.Category,
		Size:     state.Size,
		Color:    state.Color,
	}, now)
	sorted := Sort(filtered, state.Sort)

	totalPages := TotalPages(len(sorted), pageSize)
	page := state.Page
	if page < 1 || page > totalPages {
		page = 1
	}

	return View{
		Items:      Paginate(sorted, page, pageSize),
		Page:       page,
		TotalPages: totalPages,
	}
}
