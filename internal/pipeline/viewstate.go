package pipeline

import "github.com/user235678/yt-adawi-sub002/internal/domain"

// ViewState is the explicit, versioned record of everything the shopper can
// change on the catalog page: active category, size and color picks, sort
// option, and current page. Pipeline functions take it as a value so they
// stay pure; mutations go through the Set methods, which enforce the reset
// rules and bump the version.
type ViewState struct {
	Version  int             `json:"version"`
	Category domain.Category `json:"category"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Sort     SortOption      `json:"sort"`
	Page     int             `json:"page"`
}

func NewViewState() ViewState {
	return ViewState{
		Category: domain.CategoryVedette,
		Sort:     SortFeatured,
		Page:     1,
	}
}

// SetCategory selects a category. Any active size/color selection is cleared
// and the page resets to 1.
func (s *ViewState) SetCategory(c domain.Category) {
	s.Category = c
	s.Size = ""
	s.Color = ""
	s.Page = 1
	s.Version++
}

func (s *ViewState) SetSize(size string) {
	s.Size = size
	s.Page = 1
	s.Version++
}

func (s *ViewState) SetColor(color string) {
	s.Color = color
	s.Page = 1
	s.Version++
}

func (s *ViewState) SetSort(option SortOption) {
	s.Sort = option
	s.Page = 1
	s.Version++
}

// SetPage changes only the page; the other facet state is untouched.
func (s *ViewState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
	s.Version++
}
