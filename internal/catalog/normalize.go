package catalog

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

var pricePrinter = message.NewPrinter(language.French)

// FormatPrice renders a numeric price as the display string used in list
// views, with French digit grouping and the FCFA suffix.
func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("%v FCFA", number.Decimal(v))
}

// Normalize maps one raw catalog record onto the canonical list-view entity.
// It is total: any well-formed record yields a product, absent fields fall
// back to empty strings, empty lists, or zero. The category tag is assigned
// here exactly once.
func Normalize(rec domain.RawRecord) domain.Product {
	p := domain.Product{
		ID:         rec.ID,
		Name:       rec.Name,
		Price:      FormatPrice(rec.Price),
		PriceValue: rec.Price,
		CreatedAt:  parseCreatedAt(rec.CreatedAt),
		Category:   domain.Classify(rec.Category.Name),
		Size:       firstOf(rec.Sizes),
		Color:      firstOf(rec.Colors),
		Sizes:      joinList(rec.Sizes),
		Colors:     joinList(rec.Colors),
		Stock:      rec.Stock,
	}

	if len(rec.Images) > 0 {
		p.Image = rec.Images[0]
	}
	if len(rec.HoverImages) > 0 {
		p.HoverImage = rec.HoverImages[0]
	}
	// Up to two extra gallery images beyond the primary one.
	if len(rec.Images) > 1 {
		end := len(rec.Images)
		if end > 3 {
			end = 3
		}
		p.Gallery = append(p.Gallery, rec.Images[1:end]...)
	}

	return p
}

func parseCreatedAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func firstOf(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return strings.TrimSpace(list[0])
}

func joinList(list []string) string {
	if len(list) == 0 {
		return ""
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, strings.TrimSpace(item))
	}
	return strings.Join(parts, ",")
}
