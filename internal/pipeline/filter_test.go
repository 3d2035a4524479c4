package pipeline

import (
	"testing"
	"time"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

var testNow = time.Date(2024, 6, 30, 14, 0, 0, 0, time.UTC)

func product(id string, cat domain.Category, price float64, sizes, colors string) domain.Product {
	p := domain.Product{
		ID:         id,
		Name:       "Produit " + id,
		PriceValue: price,
		Category:   cat,
		Sizes:      sizes,
		Colors:     colors,
		Stock:      1,
		CreatedAt:  testNow.AddDate(0, -2, 0),
	}
	if sizes != "" {
		p.Size = firstCSV(sizes)
	}
	if colors != "" {
		p.Color = firstCSV(colors)
	}
	return p
}

func firstCSV(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			return s[:i]
		}
	}
	return s
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func sameIDs(a []domain.Product, want ...string) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range a {
		if a[i].ID != want[i] {
			return false
		}
	}
	return true
}

func TestFilter_VedettePassesEverything(t *testing.T) {
	products := []domain.Product{
		product("a", domain.CategoryHomme, 10, "m", ""),
		product("b", domain.CategoryFemme, 20, "s", ""),
		product("c", domain.CategoryVedette, 30, "", ""),
	}

	got := Filter(products, Selection{Category: domain.CategoryVedette}, testNow)
	if !sameIDs(got, "a", "b", "c") {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilter_RealCategory(t *testing.T) {
	products := []domain.Product{
		product("a", domain.CategoryHomme, 10, "", ""),
		product("b", domain.CategoryFemme, 20, "", ""),
		product("c", domain.CategoryHomme, 30, "", ""),
	}

	got := Filter(products, Selection{Category: domain.CategoryHomme}, testNow)
	if !sameIDs(got, "a", "c") {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilter_NouveauteWindow(t *testing.T) {
	within := product("within", domain.CategoryHomme, 10, "", "")
	within.CreatedAt = testNow.AddDate(0, 0, -15) // exactly 15 days: included

	outside := product("outside", domain.CategoryHomme, 10, "", "")
	outside.CreatedAt = testNow.AddDate(0, 0, -16) // 16 days: excluded

	got := Filter([]domain.Product{within, outside}, Selection{Category: domain.CategoryNouveaute}, testNow)
	if !sameIDs(got, "within") {
		t.Fatalf("got %v", ids(got))
	}
}

// The window counts whole calendar days, not sub-day precision: a product
// created late in the evening 15 days ago is still within the window even
// when the query runs early in the morning.
func TestFilter_NouveauteTruncatesToCalendarDays(t *testing.T) {
	p := product("evening", domain.CategoryHomme, 10, "", "")
	p.CreatedAt = time.Date(2024, 6, 15, 23, 50, 0, 0, time.UTC)
	morning := time.Date(2024, 6, 30, 0, 10, 0, 0, time.UTC)

	got := Filter([]domain.Product{p}, Selection{Category: domain.CategoryNouveaute}, morning)
	if len(got) != 1 {
		t.Fatal("15 calendar days must be within the window regardless of time of day")
	}
}

func TestFilter_SizeAndColor(t *testing.T) {
	products := []domain.Product{
		product("a", domain.CategoryHomme, 10, "s,m", "bleu,noir"),
		product("b", domain.CategoryHomme, 20, "m", "rouge"),
		product("c", domain.CategoryHomme, 30, "l", "noir"),
	}

	got := Filter(products, Selection{Category: domain.CategoryVedette, Size: "M"}, testNow)
	if !sameIDs(got, "a", "b") {
		t.Fatalf("size match: got %v", ids(got))
	}

	got = Filter(products, Selection{Category: domain.CategoryVedette, Color: "NOIR"}, testNow)
	if !sameIDs(got, "a", "c") {
		t.Fatalf("color match: got %v", ids(got))
	}

	// Both tests must pass.
	got = Filter(products, Selection{Category: domain.CategoryVedette, Size: "m", Color: "noir"}, testNow)
	if !sameIDs(got, "a") {
		t.Fatalf("combined match: got %v", ids(got))
	}
}

func TestFilter_ListEntriesAreTrimmed(t *testing.T) {
	p := product("a", domain.CategoryHomme, 10, " s , m ", "")
	got := Filter([]domain.Product{p}, Selection{Category: domain.CategoryVedette, Size: "m"}, testNow)
	if len(got) != 1 {
		t.Fatal("comma-delimited entries must be trimmed before matching")
	}
}

// An empty size list never matches a set selection; only an unset selection
// matches everything.
func TestFilter_EmptyListNeverMatchesSetSelection(t *testing.T) {
	p := product("a", domain.CategoryHomme, 10, "", "")

	if got := Filter([]domain.Product{p}, Selection{Category: domain.CategoryVedette, Size: "m"}, testNow); len(got) != 0 {
		t.Fatal("empty size list must not match a set selection")
	}
	if got := Filter([]domain.Product{p}, Selection{Category: domain.CategoryVedette}, testNow); len(got) != 1 {
		t.Fatal("unset selection must match everything")
	}
}

func TestFilter_SizeAppliesUnderVirtualCategories(t *testing.T) {
	recent := product("recent", domain.CategoryFemme, 10, "m", "")
	recent.CreatedAt = testNow.AddDate(0, 0, -2)
	old := product("old", domain.CategoryFemme, 10, "m", "")
	old.CreatedAt = testNow.AddDate(0, 0, -60)

	got := Filter([]domain.Product{recent, old}, Selection{Category: domain.CategoryNouveaute, Size: "m"}, testNow)
	if !sameIDs(got, "recent") {
		t.Fatalf("got %v", ids(got))
	}

	got = Filter([]domain.Product{recent, old}, Selection{Category: domain.CategoryNouveaute, Size: "xl"}, testNow)
	if len(got) != 0 {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	products := []domain.Product{
		product("a", domain.CategoryHomme, 10, "s,m", "bleu"),
		product("b", domain.CategoryFemme, 20, "m", "rouge"),
		product("c", domain.CategoryHomme, 30, "m,l", "noir"),
	}
	sel := Selection{Category: domain.CategoryHomme, Size: "m"}

	once := Filter(products, sel, testNow)
	twice := Filter(once, sel, testNow)

	if !sameIDs(twice, ids(once)...) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := []domain.Product{
		product("a", domain.CategoryHomme, 10, "m", ""),
		product("b", domain.CategoryFemme, 20, "m", ""),
	}

	_ = Filter(products, Selection{Category: domain.CategoryFemme}, testNow)
	if !sameIDs(products, "a", "b") {
		t.Fatalf("input mutated: %v", ids(products))
	}
}
