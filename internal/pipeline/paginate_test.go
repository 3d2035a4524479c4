package pipeline

import (
	"fmt"
	"testing"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

func makeProducts(n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, product(fmt.Sprintf("p-%02d", i), domain.CategoryHomme, float64(i), "", ""))
	}
	return out
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, pageSize, want int
	}{
		{0, 15, 1}, // empty list still has one page
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{20, 15, 2},
		{45, 15, 3},
		{5, 1, 5},
	}

	for _, tc := range cases {
		if got := TotalPages(tc.count, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.count, tc.pageSize, got, tc.want)
		}
	}
}

func TestPaginate_Slices(t *testing.T) {
	products := makeProducts(20)

	first := Paginate(products, 1, 15)
	if len(first) != 15 || first[0].ID != "p-00" || first[14].ID != "p-14" {
		t.Fatalf("page 1: %v", ids(first))
	}

	second := Paginate(products, 2, 15)
	if len(second) != 5 || second[0].ID != "p-15" {
		t.Fatalf("page 2: %v", ids(second))
	}

	if got := Paginate(products, 3, 15); len(got) != 0 {
		t.Fatalf("page beyond the list must be empty, got %v", ids(got))
	}
}

// Concatenating all pages reproduces the list exactly once per item, for any
// page size ≥ 1.
func TestPaginate_Coverage(t *testing.T) {
	products := makeProducts(23)

	for pageSize := 1; pageSize <= 25; pageSize++ {
		var all []domain.Product
		total := TotalPages(len(products), pageSize)
		for page := 1; page <= total; page++ {
			all = append(all, Paginate(products, page, pageSize)...)
		}
		if !sameIDs(all, ids(products)...) {
			t.Fatalf("pageSize %d: concatenated pages differ from the list", pageSize)
		}
	}
}

func TestPaginate_EmptyList(t *testing.T) {
	if got := Paginate(nil, 1, 15); len(got) != 0 {
		t.Fatalf("got %v", ids(got))
	}
	if TotalPages(0, 15) != 1 {
		t.Fatal("empty list must report page 1 of 1")
	}
}
