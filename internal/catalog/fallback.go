package catalog

// The fallback catalog is substituted whenever the remote endpoint cannot be
// used. It is fixed and deterministic: four representative products, one per
// real category, so every facet of the pipeline stays exercisable while the
// error banner is up.

import "github.com/user235678/yt-adawi-sub002/internal/domain"

var fallbackRecords = []domain.RawRecord{
	{
		ID:          "fallback-001",
		Name:        "Ensemble classique homme",
		Description: "Ensemble deux pièces en coton, coupe droite.",
		Price:       25000,
		Currency:    "XOF",
		Category:    domain.CategoryRef{ID: "cat-homme", Name: "Homme"},
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"Bleu", "Noir"},
		Stock:       8,
		Images:      []string{"/static/fallback/homme-1.jpg", "/static/fallback/homme-2.jpg"},
		HoverImages: []string{"/static/fallback/homme-hover.jpg"},
		CreatedAt:   "2024-01-10T00:00:00Z",
		IsActive:    true,
	},
	{
		ID:          "fallback-002",
		Name:        "Robe wax femme",
		Description: "Robe longue en tissu wax, motifs traditionnels.",
		Price:       18000,
		Currency:    "XOF",
		Category:    domain.CategoryRef{ID: "cat-femme", Name: "Femme"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Rouge", "Jaune"},
		Stock:       12,
		Images:      []string{"/static/fallback/femme-1.jpg", "/static/fallback/femme-2.jpg"},
		HoverImages: []string{"/static/fallback/femme-hover.jpg"},
		CreatedAt:   "2024-01-12T00:00:00Z",
		IsActive:    true,
	},
	{
		ID:          "fallback-003",
		Name:        "Tenue enfant brodée",
		Description: "Tenue de cérémonie pour enfant, broderie main.",
		Price:       9500,
		Currency:    "XOF",
		Category:    domain.CategoryRef{ID: "cat-enfant", Name: "Enfant"},
		Sizes:       []string{"4A", "6A", "8A"},
		Colors:      []string{"Blanc"},
		Stock:       5,
		Images:      []string{"/static/fallback/enfant-1.jpg"},
		CreatedAt:   "2024-01-15T00:00:00Z",
		IsActive:    true,
	},
	{
		ID:          "fallback-004",
		Name:        "Ensemble assorti couple",
		Description: "Deux tenues assorties dans le même tissu.",
		Price:       42000,
		Currency:    "XOF",
		Category:    domain.CategoryRef{ID: "cat-couple", Name: "Couple"},
		Sizes:       []string{"M", "L"},
		Colors:      []string{"Vert", "Or"},
		Stock:       3,
		Images:      []string{"/static/fallback/couple-1.jpg", "/static/fallback/couple-2.jpg"},
		HoverImages: []string{"/static/fallback/couple-hover.jpg"},
		CreatedAt:   "2024-01-08T00:00:00Z",
		IsActive:    true,
	},
}

// FallbackCatalog returns the fixed sample set, normalized the same way a
// fetched batch would be.
func FallbackCatalog() ([]domain.Product, []domain.RawRecord) {
	records := make([]domain.RawRecord, len(fallbackRecords))
	copy(records, fallbackRecords)

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, Normalize(rec))
	}
	return products, records
}
