package domain

import "strings"

type Category string

func (c Category) String() string {
	return string(c)
}

const (
	CategoryHomme   Category = "homme"
	CategoryFemme   Category = "femme"
	CategoryEnfant  Category = "enfant"
	CategoryCouple  Category = "couple"
	CategoryVedette Category = "vedette"

	// CategoryNouveaute is a virtual selector: it is never stored on a
	// product, a product passes it when created within the last 15 days.
	CategoryNouveaute Category = "nouveaute"
)

var Categories = []Category{
	CategoryHomme,
	CategoryFemme,
	CategoryEnfant,
	CategoryCouple,
}

func (c Category) GetCategoryName() string {
	switch c {
	case CategoryHomme:
		return "Homme"
	case CategoryFemme:
		return "Femme"
	case CategoryEnfant:
		return "Enfant"
	case CategoryCouple:
		return "Couple"
	case CategoryVedette:
		return "Vedette"
	case CategoryNouveaute:
		return "Nouveautés"
	default:
		return "Unknown"
	}
}

// Virtual reports whether the selector is a filter rule rather than a tag
// assigned to products.
func (c Category) Virtual() bool {
	return c == CategoryVedette || c == CategoryNouveaute
}

// ParseCategory maps a selector value coming from the facet controls onto a
// known category. The zero value falls back to vedette (no restriction).
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryHomme:
		return CategoryHomme, true
	case CategoryFemme:
		return CategoryFemme, true
	case CategoryEnfant:
		return CategoryEnfant, true
	case CategoryCouple:
		return CategoryCouple, true
	case CategoryVedette:
		return CategoryVedette, true
	case CategoryNouveaute:
		return CategoryNouveaute, true
	default:
		return CategoryVedette, false
	}
}

// Keyword groups are tested in order, first match wins.
var classifierRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"homme", "men"}, CategoryHomme},
	{[]string{"femme", "women"}, CategoryFemme},
	{[]string{"enfant", "kids", "children"}, CategoryEnfant},
	{[]string{"couple", "couples"}, CategoryCouple},
}

// Classify derives the canonical category tag from the free-text category
// name delivered by the catalog source. It is total: any input, including
// the empty string, yields exactly one canonical tag. Products whose
// category matches no keyword group land in vedette.
func Classify(categoryName string) Category {
	name := strings.ToLower(categoryName)
	if name == "" {
		return CategoryVedette
	}

	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}

	return CategoryVedette
}
