package domain

import (
	"encoding/json"
	"time"
)

// CategoryRef is the category reference carried by a raw catalog record:
// an identifier plus an optional display name.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawRecord is a catalog record exactly as the remote service delivers it.
// Every field is optional on the wire; absent fields decode to their zero
// value.
type RawRecord struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Price             float64     `json:"price"`
	Currency          string      `json:"currency"`
	Category          CategoryRef `json:"category"`
	Sizes             []string    `json:"sizes"`
	Colors            []string    `json:"colors"`
	Stock             int         `json:"stock"`
	LowStockThreshold int         `json:"low_stock_threshold"`
	Images            []string    `json:"images"`
	HoverImages       []string    `json:"hover_images"`
	Tags              []string    `json:"tags"`
	CreatedAt         string      `json:"created_at"`
	IsActive          bool        `json:"is_active"`
}

// Product is the canonical list-view entity produced once per fetch cycle.
// The category tag is assigned at normalization time and never mutated.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	PriceValue float64   `json:"price_value"`
	Image      string    `json:"image"`
	HoverImage string    `json:"hover_image,omitempty"`
	Gallery    []string  `json:"gallery,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Category   Category  `json:"category"`
	Size       string    `json:"size,omitempty"`
	Color      string    `json:"color,omitempty"`
	Sizes      string    `json:"sizes,omitempty"`
	Colors     string    `json:"colors,omitempty"`
	Stock      int       `json:"stock"`
}

// InStock is derived at read time so it can never desync from the stock
// count.
func (p Product) InStock() bool {
	return p.Stock > 0
}

func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		InStock bool `json:"in_stock"`
	}{alias(p), p.InStock()})
}

// DetailView is the payload handed to the detail surface after a successful
// openDetail: the list-view entity plus the raw-record fields the list view
// does not carry (full gallery, full size and color lists, raw stock).
type DetailView struct {
	Product     Product  `json:"product"`
	Description string   `json:"description"`
	Gallery     []string `json:"gallery"`
	HoverImages []string `json:"hover_images,omitempty"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Tags        []string `json:"tags,omitempty"`
	Stock       int      `json:"stock"`
}

// CatalogResult is the outcome of one fetch cycle. Fallback marks the fixed
// sample set substituted when the remote endpoint could not be used; Message
// carries the displayable error for the banner in that case.
type CatalogResult struct {
	Products []Product   `json:"products"`
	Records  []RawRecord `json:"records"`
	Fallback bool        `json:"fallback"`
	Message  string      `json:"message,omitempty"`
}
