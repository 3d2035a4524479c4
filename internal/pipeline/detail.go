package pipeline

import (
	"errors"
	"sync"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

var (
	// ErrOutOfStock is the refusal returned when opening an out-of-stock
	// product; the resolver state does not change.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrRecordNotFound signals that the selected product's raw record is no
	// longer present in the most recent fetch snapshot.
	ErrRecordNotFound = errors.New("catalog record not found")
)

// RecordLookup resolves a product ID to its raw record in the most recent
// fetch result. It must not perform network calls.
type RecordLookup func(id string) (domain.RawRecord, bool)

// Resolver is the detail-view state machine: Closed until an in-stock
// product is opened, Open until dismissed. Opening while already Open
// replaces the inspected product.
type Resolver struct {
	mutex   sync.Mutex
	lookup  RecordLookup
	current *domain.DetailView
}

func NewResolver(lookup RecordLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Open activates the detail view for the given product. It refuses
// out-of-stock products and products whose raw record cannot be found; in
// both cases the previous state is left untouched.
func (r *Resolver) Open(p domain.Product) (*domain.DetailView, error) {
	if !p.InStock() {
		return nil, ErrOutOfStock
	}

	rec, ok := r.lookup(p.ID)
	if !ok {
		return nil, ErrRecordNotFound
	}

	view := &domain.DetailView{
		Product:     p,
		Description: rec.Description,
		Gallery:     rec.Images,
		HoverImages: rec.HoverImages,
		Sizes:       rec.Sizes,
		Colors:      rec.Colors,
		Tags:        rec.Tags,
		Stock:       rec.Stock,
	}

	r.mutex.Lock()
	r.current = view
	r.mutex.Unlock()

	return view, nil
}

// Close dismisses the detail view. It has no side effects on the catalog
// list or its filters.
func (r *Resolver) Close() {
	r.mutex.Lock()
	r.current = nil
	r.mutex.Unlock()
}

func (r *Resolver) Current() *domain.DetailView {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.current
}

func (r *Resolver) IsOpen() bool {
	return r.Current() != nil
}
