package service

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/user235678/yt-adawi-sub002/internal/catalog"
	"github.com/user235678/yt-adawi-sub002/internal/domain"
	"github.com/user235678/yt-adawi-sub002/internal/pipeline"
	"github.com/user235678/yt-adawi-sub002/internal/state"
)

// Service orchestrates the catalog pipeline for the HTTP surface: it fetches
// a fresh snapshot per browse, runs the pipeline against the session's view
// state, and keeps the most recent snapshot around for detail lookups.
type Service struct {
	client   catalog.CatalogClient
	sessions state.SessionStore
	pageSize int

	snapshotMutex sync.RWMutex
	products      map[string]domain.Product
	records       map[string]domain.RawRecord

	resolverMutex sync.Mutex
	resolvers     map[string]*pipeline.Resolver
}

// BrowseResult is one rendered catalog page plus the state it was rendered
// with and, when the fallback set is showing, the banner message.
type BrowseResult struct {
	View     pipeline.View
	State    pipeline.ViewState
	Fallback bool
	Message  string
}

func NewService(client catalog.CatalogClient, sessions state.SessionStore, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = pipeline.DefaultPageSize
	}
	return &Service{
		client:    client,
		sessions:  sessions,
		pageSize:  pageSize,
		products:  make(map[string]domain.Product),
		records:   make(map[string]domain.RawRecord),
		resolvers: make(map[string]*pipeline.Resolver),
	}
}

// Browse performs a fresh catalog fetch and runs the full pipeline with the
// given view state. A fetch failure is not fatal: the fallback set flows
// through the same pipeline and the displayable message rides along.
func (s *Service) Browse(ctx context.Context, viewState pipeline.ViewState) (*BrowseResult, error) {
	result, err := s.client.FetchCatalog(ctx)
	if err != nil {
		log.Warnf("catalog fetch degraded to fallback set: %v", err)
	}

	s.setSnapshot(result)

	view := pipeline.Run(result.Products, viewState, time.Now(), s.pageSize)

	return &BrowseResult{
		View:     view,
		State:    viewState,
		Fallback: result.Fallback,
		Message:  result.Message,
	}, nil
}

// LoadState returns the session's view state, or a fresh default for a
// session seen for the first time.
func (s *Service) LoadState(ctx context.Context, sessionID string) pipeline.ViewState {
	viewState, _, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		log.Warnf("failed to load session %s, starting fresh: %v", sessionID, err)
		return pipeline.NewViewState()
	}
	return viewState
}

func (s *Service) SaveState(ctx context.Context, sessionID string, viewState pipeline.ViewState) {
	if err := s.sessions.Save(ctx, sessionID, viewState); err != nil {
		log.Warnf("failed to save session %s: %v", sessionID, err)
	}
}

// OpenDetail activates the detail view for the given product ID using the
// most recent fetch snapshot, never a new network call. It returns
// pipeline.ErrRecordNotFound when the product is unknown to the snapshot and
// pipeline.ErrOutOfStock when the stock gate refuses it.
func (s *Service) OpenDetail(sessionID, productID string) (*domain.DetailView, error) {
	s.snapshotMutex.RLock()
	product, ok := s.products[productID]
	s.snapshotMutex.RUnlock()
	if !ok {
		return nil, pipeline.ErrRecordNotFound
	}

	return s.resolverFor(sessionID).Open(product)
}

// CloseDetail dismisses the session's detail view; closing an already-closed
// view is a no-op. The resolver entry is evicted with it — a closed resolver
// is indistinguishable from an absent one, and resolverFor recreates lazily,
// so the registry never outlives the sessions it serves.
func (s *Service) CloseDetail(sessionID string) {
	s.resolverMutex.Lock()
	resolver, ok := s.resolvers[sessionID]
	delete(s.resolvers, sessionID)
	s.resolverMutex.Unlock()
	if ok {
		resolver.Close()
	}
}

func (s *Service) resolverFor(sessionID string) *pipeline.Resolver {
	s.resolverMutex.Lock()
	defer s.resolverMutex.Unlock()

	resolver, ok := s.resolvers[sessionID]
	if !ok {
		resolver = pipeline.NewResolver(s.lookupRecord)
		s.resolvers[sessionID] = resolver
	}
	return resolver
}

func (s *Service) lookupRecord(id string) (domain.RawRecord, bool) {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// setSnapshot replaces the most recent fetch result. The maps are rebuilt
// wholesale; products from an earlier fetch never leak into detail lookups.
func (s *Service) setSnapshot(result *domain.CatalogResult) {
	products := make(map[string]domain.Product, len(result.Products))
	for _, p := range result.Products {
		products[p.ID] = p
	}
	records := make(map[string]domain.RawRecord, len(result.Records))
	for _, rec := range result.Records {
		records[rec.ID] = rec
	}

	s.snapshotMutex.Lock()
	s.products = products
	s.records = records
	s.snapshotMutex.Unlock()
}
