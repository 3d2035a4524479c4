package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"github.com/user235678/yt-adawi-sub002/internal/config"
	"github.com/user235678/yt-adawi-sub002/internal/domain"
)

// fallbackBanner is the displayable message surfaced next to the retry
// action when the remote catalog could not be loaded.
const fallbackBanner = "Impossible de charger le catalogue. Une sélection de secours est affichée."

// CatalogClient fetches and normalizes the remote catalog.
//
// FetchCatalog never returns a nil result: on any transport failure,
// non-2xx status, or unrecognized response shape it substitutes the
// fixed fallback set and reports the cause alongside. Implementations,
// including test doubles, must uphold this so callers can use the
// result without a nil check.
type CatalogClient interface {
	FetchCatalog(ctx context.Context) (*domain.CatalogResult, error)
}

type catalogClient struct {
	rl         ratelimit.Limiter
	config     config.CatalogConfig
	baseURL    string
	httpClient *resty.Client

	// Manual retries cancel and replace the in-flight fetch rather than
	// letting two responses race.
	inflightMutex  sync.Mutex
	inflightCancel context.CancelFunc
	inflightGen    uint64
}

func NewCatalogClient(cfg config.CatalogConfig) CatalogClient {
	if cfg.MaxRequestsPerSecond < 1 {
		cfg.MaxRequestsPerSecond = 5
	}
	if cfg.FetchLimit < 1 {
		cfg.FetchLimit = 100
	}
	if cfg.Timeout < 1 {
		cfg.Timeout = 30
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("Accept", "application/json")

	return &catalogClient{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		config:     cfg,
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

// FetchCatalog requests up to FetchLimit active records from the remote
// endpoint and normalizes them, honoring the CatalogClient contract on
// failure.
func (c *catalogClient) FetchCatalog(ctx context.Context) (*domain.CatalogResult, error) {
	c.rl.Take()

	ctx, gen := c.replaceInflight(ctx)
	defer c.clearInflight(gen)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(c.config.FetchLimit)).
		Get("/products")

	if err != nil {
		if ctx.Err() != nil {
			return c.fallbackResult(fmt.Errorf("fetch cancelled: %w", ctx.Err()))
		}
		return c.fallbackResult(fmt.Errorf("failed to fetch catalog: %w", err))
	}

	if resp.IsError() {
		// Status() already carries the numeric code.
		return c.fallbackResult(fmt.Errorf("HTTP error: %s", resp.Status()))
	}

	items, err := unwrapRecords([]byte(resp.String()))
	if err != nil {
		return c.fallbackResult(err)
	}

	records := make([]domain.RawRecord, 0, len(items))
	for i, raw := range items {
		var rec domain.RawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// A single bad record must not abort the batch.
			log.Warnf("skipping malformed catalog record %d: %v", i, err)
			continue
		}
		if !rec.IsActive {
			continue
		}
		records = append(records, rec)
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, Normalize(rec))
	}

	log.Debugf("fetched catalog: %d records, %d active", len(items), len(records))

	return &domain.CatalogResult{
		Products: products,
		Records:  records,
	}, nil
}

// unwrapRecords resolves the three response shapes the endpoint is known to
// produce: a bare array, {"products": [...]}, or {"data": [...]}. Anything
// else fails closed so the caller takes the fallback path.
func unwrapRecords(body []byte) ([]json.RawMessage, error) {
	var bare []json.RawMessage
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var envelope struct {
		Products []json.RawMessage `json:"products"`
		Data     []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unrecognized catalog response shape: %w", err)
	}
	if envelope.Products != nil {
		return envelope.Products, nil
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}

	return nil, errors.New("unrecognized catalog response shape: no products or data array")
}

func (c *catalogClient) fallbackResult(cause error) (*domain.CatalogResult, error) {
	log.Warnf("catalog fetch failed, substituting fallback set: %v", cause)

	products, records := FallbackCatalog()
	return &domain.CatalogResult{
		Products: products,
		Records:  records,
		Fallback: true,
		Message:  fallbackBanner,
	}, cause
}

// replaceInflight cancels any fetch still in flight and registers the new
// one. The returned generation lets the owner clear only its own entry.
func (c *catalogClient) replaceInflight(ctx context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(ctx)

	c.inflightMutex.Lock()
	defer c.inflightMutex.Unlock()

	if c.inflightCancel != nil {
		log.Debug("cancelling superseded catalog fetch")
		c.inflightCancel()
	}
	c.inflightGen++
	c.inflightCancel = cancel
	return ctx, c.inflightGen
}

func (c *catalogClient) clearInflight(gen uint64) {
	c.inflightMutex.Lock()
	defer c.inflightMutex.Unlock()

	if c.inflightGen == gen && c.inflightCancel != nil {
		c.inflightCancel()
		c.inflightCancel = nil
	}
}
