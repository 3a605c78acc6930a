// Package outline fetches unit outline payloads from the university web API.
// The cache is caller-owned and injected, never package-level state.
package outline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "uni-deadline-tracker/pkg/log"
)

// Cache holds recently fetched documents keyed by unit/semester/year.
type Cache = expirable.LRU[string, Document]

// NewCache builds a document cache with the given capacity and TTL.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 128
	}
	return expirable.NewLRU[string, Document](size, nil, ttl)
}

// Client is the HTTP wrapper for the unit outline API.
type Client struct {
	cfg        Config
	cache      *Cache
	limiter    *rate.Limiter
	httpClient *http.Client
	l          pkgLog.Logger
}

// New creates a new outline Client. The cache is injected so its lifetime and
// sharing are the caller's decision.
func New(cfg Config, cache *Cache, l pkgLog.Logger) *Client {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = 30
	}
	return &Client{
		cfg:        cfg,
		cache:      cache,
		limiter:    rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin/10+1),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		l:          l,
	}
}

// FetchOutline returns the outline payload for a unit offering, from cache
// when a fresh copy exists. Cache entries also carry their fetch time, so a
// stale entry is refetched even if the LRU has not evicted it yet.
func (c *Client) FetchOutline(ctx context.Context, unit string, semester, year int) (Document, error) {
	key := fmt.Sprintf("%s/%d/%d", unit, year, semester)
	if doc, ok := c.cache.Get(key); ok && c.fresh(doc) {
		c.l.Debugf(ctx, "outline.FetchOutline: cache hit for %s", key)
		return doc, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Document{}, fmt.Errorf("rate limit wait aborted: %w", err)
	}

	url := fmt.Sprintf("%s/api/units/%s/outline?semester=%d&year=%d", c.cfg.BaseURL, unit, semester, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("failed to build outline request: %w", err)
	}
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.AccessToken))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("failed to call outline API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Document{}, fmt.Errorf("outline API error %d: %s", resp.StatusCode, string(raw))
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode outline response: %w", err)
	}
	doc.Unit = unit
	doc.Semester = semester
	doc.Year = year
	doc.FetchedAt = time.Now()

	c.cache.Add(key, doc)
	return doc, nil
}

func (c *Client) fresh(doc Document) bool {
	if c.cfg.CacheTTL <= 0 {
		return true
	}
	return time.Since(doc.FetchedAt) < c.cfg.CacheTTL
}
