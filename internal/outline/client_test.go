package outline_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uni-deadline-tracker/internal/outline"
	"uni-deadline-tracker/pkg/log"
)

func newTestServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.Path != "/api/units/COMP1000/outline" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"assessment_list":"1| Assignment| 40 percent;","calendar_html":"<table></table>"}`)
	}))
}

func newClient(baseURL string, ttl time.Duration) *outline.Client {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "development"})
	cfg := outline.Config{
		BaseURL:        baseURL,
		AccessToken:    "test-token",
		CacheSize:      16,
		CacheTTL:       ttl,
		RequestsPerMin: 600,
	}
	return outline.New(cfg, outline.NewCache(cfg.CacheSize, cfg.CacheTTL), l)
}

func TestFetchOutline(t *testing.T) {
	hits := 0
	srv := newTestServer(t, &hits)
	defer srv.Close()

	c := newClient(srv.URL, time.Minute)
	doc, err := c.FetchOutline(context.Background(), "COMP1000", 1, 2026)
	if err != nil {
		t.Fatalf("FetchOutline: %v", err)
	}
	if doc.AssessmentList == "" || doc.CalendarHTML == "" {
		t.Errorf("incomplete document: %#v", doc)
	}
	if doc.Unit != "COMP1000" || doc.Semester != 1 || doc.Year != 2026 {
		t.Errorf("offering fields not filled: %#v", doc)
	}
	if doc.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestFetchOutlineCaches(t *testing.T) {
	hits := 0
	srv := newTestServer(t, &hits)
	defer srv.Close()

	c := newClient(srv.URL, time.Minute)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := c.FetchOutline(ctx, "COMP1000", 1, 2026); err != nil {
			t.Fatalf("FetchOutline #%d: %v", i, err)
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (cache miss only on first call)", hits)
	}
}

func TestFetchOutlineAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newClient(srv.URL, time.Minute)
	if _, err := c.FetchOutline(context.Background(), "COMP1000", 1, 2026); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}
