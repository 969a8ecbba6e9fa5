package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Country() string  { return "KR" }

func newTestCache(t *testing.T, handler http.Handler) (*Cache, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewCache(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	c.BaseURL = srv.URL
	c.Client = srv.Client()
	return c, srv
}

func TestEnsureYearFetchesOnce(t *testing.T) {
	fetches := 0
	c, _ := newTestCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Write([]byte(`[{"date":"2026-02-17","localName":"설날","name":"Seollal"}]`))
	}))

	ctx := context.Background()
	c.EnsureYear(ctx, 2026)
	c.EnsureYear(ctx, 2026)

	if fetches != 1 {
		t.Fatalf("expected one fetch, got %d", fetches)
	}

	name, ok := c.Lookup(time.Date(2026, time.February, 17, 0, 0, 0, 0, time.Local))
	if !ok || name != "설날" {
		t.Fatalf("expected 설날, got %q (ok=%v)", name, ok)
	}
}

func TestEnsureYearServedFromDiskCache(t *testing.T) {
	fetches := 0
	base := t.TempDir()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Write([]byte(`[{"date":"2026-06-10","localName":"테스트휴일","name":"Test"}]`))
	}))
	defer srv.Close()

	first, err := NewCache(testConfig{path: base})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	first.BaseURL = srv.URL
	first.Client = srv.Client()
	first.EnsureYear(context.Background(), 2026)

	// A fresh cache over the same base path reads the year blob instead of
	// fetching again.
	second, err := NewCache(testConfig{path: base})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	second.BaseURL = srv.URL
	second.Client = srv.Client()
	second.EnsureYear(context.Background(), 2026)

	if fetches != 1 {
		t.Fatalf("expected one fetch across instances, got %d", fetches)
	}
	name, ok := second.Lookup(time.Date(2026, time.June, 10, 0, 0, 0, 0, time.Local))
	if !ok || name != "테스트휴일" {
		t.Fatalf("expected cached name, got %q (ok=%v)", name, ok)
	}
}

func TestFetchFailureLeavesYearAbsent(t *testing.T) {
	c, _ := newTestCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	c.EnsureYear(context.Background(), 2030)
	if _, ok := c.Lookup(time.Date(2030, time.July, 4, 0, 0, 0, 0, time.Local)); ok {
		t.Fatal("expected no holiday for failed year")
	}
}

func TestLookupRecurring(t *testing.T) {
	c, _ := newTestCache(t, http.NotFoundHandler())

	name, ok := c.Lookup(time.Date(2031, time.December, 25, 0, 0, 0, 0, time.Local))
	if !ok || name != "크리스마스" {
		t.Fatalf("expected recurring holiday, got %q (ok=%v)", name, ok)
	}
	if _, ok := c.Lookup(time.Date(2031, time.December, 26, 0, 0, 0, 0, time.Local)); ok {
		t.Fatal("expected no holiday")
	}
}
