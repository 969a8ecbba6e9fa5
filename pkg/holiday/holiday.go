// Package holiday resolves dates to public holiday names, backed by the
// Nager.Date API and cached per calendar year in the local store.
package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"harucal/pkg/day"
	"harucal/pkg/store"
)

const (
	defaultBaseURL = "https://date.nager.at/api/v3"
	cacheKeyPrefix = "holidays-"
)

// apiHoliday is one record of the public holidays response.
type apiHoliday struct {
	Date      string `json:"date"` // YYYY-MM-DD
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// Cache is a fetch-once-per-year lookup of public holiday names. Entries are
// immutable once cached; there is no expiry. Lookup never fetches.
type Cache struct {
	BaseURL string
	Client  *http.Client

	country string
	d       *diskv.Diskv

	mu     sync.Mutex
	names  map[string]string // YYYY-MM-DD -> local name
	loaded map[int]bool
}

// NewCache creates a Cache persisting year blobs under the store base path.
func NewCache(cfg store.Config) (*Cache, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Cache{
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
		country: cfg.Country(),
		d: diskv.New(diskv.Options{
			BasePath:     cfg.BasePath(),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		names:  map[string]string{},
		loaded: map[int]bool{},
	}, nil
}

// EnsureYear makes the given year's holidays available to Lookup. It is
// idempotent: a year already merged or already cached on disk performs no
// fetch. Network or decode failures are logged and leave the year absent, so
// a later call will retry.
func (c *Cache) EnsureYear(ctx context.Context, year int) {
	c.mu.Lock()
	if c.loaded[year] {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	key := fmt.Sprintf("%s%d", cacheKeyPrefix, year)
	if c.d.Has(key) {
		data, err := c.d.Read(key)
		if err == nil {
			var cached map[string]string
			if err := json.Unmarshal(data, &cached); err == nil {
				c.merge(year, cached)
				return
			}
			fmt.Fprintf(os.Stderr, "holiday: invalid cache for %d: %v\n", year, err)
		}
	}

	fetched, err := c.fetchYear(ctx, year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "holiday: fetch %d: %v\n", year, err)
		return
	}

	data, err := json.Marshal(fetched)
	if err == nil {
		if err := c.d.Write(key, data); err != nil {
			fmt.Fprintf(os.Stderr, "holiday: cache %d: %v\n", year, err)
		}
	}
	c.merge(year, fetched)
}

// EnsureAround loads the year plus both neighbors, covering month-grid
// cells that overflow into adjacent years.
func (c *Cache) EnsureAround(ctx context.Context, year int) {
	c.EnsureYear(ctx, year)
	c.EnsureYear(ctx, year+1)
	c.EnsureYear(ctx, year-1)
}

// merge is append-only and keyed by date, so a stale fetch resolving after
// the viewed year changed cannot cause an incorrect display.
func (c *Cache) merge(year int, m map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range m {
		c.names[k] = v
	}
	c.loaded[year] = true
}

func (c *Cache) fetchYear(ctx context.Context, year int) (map[string]string, error) {
	url := fmt.Sprintf("%s/publicholidays/%d/%s", c.BaseURL, year, c.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var items []apiHoliday
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(items))
	for _, item := range items {
		out[item.Date] = item.LocalName
	}
	return out, nil
}

// Lookup returns the holiday name for a date, or false. Fetched entries win
// over the built-in recurring table.
func (c *Cache) Lookup(t time.Time) (string, bool) {
	key := day.Key(t)

	c.mu.Lock()
	name, ok := c.names[key]
	c.mu.Unlock()
	if ok {
		return name, true
	}

	if name, ok := recurring[key[5:]]; ok { // MM-DD
		return name, true
	}
	if name, ok := recurring[key]; ok {
		return name, true
	}
	return "", false
}

// recurring holds fixed-date holidays that repeat every year, plus a few
// dated lunar holidays kept for offline use.
var recurring = map[string]string{
	"01-01": "신정",
	"03-01": "삼일절",
	"05-05": "어린이날",
	"06-06": "현충일",
	"08-15": "광복절",
	"10-03": "개천절",
	"10-09": "한글날",
	"12-25": "크리스마스",
	// Lunar holidays (approx for 2024-2025)
	"2024-02-09": "설날 연휴",
	"2024-02-10": "설날",
	"2024-02-11": "설날 연휴",
	"2024-02-12": "대체공휴일",
	"2024-05-15": "부처님오신날",
	"2024-09-16": "추석 연휴",
	"2024-09-17": "추석",
	"2024-09-18": "추석 연휴",
	"2025-01-28": "설날 연휴",
	"2025-01-29": "설날",
	"2025-01-30": "설날 연휴",
	"2025-10-06": "추석",
}
