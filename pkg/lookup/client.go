// Package lookup wraps the dashboard backend's company search endpoint.
// The backend is treated as unreliable: any transport failure, timeout or
// non-2xx status collapses into an empty result set plus an error the
// caller surfaces only as a degraded-mode flag. Nothing past this package
// ever branches on the backend's response shape.
package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/finboard/symserve/pkg/catalog"
)

// DefaultTimeout bounds a single remote call. Interactive search goes
// stale long before a slow backend answers, so this is kept tight.
const DefaultTimeout = 4 * time.Second

// Client queries GET {base}/companies/search?query=<q>.
type Client struct {
	baseURL  string
	http     *http.Client
	minQuery int
}

// NewClient builds a lookup client. An empty baseURL disables remote
// lookup entirely (catalog-only mode); a zero timeout gets the default.
func NewClient(baseURL string, timeout time.Duration, minQuery int) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if minQuery < 1 {
		minQuery = 1
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		minQuery: minQuery,
	}
}

// Enabled reports whether a backend is configured at all.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Search returns normalized company records for the query. Queries below
// the minimum length are skipped without touching the network and return
// an empty set. The error return is advisory: callers degrade to
// catalog-only results, they never propagate it.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.CompanyRecord, error) {
	if !c.Enabled() {
		return nil, nil
	}
	if len(query) < c.minQuery {
		log.Debugf("query %q below remote minimum (%d), skipping lookup", query, c.minQuery)
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/companies/search?query=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warnf("remote lookup failed for %q: %v", query, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		log.Warnf("remote lookup for %q returned status %s", query, resp.Status)
		return nil, fmt.Errorf("company search returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	records, err := normalizeResponse(body)
	if err != nil {
		log.Warnf("remote lookup for %q returned undecodable payload: %v", query, err)
		return nil, err
	}

	log.Debugf("remote lookup for %q: %d records in %v", query, len(records), time.Since(start))
	return records, nil
}
