// Package provider fetches the external color-name dataset over HTTP and
// flattens it into raw records for the merge pipeline.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/colorvane/colorvane/internal/catalog"
)

const (
	// DefaultURL is the color-name-list dataset the tool merges from by
	// default.
	DefaultURL = "https://unpkg.com/color-name-list@1.19.0/dist/colornames.json"

	// DefaultUserAgent identifies colorvane to the dataset host.
	DefaultUserAgent = "colorvane/1.0 (+https://github.com/colorvane/colorvane)"

	defaultTimeout = 30 * time.Second
)

// Client fetches raw color records from a JSON dataset URL.
type Client struct {
	URL        string
	UserAgent  string
	HTTPClient *http.Client
}

// New returns a client for the given dataset URL. An empty url selects
// DefaultURL.
func New(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:       url,
		UserAgent: DefaultUserAgent,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Fetch performs a single GET against the dataset URL and decodes the
// body. It returns the flattened records and the raw item count before
// flattening. There are no retries; callers treat any error as "zero
// records available" and proceed with the existing catalog.
func (c *Client) Fetch(ctx context.Context) ([]catalog.Record, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %s: %w", c.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, 0, fmt.Errorf("fetch %s: HTTP %d", c.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}

	records, raw, err := DecodeRecords(body)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", c.URL, err)
	}
	return records, raw, nil
}

// DecodeRecords flattens a dataset body into uniform records. Two shapes
// are accepted: a JSON array of {name, hex} objects, or a JSON object
// mapping hex to name. Array items missing either field are dropped
// silently. The second return is the raw item count before dropping.
func DecodeRecords(data []byte) ([]catalog.Record, int, error) {
	var asList []catalog.Record
	if err := json.Unmarshal(data, &asList); err == nil {
		records := make([]catalog.Record, 0, len(asList))
		for _, rec := range asList {
			if rec.Name == "" || rec.Hex == "" {
				continue
			}
			records = append(records, rec)
		}
		return records, len(asList), nil
	}

	var asMap map[string]string
	if err := json.Unmarshal(data, &asMap); err != nil {
		return nil, 0, fmt.Errorf("body is neither a record list nor a hex-name map: %w", err)
	}
	records := make([]catalog.Record, 0, len(asMap))
	for hex, name := range asMap {
		if hex == "" || name == "" {
			continue
		}
		records = append(records, catalog.Record{Name: name, Hex: hex})
	}
	// Map iteration order is random; sort so repeated runs admit entries
	// in the same order and produce identical catalogs.
	sort.Slice(records, func(i, j int) bool {
		return strings.ToLower(records[i].Hex) < strings.ToLower(records[j].Hex)
	})
	return records, len(asMap), nil
}
