package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSearchURL = "https://nominatim.openstreetmap.org/search"
	userAgent        = "fjordhomes-listing-composer/1.0"
)

// ErrNotFound means every query variant came back empty. It is non-fatal:
// the caller leaves the draft's location at its last known value.
var ErrNotFound = errors.New("geocode: location not found")

// Place is one result from the geocoding service.
type Place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

// Client queries the external geocoding service.
type Client struct {
	httpClient *http.Client

	// Overridable URL for testing.
	searchURL string
}

// NewClient creates a geocoding client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		searchURL:  defaultSearchURL,
	}
}

// Search runs a single free-text query, optionally biased to a country code.
func (c *Client) Search(ctx context.Context, query, countryCode string) (places []Place, err error) {
	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}
	if countryCode != "" {
		params.Set("countrycodes", strings.ToLower(countryCode))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return places, nil
}

// Resolve turns free-text location input into coordinates. Pasted links with
// embedded coordinates are parsed directly without a network call; otherwise
// a small ordered list of query variants is tried until one yields a result.
func (c *Client) Resolve(ctx context.Context, input, countryCode string) (Coords, error) {
	if coords, ok := ParseCoords(input); ok {
		return coords, nil
	}

	var lastErr error
	for _, query := range queryVariants(input) {
		places, err := c.Search(ctx, query, countryCode)
		if err != nil {
			// A failed variant does not end the chain; a later one may
			// still hit.
			lastErr = fmt.Errorf("geocoder lookup: %w", err)
			continue
		}
		if len(places) == 0 {
			continue
		}
		coords, err := placeCoords(places[0])
		if err != nil {
			continue
		}
		return coords, nil
	}

	if lastErr != nil {
		return Coords{}, lastErr
	}
	return Coords{}, ErrNotFound
}

// queryVariants returns the fallback queries for free-text input: the raw
// input, the first comma-delimited segment as a city/street hint, and the
// cleaned full string. Duplicates are collapsed.
func queryVariants(input string) []string {
	raw := strings.TrimSpace(input)
	variants := []string{raw}

	if first, _, ok := strings.Cut(raw, ","); ok {
		variants = append(variants, strings.TrimSpace(first))
	}

	cleaned := strings.Join(strings.Fields(strings.ReplaceAll(raw, ",", " ")), " ")
	variants = append(variants, cleaned)

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func placeCoords(p Place) (Coords, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return Coords{}, fmt.Errorf("parsing lat %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return Coords{}, fmt.Errorf("parsing lon %q: %w", p.Lon, err)
	}
	return Coords{Lat: lat, Lon: lon}, nil
}
