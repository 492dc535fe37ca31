package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Location is the resolved geocoding result for a free-text query.
type Location struct {
	Query       string       `json:"query"`
	DisplayName string       `json:"displayName"`
	Country     string       `json:"country,omitempty"`
	CountryCode string       `json:"countryCode,omitempty"`
	State       string       `json:"state,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Resolver turns a free-text place name into a Location. A nil result with a
// nil error means the place could not be resolved.
type Resolver interface {
	Lookup(ctx context.Context, query string) (*Location, error)
}

// Client resolves place names through the Nominatim (OpenStreetMap) search
// API. Nominatim's usage policy requires an identifying User-Agent on every
// request.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewClient creates a Nominatim client. baseURL may be empty to use the
// public endpoint.
func NewClient(client *http.Client, baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
		State       string `json:"state"`
		Province    string `json:"province"`
	} `json:"address"`
}

// Lookup geocodes a free-text query, requesting up to five candidates. When
// several candidates match, the first Canadian one is preferred; otherwise
// the first candidate overall wins. Any network, status or parse failure
// yields (nil, nil) so the caller can report "location not found".
func (c *Client) Lookup(ctx context.Context, query string) (*Location, error) {
	values := url.Values{}
	values.Set("format", "json")
	values.Set("q", query)
	values.Set("limit", "5")
	values.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	// Regional bias: prefer the first Canadian candidate when the query is
	// ambiguous. This is deliberate, not a proximity-based best match.
	result := results[0]
	for _, r := range results {
		if r.Address.CountryCode == "ca" {
			result = r
			break
		}
	}

	lat, latErr := strconv.ParseFloat(result.Lat, 64)
	lon, lonErr := strconv.ParseFloat(result.Lon, 64)
	if latErr != nil || lonErr != nil {
		return nil, nil
	}

	country := result.Address.Country
	if country == "" {
		country = "Unknown"
	}
	code := result.Address.CountryCode
	if code == "" {
		code = "unknown"
	}
	state := result.Address.State
	if state == "" {
		state = result.Address.Province
	}

	return &Location{
		Query:       query,
		DisplayName: result.DisplayName,
		Country:     country,
		CountryCode: strings.ToUpper(code),
		State:       state,
		Coordinates: &Coordinates{Lat: lat, Lon: lon},
	}, nil
}
