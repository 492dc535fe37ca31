package alert

import "context"

// Query carries the resolved location a source adapter fetches alerts for.
type Query struct {
	Lat         float64
	Lon         float64
	Country     string
	CountryCode string // upper-case ISO code, e.g. "US", "CA"
	State       string // state or province name, may be empty
}

// Source abstracts an upstream alert feed (NWS, Environment Canada, GDACS).
// Implementations return normalized alerts that already passed the 24-hour
// recency filter. Errors are absorbed by the aggregator; a failing source
// simply contributes nothing.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]Alert, error)
}
