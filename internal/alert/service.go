package alert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Arshya-tech/ClearAlert/internal/geocode"
)

// ErrLocationNotFound is returned when the query cannot be geocoded.
var ErrLocationNotFound = errors.New("location not found")

// Result is the aggregated outcome for one location query.
type Result struct {
	Alerts   []Alert           `json:"alerts"`
	Location *geocode.Location `json:"location,omitempty"`
	Message  string            `json:"message"`
}

// Service orchestrates geocoding, the source adapters, dedup and sorting.
type Service struct {
	resolver geocode.Resolver
	global   Source            // worldwide coverage, always queried
	national map[string]Source // keyed by ISO country code, e.g. "US", "CA"
}

// NewService creates a new Service. national maps country codes to the
// adapter that covers that country; countries without an entry get global
// coverage only.
func NewService(resolver geocode.Resolver, global Source, national map[string]Source) *Service {
	return &Service{
		resolver: resolver,
		global:   global,
		national: national,
	}
}

// Current resolves the free-text location and aggregates alerts from all
// applicable sources. Geocoding failure returns ErrLocationNotFound; source
// failures are absorbed and only reduce coverage.
func (s *Service) Current(ctx context.Context, locationQuery string) (*Result, error) {
	loc, err := s.resolver.Lookup(ctx, locationQuery)
	if err != nil {
		log.Printf("geocode failed for %q: %v", locationQuery, err)
		return nil, ErrLocationNotFound
	}
	if loc == nil || loc.Coordinates == nil {
		return nil, ErrLocationNotFound
	}

	q := Query{
		Lat:         loc.Coordinates.Lat,
		Lon:         loc.Coordinates.Lon,
		Country:     loc.Country,
		CountryCode: loc.CountryCode,
		State:       loc.State,
	}

	// The global and national fetches have no data dependency, so they run
	// concurrently. Merge order stays fixed (global first) to keep the
	// first-wins dedup deterministic.
	var (
		wg             sync.WaitGroup
		globalAlerts   []Alert
		nationalAlerts []Alert
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		globalAlerts = s.fetchFrom(ctx, s.global, q)
	}()

	if national, ok := s.national[q.CountryCode]; ok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nationalAlerts = s.fetchFrom(ctx, national, q)
		}()
	}

	wg.Wait()

	merged := make([]Alert, 0, len(globalAlerts)+len(nationalAlerts))
	merged = append(merged, globalAlerts...)
	merged = append(merged, nationalAlerts...)

	unique := Dedup(merged)
	SortAlerts(unique)

	return &Result{
		Alerts:   unique,
		Location: loc,
		Message:  summaryMessage(len(unique)),
	}, nil
}

// fetchFrom runs one adapter and absorbs its failure into an empty
// contribution; we want partial coverage when a source is down.
func (s *Service) fetchFrom(ctx context.Context, src Source, q Query) []Alert {
	if src == nil {
		return nil
	}
	alerts, err := src.Fetch(ctx, q)
	if err != nil {
		log.Printf("source %s fetch failed: %v", src.Name(), err)
		return nil
	}
	return alerts
}

func summaryMessage(count int) string {
	if count == 0 {
		return "No major alerts in the last 24 hours. Stay safe and check back for updates!"
	}
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Found %d active alert%s in the last 24 hours.", count, plural)
}
