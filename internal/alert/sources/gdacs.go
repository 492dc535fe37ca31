package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/Arshya-tech/ClearAlert/internal/alert"
	"github.com/Arshya-tech/ClearAlert/internal/geo"
)

const gdacsDefaultFeedURL = "https://www.gdacs.org/xml/rss.xml"

const (
	// gdacsProximityKm is the relevance radius when the item names a country
	// that matches the query.
	gdacsProximityKm = 300
	// gdacsTightProximityKm applies when the item carries no country tag.
	gdacsTightProximityKm = 150
)

// GDACSSource fetches the Global Disaster Alert and Coordination System RSS
// feed. Coverage is worldwide, so relevance is gated on proximity to the
// query point plus a country match.
type GDACSSource struct {
	name    string
	feedURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewGDACSSource creates the GDACS adapter. feedURL may be empty to use the
// public feed.
func NewGDACSSource(client *http.Client, feedURL, userAgent string) *GDACSSource {
	if feedURL == "" {
		feedURL = gdacsDefaultFeedURL
	}
	return &GDACSSource{
		name:    "gdacs",
		feedURL: feedURL,
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: userAgent,
			Backoff:   defaultBackoff,
		},
		circuit: newBreaker("gdacs"),
	}
}

func (s *GDACSSource) Name() string {
	return s.name
}

// gdacsItem is a typed view of one RSS <item>, including the gdacs: and geo:
// namespaced extension fields. Every field is optional; missing ones fall
// back the same way the upstream feed's consumers expect.
type gdacsItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	GeoLat      string `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# lat"`
	GeoLong     string `xml:"http://www.w3.org/2003/01/geo/wgs84_pos# long"`
	AlertLevel  string `xml:"http://www.gdacs.org alertlevel"`
	EventType   string `xml:"http://www.gdacs.org eventtype"`
	Country     string `xml:"http://www.gdacs.org country"`
}

type gdacsFeed struct {
	Channel struct {
		Items []gdacsItem `xml:"item"`
	} `xml:"channel"`
}

func (s *GDACSSource) Fetch(ctx context.Context, q alert.Query) ([]alert.Alert, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, s.feedURL, nil)
	}

	resp, err := doRequestWithResilience(ctx, s.httpCfg, s.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var feed gdacsFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("gdacs decode: %w", err)
	}

	var alerts []alert.Alert
	for _, item := range feed.Channel.Items {
		if item.Title == "" {
			continue
		}
		if !alert.WithinLastDay(item.PubDate) {
			continue
		}
		if !s.isRelevant(item, q) {
			continue
		}

		id := item.Link
		if id == "" {
			id = fmt.Sprintf("gdacs-%d-%s", clockNow().Unix(), uuid.NewString())
		}

		eventText := item.EventType
		if eventText == "" {
			eventText = item.Title
		}

		// A missing alert level is treated as Green, the feed's lowest tier.
		level := item.AlertLevel
		if level == "" {
			level = "Green"
		}

		location := item.Country
		if location == "" {
			location = "International"
		}

		timestamp := item.PubDate
		if timestamp == "" {
			timestamp = clockNow().Format(time.RFC3339)
		}

		alerts = append(alerts, alert.Alert{
			ID:          id,
			Type:        alert.MapAlertType(eventText),
			Severity:    mapGDACSLevel(level),
			Title:       item.Title,
			Headline:    item.Title,
			Description: alert.SimplifyDescription(item.Description),
			Instruction: "Follow local authority guidance for this event.",
			Location:    location,
			Timestamp:   timestamp,
			Confidence:  0.8,
			ExpiresAt:   clockNow().Add(24 * time.Hour).Format(time.RFC3339),
			Source:      "GDACS - Global Disaster Alert System",
		})
	}

	return alerts, nil
}

// isRelevant gates a feed item on location. The item must carry coordinates.
// With a country tag, it must be within 300 km and the country must match;
// without one, the proximity bar tightens to 150 km.
func (s *GDACSSource) isRelevant(item gdacsItem, q alert.Query) bool {
	eventLat, latErr := strconv.ParseFloat(strings.TrimSpace(item.GeoLat), 64)
	eventLon, lonErr := strconv.ParseFloat(strings.TrimSpace(item.GeoLong), 64)
	if latErr != nil || lonErr != nil {
		return false
	}

	distance := geo.DistanceKm(q.Lat, q.Lon, eventLat, eventLon)
	if distance >= gdacsProximityKm {
		return false
	}

	if item.Country == "" {
		return distance < gdacsTightProximityKm
	}

	eventCountry := strings.ToLower(item.Country)
	userCountry := strings.ToLower(q.Country)
	userCode := strings.ToLower(q.CountryCode)

	return eventCountry == userCountry ||
		strings.Contains(eventCountry, userCountry) ||
		strings.Contains(userCountry, eventCountry) ||
		strings.Contains(eventCountry, userCode)
}

// mapGDACSLevel translates GDACS color levels into severities. Yellow and
// Green both land on moderate; anything unrecognized is low.
func mapGDACSLevel(level string) alert.Severity {
	switch strings.ToLower(level) {
	case "red":
		return alert.SeverityExtreme
	case "orange":
		return alert.SeveritySevere
	case "yellow", "green":
		return alert.SeverityModerate
	default:
		return alert.SeverityLow
	}
}
