package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/Arshya-tech/ClearAlert/internal/alert"
)

const canadaDefaultBaseURL = "https://api.weather.gc.ca"

// provinceVariants lists the English and French spellings and abbreviations
// used to match an alert's area text against a resolved province.
var provinceVariants = map[string][]string{
	"British Columbia":          {"BC", "British Columbia", "Colombie-Britannique"},
	"Alberta":                   {"AB", "Alberta"},
	"Saskatchewan":              {"SK", "Saskatchewan"},
	"Manitoba":                  {"MB", "Manitoba"},
	"Ontario":                   {"ON", "Ontario"},
	"Quebec":                    {"QC", "Quebec", "Québec"},
	"New Brunswick":             {"NB", "New Brunswick", "Nouveau-Brunswick"},
	"Nova Scotia":               {"NS", "Nova Scotia", "Nouvelle-Écosse"},
	"Prince Edward Island":      {"PE", "PEI", "Prince Edward Island", "Île-du-Prince-Édouard"},
	"Newfoundland and Labrador": {"NL", "Newfoundland", "Labrador", "Terre-Neuve-et-Labrador"},
	"Yukon":                     {"YT", "Yukon"},
	"Northwest Territories":     {"NT", "Northwest Territories", "NWT"},
	"Nunavut":                   {"NU", "Nunavut"},
}

// CanadaSource fetches the national alerts collection from the Environment
// Canada GeoMet OGC API. The upstream endpoint is not geometry-filtered, so
// relevance filtering happens here.
type CanadaSource struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewCanadaSource creates the Environment Canada adapter. baseURL may be
// empty to use the public endpoint.
func NewCanadaSource(client *http.Client, baseURL, userAgent string) *CanadaSource {
	if baseURL == "" {
		baseURL = canadaDefaultBaseURL
	}
	return &CanadaSource{
		name:    "environment-canada",
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: userAgent,
			Backoff:   defaultBackoff,
		},
		circuit: newBreaker("environment-canada"),
	}
}

func (s *CanadaSource) Name() string {
	return s.name
}

type canadaFeature struct {
	ID         string          `json:"id"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties struct {
		Identifier  string `json:"identifier"`
		Event       string `json:"event"`
		Headline    string `json:"headline"`
		Description string `json:"description"`
		Instruction string `json:"instruction"`
		Response    string `json:"response"`
		Area        string `json:"area"`
		Severity    string `json:"severity"`
		Urgency     string `json:"urgency"`
		Effective   string `json:"effective"`
		Sent        string `json:"sent"`
		Expires     string `json:"expires"`
		SenderName  string `json:"senderName"`
	} `json:"properties"`
}

func (s *CanadaSource) Fetch(ctx context.Context, q alert.Query) ([]alert.Alert, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/collections/alerts/items?f=json&lang=en&limit=100", s.baseURL)
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/geo+json")
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, s.httpCfg, s.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Features []canadaFeature `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("canada decode: %w", err)
	}

	var alerts []alert.Alert
	for _, feature := range payload.Features {
		props := feature.Properties

		area := props.Area
		if area == "" {
			area = props.Headline
		}

		if !s.isRelevant(feature, area, q.State) {
			continue
		}

		eventType := props.Event
		if eventType == "" {
			eventType = firstWord(props.Headline)
		}
		if eventType == "" {
			eventType = "Alert"
		}

		severity := props.Severity
		if severity == "" {
			severity = props.Urgency
		}
		if severity == "" {
			severity = "Moderate"
		}

		// Missing effective/sent defaults to now, which always passes the
		// recency check. Known leniency, kept as documented behavior.
		timestamp := props.Effective
		if timestamp == "" {
			timestamp = props.Sent
		}
		if timestamp == "" {
			timestamp = clockNow().Format(time.RFC3339)
		}
		if !alert.WithinLastDay(timestamp) {
			continue
		}

		id := props.Identifier
		if id == "" {
			id = feature.ID
		}
		if id == "" {
			id = fmt.Sprintf("ca-%d-%s", clockNow().Unix(), uuid.NewString())
		}

		headline := props.Headline
		if headline == "" {
			headline = eventType
		}

		description := props.Description
		if description == "" {
			description = props.Headline
		}

		instruction := props.Instruction
		if instruction == "" {
			instruction = props.Response
		}

		source := props.SenderName
		if source == "" {
			source = "Environment and Climate Change Canada"
		}

		alerts = append(alerts, alert.Alert{
			ID:          id,
			Type:        alert.MapAlertType(eventType),
			Severity:    alert.MapSeverity(severity),
			Title:       eventType,
			Headline:    headline,
			Description: alert.SimplifyDescription(description),
			Instruction: instruction,
			Location:    area,
			Timestamp:   timestamp,
			Confidence:  0.9,
			ExpiresAt:   props.Expires,
			Source:      source,
		})
	}

	return alerts, nil
}

// isRelevant decides whether a national-feed alert applies to the query. With
// a resolved province, the alert's area or headline must mention one of the
// province's name variants. Without one, any alert that carries geometry is
// accepted; the proximity check here is an acknowledged stub.
func (s *CanadaSource) isRelevant(feature canadaFeature, area, province string) bool {
	if province == "" {
		return true
	}

	variants, ok := provinceVariants[province]
	if !ok {
		variants = []string{province}
	}

	areaLower := strings.ToLower(area)
	headlineLower := strings.ToLower(feature.Properties.Headline)
	for _, name := range variants {
		nameLower := strings.ToLower(name)
		if strings.Contains(areaLower, nameLower) || strings.Contains(headlineLower, nameLower) {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
