package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/Arshya-tech/ClearAlert/internal/alert"
)

const nwsDefaultBaseURL = "https://api.weather.gov"

// nwsCertainty maps NWS certainty strings to a confidence score.
var nwsCertainty = map[string]float64{
	"Observed": 1.0,
	"Likely":   0.9,
	"Possible": 0.7,
	"Unlikely": 0.4,
	"Unknown":  0.5,
}

// NWSSource fetches active alerts for a point from the US National Weather
// Service API.
type NWSSource struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewNWSSource creates the NWS adapter. baseURL may be empty to use the
// public endpoint.
func NewNWSSource(client *http.Client, baseURL, userAgent string) *NWSSource {
	if baseURL == "" {
		baseURL = nwsDefaultBaseURL
	}
	return &NWSSource{
		name:    "nws",
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: userAgent,
			Backoff:   defaultBackoff,
		},
		circuit: newBreaker("nws"),
	}
}

func (s *NWSSource) Name() string {
	return s.name
}

func (s *NWSSource) Fetch(ctx context.Context, q alert.Query) ([]alert.Alert, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/alerts/active?point=%f,%f", s.baseURL, q.Lat, q.Lon)
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
		Features []struct {
			Properties struct {
				ID          string `json:"id"`
				Severity    string `json:"severity"`
				Event       string `json:"event"`
				Headline    string `json:"headline"`
				Description string `json:"description"`
				Instruction string `json:"instruction"`
				AreaDesc    string `json:"areaDesc"`
				Effective   string `json:"effective"`
				Expires     string `json:"expires"`
				Certainty   string `json:"certainty"`
				SenderName  string `json:"senderName"`
			} `json:"properties"`
		} `json:"features"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nws decode: %w", err)
	}

	var alerts []alert.Alert
	for _, feature := range payload.Features {
		props := feature.Properties
		if !alert.WithinLastDay(props.Effective) {
			continue
		}

		confidence, ok := nwsCertainty[props.Certainty]
		if !ok {
			confidence = 0.5
		}

		alerts = append(alerts, alert.Alert{
			ID:          props.ID,
			Type:        alert.MapAlertType(props.Event),
			Severity:    alert.MapSeverity(props.Severity),
			Title:       props.Event,
			Headline:    props.Headline,
			Description: alert.SimplifyDescription(props.Description),
			Instruction: props.Instruction,
			Location:    props.AreaDesc,
			Timestamp:   props.Effective,
			Confidence:  confidence,
			ExpiresAt:   props.Expires,
			Source:      "National Weather Service (US)",
		})
	}

	return alerts, nil
}
