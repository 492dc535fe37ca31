package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arshya-tech/ClearAlert/internal/alert"
)

func TestNWSFetch(t *testing.T) {
	recent := time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339)
	stale := time.Now().UTC().Add(-30 * time.Hour).Format(time.RFC3339)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alerts/active", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "point=")
		assert.Equal(t, "application/geo+json", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/geo+json")
		fmt.Fprintf(w, `{
			"features": [
				{
					"properties": {
						"id": "urn:oid:nws.1",
						"severity": "Extreme",
						"event": "Tornado Warning",
						"headline": "Tornado Warning issued for Travis County",
						"description": "<p>A tornado has been spotted.</p> Take cover now. Move to shelter. Stay away from windows.",
						"instruction": "Take cover immediately.",
						"areaDesc": "Travis County, TX",
						"effective": %q,
						"expires": %q,
						"certainty": "Likely",
						"senderName": "NWS Austin"
					}
				},
				{
					"properties": {
						"id": "urn:oid:nws.2",
						"severity": "Severe",
						"event": "Flash Flood Warning",
						"headline": "Old flood alert",
						"description": "Stale.",
						"areaDesc": "Travis County, TX",
						"effective": %q,
						"expires": %q,
						"certainty": "Observed",
						"senderName": "NWS Austin"
					}
				}
			]
		}`, recent, recent, stale, stale)
	}))
	defer server.Close()

	src := NewNWSSource(server.Client(), server.URL, "test-agent")
	assert.Equal(t, "nws", src.Name())

	alerts, err := src.Fetch(context.Background(), alert.Query{Lat: 30.27, Lon: -97.74})
	require.NoError(t, err)

	// The stale feature fails the 24-hour filter at the adapter boundary.
	require.Len(t, alerts, 1)

	got := alerts[0]
	assert.Equal(t, "urn:oid:nws.1", got.ID)
	assert.Equal(t, alert.TypeTornado, got.Type)
	assert.Equal(t, alert.SeverityExtreme, got.Severity)
	assert.Equal(t, "Tornado Warning", got.Title)
	assert.Equal(t, "Tornado Warning issued for Travis County", got.Headline)
	assert.Equal(t, "A tornado has been spotted. Take cover now. Move to shelter.", got.Description)
	assert.Equal(t, "Take cover immediately.", got.Instruction)
	assert.Equal(t, "Travis County, TX", got.Location)
	assert.Equal(t, recent, got.Timestamp)
	assert.Equal(t, 0.9, got.Confidence)
	assert.Equal(t, "National Weather Service (US)", got.Source)
}

func TestNWSCertaintyMapping(t *testing.T) {
	recent := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)

	tests := []struct {
		certainty string
		want      float64
	}{
		{"Observed", 1.0},
		{"Likely", 0.9},
		{"Possible", 0.7},
		{"Unlikely", 0.4},
		{"Unknown", 0.5},
		{"SomethingElse", 0.5},
		{"", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.certainty, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprintf(w, `{"features":[{"properties":{"id":"x","severity":"Moderate","event":"Heat Advisory","effective":%q,"certainty":%q}}]}`, recent, tt.certainty)
			}))
			defer server.Close()

			src := NewNWSSource(server.Client(), server.URL, "test-agent")
			alerts, err := src.Fetch(context.Background(), alert.Query{})
			require.NoError(t, err)
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.want, alerts[0].Confidence)
		})
	}
}

func TestNWSServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	src := NewNWSSource(server.Client(), server.URL, "test-agent")
	_, err := src.Fetch(context.Background(), alert.Query{})
	assert.Error(t, err)
}

func TestNWSEmptyFeatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"features":[]}`)
	}))
	defer server.Close()

	src := NewNWSSource(server.Client(), server.URL, "test-agent")
	alerts, err := src.Fetch(context.Background(), alert.Query{})
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
