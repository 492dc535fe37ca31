package httpapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arshya-tech/ClearAlert/internal/alert"
	"github.com/Arshya-tech/ClearAlert/internal/geocode"
	"github.com/Arshya-tech/ClearAlert/internal/guide"
	"github.com/Arshya-tech/ClearAlert/internal/store"
)

type stubResolver struct {
	location *geocode.Location
}

func (s stubResolver) Lookup(_ context.Context, _ string) (*geocode.Location, error) {
	return s.location, nil
}

type stubSource struct {
	name   string
	alerts []alert.Alert
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(_ context.Context, _ alert.Query) ([]alert.Alert, error) {
	return s.alerts, nil
}

func newTestApp(deps Deps) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, deps)
	return app
}

func testDeps(resolver geocode.Resolver, global alert.Source) Deps {
	return Deps{
		Alerts: alert.NewService(resolver, global, nil),
		Store:  store.NewMemoryStore(0),
		Guide:  guide.NewClient(nil, "", ""),
	}
}

func TestAlertsCurrent(t *testing.T) {
	t.Run("missing location returns an empty result", func(t *testing.T) {
		app := newTestApp(testDeps(stubResolver{}, stubSource{name: "gdacs"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/current", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Alerts  []alert.Alert `json:"alerts"`
			Message string        `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Empty(t, body.Alerts)
		assert.Equal(t, "No location provided", body.Message)
	})

	t.Run("unresolvable location returns 404", func(t *testing.T) {
		app := newTestApp(testDeps(stubResolver{}, stubSource{name: "gdacs"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/current?location=nowhere", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "LOCATION_NOT_FOUND", body["error"])
		assert.Equal(t, "Could not find that location. Please try a different search.", body["message"])
	})

	t.Run("resolved location returns aggregated alerts", func(t *testing.T) {
		resolver := stubResolver{location: &geocode.Location{
			Query:       "Ottawa",
			Country:     "Canada",
			CountryCode: "CA",
			Coordinates: &geocode.Coordinates{Lat: 45.42, Lon: -75.70},
		}}
		global := stubSource{name: "gdacs", alerts: []alert.Alert{
			{ID: "g1", Title: "Flood in Canada", Severity: alert.SeveritySevere, Timestamp: time.Now().Format(time.RFC3339)},
		}}

		app := newTestApp(testDeps(resolver, global))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/current?location=Ottawa", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Alerts   []alert.Alert     `json:"alerts"`
			Location *geocode.Location `json:"location"`
			Message  string            `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Alerts, 1)
		assert.Equal(t, "g1", body.Alerts[0].ID)
		require.NotNil(t, body.Location)
		assert.Equal(t, "CA", body.Location.CountryCode)
		assert.Equal(t, "Found 1 active alert in the last 24 hours.", body.Message)
	})
}

func TestAlertsCached(t *testing.T) {
	deps := testDeps(stubResolver{}, stubSource{name: "gdacs"})
	app := newTestApp(deps)

	t.Run("missing location is a bad request", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/cached", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown location is not found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/cached?location=nowhere", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("cached snapshot is served", func(t *testing.T) {
		deps.Store.SaveSnapshot("Ottawa", store.Snapshot{
			Alerts:     []alert.Alert{{ID: "c1", Title: "Cached Flood"}},
			Message:    "Found 1 active alert in the last 24 hours.",
			LastCached: time.Now(),
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/cached?location=ottawa", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var snapshot store.Snapshot
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
		require.Len(t, snapshot.Alerts, 1)
		assert.Equal(t, "c1", snapshot.Alerts[0].ID)
	})
}

func TestAlertsActions(t *testing.T) {
	app := newTestApp(testDeps(stubResolver{}, stubSource{name: "gdacs"}))

	t.Run("base and personalized cards", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/actions?type=heat&alertId=a1&ageGroup=senior", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var cards []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&cards))
		require.Len(t, cards, 6)
		assert.Equal(t, "heat-1", cards[0]["id"])
		assert.Equal(t, "heat-senior-3", cards[5]["id"])
		assert.Equal(t, "a1", cards[0]["alertId"])
	})

	t.Run("missing type falls back to default cards", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/actions", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var cards []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&cards))
		require.Len(t, cards, 3)
		assert.Equal(t, "default-1", cards[0]["id"])
		assert.Equal(t, "unknown", cards[0]["alertId"])
	})

	t.Run("invalid age group is rejected", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/actions?type=heat&ageGroup=toddler", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/alerts/actions?type=volcano", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestChecklist(t *testing.T) {
	app := newTestApp(testDeps(stubResolver{}, stubSource{name: "gdacs"}))

	t.Run("conditions expand the checklist", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/checklist?conditions=pets,medical-needs", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var items []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
		// 7 base + 4 pet + 3 medical items.
		assert.Len(t, items, 14)
	})

	t.Run("no profile yields the base checklist", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/checklist", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var items []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
		assert.Len(t, items, 7)
	})
}

func TestGuide(t *testing.T) {
	app := newTestApp(testDeps(stubResolver{}, stubSource{name: "gdacs"}))

	t.Run("unconfigured key serves fallback advice", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/guide",
			strings.NewReader(`{"alertType":"flood","severity":"severe","location":"Ottawa"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var advice guide.Advice
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&advice))
		assert.False(t, advice.Generated)
		assert.NotEmpty(t, advice.Explanation)
		assert.NotEmpty(t, advice.Checklist)
	})

	t.Run("missing alert type is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/guide", strings.NewReader(`{"severity":"severe"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid severity is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/guide",
			strings.NewReader(`{"alertType":"flood","severity":"catastrophic"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestSettings(t *testing.T) {
	app := newTestApp(testDeps(stubResolver{}, stubSource{name: "gdacs"}))

	t.Run("defaults", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/settings", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var settings store.Settings
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
		assert.Equal(t, "en", settings.Language)
	})

	t.Run("update round trips", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/settings",
			strings.NewReader(`{"language":"fr","highContrast":true,"profile":{"ageGroup":"senior","isConfigured":true}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var settings store.Settings
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
		assert.Equal(t, "fr", settings.Language)
		assert.True(t, settings.HighContrast)
		assert.Equal(t, "senior", string(settings.Profile.AgeGroup))
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/settings", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
