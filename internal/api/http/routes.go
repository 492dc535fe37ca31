package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Arshya-tech/ClearAlert/internal/actions"
	"github.com/Arshya-tech/ClearAlert/internal/alert"
	"github.com/Arshya-tech/ClearAlert/internal/guide"
	"github.com/Arshya-tech/ClearAlert/internal/profile"
	"github.com/Arshya-tech/ClearAlert/internal/store"
)

var validate = validator.New()

// Deps bundles the dependencies the HTTP handlers need.
type Deps struct {
	Alerts *alert.Service
	Store  *store.MemoryStore
	Guide  *guide.Client
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/alerts/current", func(c *fiber.Ctx) error {
		location := strings.TrimSpace(c.Query("location"))
		if location == "" {
			return c.JSON(fiber.Map{
				"alerts":  []alert.Alert{},
				"message": "No location provided",
			})
		}

		result, err := deps.Alerts.Current(c.Context(), location)
		if err != nil {
			if errors.Is(err, alert.ErrLocationNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"alerts":  []alert.Alert{},
					"message": "Could not find that location. Please try a different search.",
					"error":   "LOCATION_NOT_FOUND",
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch alerts")
		}

		if result.Alerts == nil {
			result.Alerts = []alert.Alert{}
		}
		return c.JSON(result)
	})

	v1.Get("/alerts/cached", func(c *fiber.Ctx) error {
		location := strings.TrimSpace(c.Query("location"))
		if location == "" {
			return fiber.NewError(fiber.StatusBadRequest, "location query parameter is required")
		}

		snapshot, err := deps.Store.GetSnapshot(location)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no cached alerts for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read cached alerts")
		}
		return c.JSON(snapshot)
	})

	v1.Get("/alerts/actions", func(c *fiber.Ctx) error {
		var q actionsQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		alertType := q.Type
		if alertType == "" {
			alertType = "default"
		}

		return c.JSON(actions.ForAlert(alertType, q.AlertID, q.toProfile()))
	})

	v1.Get("/checklist", func(c *fiber.Ctx) error {
		var q actionsQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(actions.Checklist(q.toProfile()))
	})

	v1.Post("/guide", func(c *fiber.Ctx) error {
		var req guideRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		advice := deps.Guide.Generate(c.Context(), guide.Request{
			AlertType: req.AlertType,
			Severity:  req.Severity,
			Location:  req.Location,
			Profile:   req.Profile,
		})
		return c.JSON(advice)
	})

	v1.Get("/settings", func(c *fiber.Ctx) error {
		return c.JSON(deps.Store.GetSettings())
	})

	v1.Post("/settings", func(c *fiber.Ctx) error {
		var update store.Settings
		if err := c.BodyParser(&update); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		return c.JSON(deps.Store.UpdateSettings(update))
	})
}

// actionsQuery holds the query parameters shared by the actions and
// checklist endpoints.
type actionsQuery struct {
	Type          string `validate:"omitempty,oneof=tornado hurricane flood thunderstorm blizzard heat wildfire earthquake winter wind fire coastal other default"`
	AlertID       string
	AgeGroup      string `validate:"omitempty,oneof=student adult senior"`
	HouseholdType string `validate:"omitempty,oneof=single couple small-family large-family"`
	Conditions    []string
}

func (q *actionsQuery) bind(c *fiber.Ctx) error {
	q.Type = c.Query("type")
	q.AlertID = c.Query("alertId")
	q.AgeGroup = c.Query("ageGroup")
	q.HouseholdType = c.Query("householdType")

	if raw := c.Query("conditions"); raw != "" {
		for _, cond := range strings.Split(raw, ",") {
			if cond = strings.TrimSpace(cond); cond != "" {
				q.Conditions = append(q.Conditions, cond)
			}
		}
	}

	return validate.Struct(q)
}

func (q actionsQuery) toProfile() profile.Profile {
	p := profile.Profile{
		AgeGroup:      profile.AgeGroup(q.AgeGroup),
		HouseholdType: profile.HouseholdType(q.HouseholdType),
	}
	for _, cond := range q.Conditions {
		p.SpecialConditions = append(p.SpecialConditions, profile.Condition(cond))
	}
	return p
}

// guideRequest is the POST /guide body.
type guideRequest struct {
	AlertType string          `json:"alertType" validate:"required"`
	Severity  string          `json:"severity" validate:"omitempty,oneof=low moderate severe extreme"`
	Location  string          `json:"location"`
	Profile   profile.Profile `json:"profile"`
}
