package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/baro-forecast/internal/forecast"
	"github.com/i474232898/baro-forecast/internal/station"
	"github.com/i474232898/baro-forecast/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *station.Service) {
	v1 := app.Group("/api/v1")

	v1.Post("/forecast", func(c *fiber.Ctx) error {
		var req readingRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		reading := req.toReading()
		result, err := service.Compute(reading)
		if err != nil {
			return inputError(err)
		}

		hours, err := parseHours(c, 0)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resp := fiber.Map{
			"reading": reading,
			"result":  result,
		}
		if hours > 0 {
			samples, err := service.ProjectFromReading(reading, hours)
			if err != nil {
				return inputError(err)
			}
			resp["temperatureProjection"] = samples
		}
		return c.JSON(resp)
	})

	v1.Get("/forecast/latest", func(c *fiber.Ctx) error {
		snap, err := service.Latest()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no forecast computed yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch latest forecast")
		}
		return c.JSON(snap)
	})

	v1.Get("/forecast/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshots, err := service.Range(req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no forecast history for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch forecast history")
		}

		return c.JSON(fiber.Map{
			"from":      req.From,
			"to":        req.To,
			"snapshots": snapshots,
		})
	})

	v1.Get("/forecast/temperature", func(c *fiber.Ctx) error {
		hours, err := parseHours(c, 12)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		samples, err := service.ProjectTemperature(hours)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no forecast computed yet")
			}
			return inputError(err)
		}
		return c.JSON(fiber.Map{
			"hours":   hours,
			"samples": samples,
		})
	})
}

// inputError maps engine validation failures onto HTTP statuses: missing
// fields are a malformed request, out-of-range values are unprocessable.
func inputError(err error) error {
	var missing *forecast.MissingInputError
	if errors.As(err, &missing) {
		return fiber.NewError(fiber.StatusBadRequest, missing.Error())
	}
	var outOfRange *forecast.OutOfRangeInputError
	if errors.As(err, &outOfRange) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, outOfRange.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to compute forecast")
}

// readingRequest is the POST body for an ad-hoc forecast. Pointer fields
// distinguish absent values from zeroes so missing input surfaces as such.
type readingRequest struct {
	Timestamp        *time.Time `json:"timestamp" validate:"required"`
	PressureHpa      *float64   `json:"pressureHpa" validate:"required"`
	PressureChange3h *float64   `json:"pressureChange3h" validate:"required"`
	HumidityPct      *float64   `json:"humidityPct" validate:"required"`
	TemperatureC     *float64   `json:"temperatureC" validate:"required"`
	LatitudeDeg      *float64   `json:"latitudeDeg"`
}

func (r readingRequest) toReading() forecast.SensorReading {
	return forecast.SensorReading{
		Timestamp:        *r.Timestamp,
		PressureHpa:      *r.PressureHpa,
		PressureChange3h: *r.PressureChange3h,
		HumidityPct:      *r.HumidityPct,
		TemperatureC:     *r.TemperatureC,
		LatitudeDeg:      r.LatitudeDeg,
	}
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// hoursQuery bounds the projection horizon.
type hoursQuery struct {
	Hours int `validate:"min=1,max=24"`
}

// parseHours reads the `hours` query parameter. def is used when the
// parameter is absent; def 0 means "no projection requested".
func parseHours(c *fiber.Ctx, def int) (int, error) {
	raw := c.Query("hours")
	if raw == "" {
		return def, nil
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("hours must be an integer")
	}
	if err := validate.Struct(hoursQuery{Hours: hours}); err != nil {
		return 0, errors.New("hours must be between 1 and 24")
	}
	return hours, nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
