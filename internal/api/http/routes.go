package httpapi

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/i474232898/city-explorer/internal/explorer"
)

const (
	fallbackMessage    = "Sorry, that route does not exist"
	serverErrorMessage = "Sorry, something went wrong"
)

var validate = validator.New()

// NewApp builds the fiber app with middleware, routes and the catch-all fallback.
func NewApp(service *explorer.Service, log *zap.Logger, accessLog bool) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "city-explorer",
		DisableStartupMessage: true,
		ErrorHandler:          NewErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if accessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New())

	RegisterRoutes(app, service)

	// Anything not matched above, whatever the method.
	app.Use(func(c *fiber.Ctx) error {
		return c.SendString(fallbackMessage)
	})

	return app
}

// NewErrorHandler maps every handler error to the same plain-text 500.
// The error itself is only logged.
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log.Error("request failed",
			zap.String("request_id", requestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.StatusInternalServerError).SendString(serverErrorMessage)
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *explorer.Service) {
	app.Get("/location", func(c *fiber.Ctx) error {
		q := locationQuery{Data: c.Query("data")}
		if err := validate.Struct(q); err != nil {
			return err
		}

		loc, err := service.ResolveLocation(c.UserContext(), q.Data)
		if err != nil {
			return err
		}
		return c.JSON(loc)
	})

	app.Get("/weather", func(c *fiber.Ctx) error {
		lat, lng, err := parseCoordinates(c)
		if err != nil {
			return err
		}

		days, err := service.GetForecast(c.UserContext(), lat, lng)
		if err != nil {
			return err
		}
		return c.JSON(days)
	})

	app.Get("/meetups", func(c *fiber.Ctx) error {
		lat, lng, err := parseCoordinates(c)
		if err != nil {
			return err
		}

		events, err := service.GetEvents(c.UserContext(), lat, lng)
		if err != nil {
			return err
		}
		return c.JSON(events)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if err := service.Ping(c.UserContext()); err != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status":  status,
			"service": "city-explorer",
		})
	})
}

// locationQuery holds the free-form search text.
type locationQuery struct {
	Data string `validate:"required"`
}

// coordinatesQuery holds data[latitude] and data[longitude].
type coordinatesQuery struct {
	Latitude  string `validate:"required,latitude"`
	Longitude string `validate:"required,longitude"`
}

func parseCoordinates(c *fiber.Ctx) (float64, float64, error) {
	q := coordinatesQuery{
		Latitude:  c.Query("data[latitude]"),
		Longitude: c.Query("data[longitude]"),
	}
	if err := validate.Struct(q); err != nil {
		return 0, 0, err
	}

	lat, err := strconv.ParseFloat(q.Latitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(q.Longitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %w", err)
	}
	return lat, lng, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
