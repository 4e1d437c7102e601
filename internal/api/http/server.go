// Package http is the fiber transport shell. Route semantics live in the
// dispatch registry; this package only converts fiber requests into
// transport-neutral ones, writes responses back and serves health probes.
package http

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/observability"
)

// ServerConfig bundles dependencies for server assembly.
type ServerConfig struct {
	App        config.AppConfig
	Dispatcher *dispatch.Dispatcher
	Health     *HealthHandler
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// NewServer builds the fiber app: global middlewares, health probes and the
// catch-all that hands everything under the base path to the dispatcher.
func NewServer(cfg ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})

	RegisterMiddlewares(app, cfg.Logger, cfg.Metrics, cfg.App.RequestTimeout())
	app.Use(cors.New(cors.Config{
		ExposeHeaders: "X-Total-Count, X-Access-Token",
	}))

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	base := strings.TrimSuffix(cfg.App.BasePath, "/")
	app.All(base+"/*", dispatchHandler(base, cfg.Dispatcher))

	return app
}

// dispatchHandler converts the fiber request, runs it through the dispatcher
// and writes the response it returns.
func dispatchHandler(base string, dispatcher *dispatch.Dispatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := &dispatch.Request{
			Method:  c.Method(),
			Path:    strings.TrimPrefix(c.Path(), base),
			Query:   make(map[string]string),
			Headers: make(map[string]string),
			Body:    c.BodyRaw(),
		}
		c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
			req.Query[string(key)] = string(value)
		})
		c.Request().Header.VisitAll(func(key, value []byte) {
			req.Headers[http.CanonicalHeaderKey(string(key))] = string(value)
		})

		resp := dispatcher.Dispatch(c.UserContext(), req)
		for name, value := range resp.Headers {
			c.Set(name, value)
		}
		return c.Status(resp.Status).JSON(resp.Body)
	}
}
