package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"
	viewPath    = apiV1Prefix + "/view"

	indexPath   = "/"
	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
	RPCPath     = "/rpc/"
)

// RegisterRoutes registers all routes for the handler. A non-nil rpc handler
// is mounted on RPCPath.
func (h *PostsHandler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newTemplateRenderer()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(h.requestLogger())

	e.GET(indexPath, h.Index)
	e.GET(viewPath, h.View)

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)
	e.GET(metricsPath, echo.WrapHandler(h.metrics.Handler()))

	if rpc != nil {
		e.Any(RPCPath, echo.WrapHandler(rpc))
	}

	return e
}

func (h *PostsHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PostsHandler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger document is not available")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}

func (h *PostsHandler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			h.log.LogAttrs(context.Background(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
				slog.String("request_id", v.RequestID),
				slog.Any("error", v.Error),
			)
			return nil
		},
	})
}
