package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"task-manager-api.com/task-manager-api/internal/services"
)

type ServerDeps struct {
	TaskService *services.TaskService
	AuthService *services.AuthService
	Options     RouteOptions
}

// NewServer builds the echo instance with logging, recovery, error
// rendering and every route registered.
func NewServer(deps ServerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			slog.Default().LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	Register(
		e,
		NewHandler(deps.TaskService, deps.Options.ZeroBasedPageLinks),
		NewAuthHandler(deps.AuthService),
		deps.AuthService,
		deps.Options,
	)

	return e
}
