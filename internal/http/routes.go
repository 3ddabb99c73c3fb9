package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-manager-api.com/task-manager-api/internal/http/middlewares"
)

type RouteOptions struct {
	RateLimitPerMinute int
	// RequireAuthForReads false makes listing and showing tasks public.
	RequireAuthForReads bool
	ZeroBasedPageLinks  bool
}

func Register(e *echo.Echo, h *Handler, ah *AuthHandler, authn middleware.Authenticator, opts RouteOptions) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api", middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute))

	requireAuth := middleware.RequireAuth(authn)
	readAuth := requireAuth
	if !opts.RequireAuthForReads {
		readAuth = middleware.OptionalAuth(authn)
	}

	api.POST("/register", withContext(ah.Register))
	api.POST("/login", withContext(ah.Login))
	api.POST("/logout", withContext(ah.Logout), requireAuth)

	tasks := api.Group("/tasks")
	tasks.GET("", withContext(h.ListTasks), readAuth)
	tasks.POST("", withContext(h.CreateTask), requireAuth)
	tasks.GET("/:id", withContext(h.GetTask), readAuth)
	tasks.PUT("/:id", withContext(h.UpdateTask), requireAuth)
	tasks.PATCH("/:id", withContext(h.UpdateTask), requireAuth)
	tasks.DELETE("/:id", withContext(h.DeleteTask), requireAuth)
}
