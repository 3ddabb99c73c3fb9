package http

import (
	"github.com/labstack/echo/v4"

	"task-manager-api.com/task-manager-api/internal/auth"
	middleware "task-manager-api.com/task-manager-api/internal/http/middlewares"
	model "task-manager-api.com/task-manager-api/internal/models"
)

// RequestContext is handed to every handler. User and Claims are nil on
// routes that allow anonymous access.
type RequestContext struct {
	echo.Context
	User   *model.User
	Claims *auth.Claims
}

type HandlerFunc func(rc *RequestContext) error

func withContext(fn HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := &RequestContext{Context: c}
		rc.User, rc.Claims = middleware.Identity(c)
		return fn(rc)
	}
}

// BaseURL is the request URL without its query string.
func (rc *RequestContext) BaseURL() string {
	req := rc.Request()
	return rc.Scheme() + "://" + req.Host + req.URL.Path
}
