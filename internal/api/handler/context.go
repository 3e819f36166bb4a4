package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxOwnerID returns the subject injected by the Auth middleware. Bookmark
// sets are keyed by it, so a request without one is rejected before any
// service call.
func ctxOwnerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
