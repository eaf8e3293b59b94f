package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsearch-app/internal/apperror/classifier"
)

// Problem writes the envelope of a resolution with its status and headers.
// Suppressed resolutions write nothing; HEAD requests get the status only.
func Problem(c echo.Context, res classifier.Resolution) error {
	if res.Suppressed() {
		return nil
	}
	for k, v := range res.Headers {
		c.Response().Header().Set(k, v)
	}
	if c.Request().Method == http.MethodHead {
		return wrapWrite(c.NoContent(res.Status))
	}
	return JSON(c, res.Status, res.Message)
}
