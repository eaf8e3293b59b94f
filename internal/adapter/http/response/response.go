// Package response provides the HTTP response writers of the API.
// Successful payloads are written as plain JSON documents; failures always
// use the apperror.ErrorMessage envelope. A failed write is returned as an
// *apperror.IOFailureError.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsearch-app/internal/apperror"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return wrapWrite(c.JSON(statusCode, data))
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return JSON(c, http.StatusOK, data)
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return &apperror.IOFailureError{Err: err}
}
