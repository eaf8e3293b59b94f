package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsearch-app/internal/domain"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return OK(c, &HealthResponse{Status: "ok"})
}

// InfoResponse describes the running build.
type InfoResponse struct {
	Name     string      `json:"name" example:"flightsearch-app"`
	Version  VersionInfo `json:"version"`
	CommitID string      `json:"commitId" example:"3f2a9c1"`
}

// VersionInfo carries the service version.
type VersionInfo struct {
	Service string `json:"service" example:"0.0.1"`
}

// Info writes the build description.
func Info(c echo.Context, info InfoResponse) error {
	return OK(c, info)
}

// Flights writes the flights found by a search.
func Flights(c echo.Context, flights []domain.FlightItem) error {
	return OK(c, flights)
}

// Services writes the services of a booking.
func Services(c echo.Context, services []domain.ServiceItem) error {
	return OK(c, services)
}

// Service writes a single booking service.
func Service(c echo.Context, service domain.ServiceItem) error {
	return JSON(c, http.StatusOK, service)
}
