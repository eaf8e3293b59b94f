package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/flightsearch-app/internal/adapter/http/middleware"
	"github.com/flight-search/flightsearch-app/internal/apperror"
	"github.com/flight-search/flightsearch-app/internal/domain"
	"github.com/flight-search/flightsearch-app/internal/usecase"
)

type testServer struct {
	e        *echo.Echo
	flights  *usecase.MockFlightSearchUseCase
	bookings *usecase.MockBookingService
	logs     *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	v, err := NewValidator()
	require.NoError(t, err)

	s := &testServer{
		e:        echo.New(),
		flights:  usecase.NewMockFlightSearchUseCase(ctrl),
		bookings: usecase.NewMockBookingService(ctrl),
		logs:     &bytes.Buffer{},
	}
	Configure(s.e, NewErrorHandler(zerolog.New(s.logs), nil))
	s.e.Use(middleware.Recover())
	RegisterRoutes(s.e, Handlers{
		Flights:  NewFlightHandler(s.flights, v),
		Bookings: NewBookingHandler(s.bookings, v),
		Info:     NewInfoHandler("flightsearch-app", "1.2.3", "abc123"),
	})
	return s
}

func (s *testServer) do(method, target, body, contentType string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	var req *http.Request
	if reader != nil {
		req = httptest.NewRequest(method, target, reader)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(target string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, target, "", "")
}

func (s *testServer) postJSON(target, body string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, body, echo.MIMEApplicationJSON)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apperror.ErrorMessage {
	t.Helper()
	var msg apperror.ErrorMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg
}

// assertSingleError checks status and the only processing error of the envelope.
func assertSingleError(t *testing.T, rec *httptest.ResponseRecorder, status int, code apperror.ErrorCode, description string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	msg := decodeEnvelope(t, rec)
	require.Len(t, msg.ProcessingErrors, 1, rec.Body.String())
	assert.Equal(t, apperror.NewProcessingError(code, description), msg.ProcessingErrors[0])
}

func testFlight(id string) domain.FlightItem {
	return domain.FlightItem{
		ID:                id,
		DepartureDateTime: "2025-01-01T08:00:00Z",
		ArrivalDateTime:   "2025-01-01T18:00:00Z",
		Origin:            "FRA",
		Destination:       "MSP",
		AirlineCode:       "LH",
		Price:             45000,
		Currency:          "EUR",
		FareClass:         domain.FareClassEconomy,
		FlightType:        domain.FlightTypeDirect,
	}
}

// =====================================================
// GET /api/v1/flights
// =====================================================

func TestSearchFlights_Success(t *testing.T) {
	s := newTestServer(t)
	s.flights.EXPECT().
		Search(gomock.Any(), domain.SearchCriteria{Origin: "FRA", Destination: "MSP", FlightType: domain.FlightTypeDirect}).
		Return([]domain.FlightItem{testFlight("FL1001")}, nil)

	rec := s.get("/api/v1/flights?origin=fra&destination=msp&flightType=DIRECT")

	assert.Equal(t, http.StatusOK, rec.Code)
	var flights []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	require.Len(t, flights, 1)
	assert.Equal(t, "FL1001", flights[0]["id"])
	assert.Equal(t, "Economy", flights[0]["fareClass"])
	assert.Equal(t, "direct", flights[0]["flightType"])
}

func TestSearchFlights_ParameterFailures(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		code        apperror.ErrorCode
		description string
	}{
		{"missing origin", "destination=MSP", apperror.ParameterMissingValue, "origin"},
		{"missing destination", "origin=FRA", apperror.ParameterMissingValue, "destination"},
		{"short origin", "origin=FR&destination=MSP", apperror.ParameterInvalidLength, "origin"},
		{"empty destination", "origin=FRA&destination=", apperror.ParameterInvalidLength, "destination"},
		{"unknown flight type", "origin=FRA&destination=MSP&flightType=charter", apperror.ParameterIncorrectFormat, "flightType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.get("/api/v1/flights?" + tt.query)

			assertSingleError(t, rec, http.StatusBadRequest, tt.code, tt.description)
		})
	}
}

func TestSearchFlights_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.flights.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, &domain.FlightsNotFoundError{})

	rec := s.get("/api/v1/flights?origin=FRA&destination=XXX")

	assertSingleError(t, rec, http.StatusNotFound, apperror.DataNotFound, "Flight for provided parameters was not found")
}

// =====================================================
// POST /api/v1/flights/search
// =====================================================

func TestSearchFlightsBody_Success(t *testing.T) {
	s := newTestServer(t)
	s.flights.EXPECT().
		Search(gomock.Any(), domain.SearchCriteria{
			Origin:        "FRA",
			Destination:   "MSP",
			DepartureDate: "2025-01-01T08:00:00Z",
			FlightType:    domain.FlightTypeSegmented,
			MaxResults:    2,
		}).
		Return([]domain.FlightItem{testFlight("LH9742"), testFlight("LH7500")}, nil)

	rec := s.postJSON("/api/v1/flights/search",
		`{"origin":"fra","destination":"MSP","departureDate":"2025-01-01T08:00:00Z","flightType":"segmented","maxResults":2}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var flights []domain.FlightItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	assert.Len(t, flights, 2)
}

func TestSearchFlightsBody_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		code        apperror.ErrorCode
		description string
	}{
		{"syntax error in value", `{"origin": FRA}`, apperror.ParameterIncorrectFormat, "origin"},
		{"truncated body", `{"origin":"FRA","destination":"MS`, apperror.ParameterIncorrectFormat, "destination"},
		{"wrong flight type", `{"origin":"FRA","destination":"MSP","flightType":"charter"}`, apperror.ParameterIncorrectFormat, "flightType"},
		{"wrong max results type", `{"origin":"FRA","destination":"MSP","maxResults":"ten"}`, apperror.ParameterIncorrectFormat, "maxResults"},
		{"empty body", ``, apperror.ParameterUnspecifiedProblem, ""},
		{"blank origin", `{"origin":"","destination":"MSP"}`, apperror.ParameterMissingValue, "origin"},
		{"long destination", `{"origin":"FRA","destination":"MSPX"}`, apperror.ParameterInvalidLength, "destination"},
		{"zero max results", `{"origin":"FRA","destination":"MSP","maxResults":0}`, apperror.ParameterOutOfRange, "maxResults"},
		{"too many results", `{"origin":"FRA","destination":"MSP","maxResults":11}`, apperror.ParameterOutOfRange, "maxResults"},
		{"return without departure", `{"origin":"FRA","destination":"MSP","returnDate":"2025-01-01T18:00:00Z"}`, apperror.ConditionalValuesIncorrect, "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.postJSON("/api/v1/flights/search", tt.body)

			assertSingleError(t, rec, http.StatusBadRequest, tt.code, tt.description)
		})
	}
}

func TestSearchFlightsBody_SeveralFieldErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.postJSON("/api/v1/flights/search", `{"origin":"FR","destination":"MS"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	msg := decodeEnvelope(t, rec)
	assert.Equal(t, []apperror.ProcessingError{
		apperror.NewProcessingError(apperror.ParameterInvalidLength, "origin"),
		apperror.NewProcessingError(apperror.ParameterInvalidLength, "destination"),
	}, msg.ProcessingErrors)
}

func TestSearchFlightsBody_UnsupportedMediaType(t *testing.T) {
	for _, contentType := range []string{"", echo.MIMETextPlain} {
		t.Run(fmt.Sprintf("content type %q", contentType), func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(http.MethodPost, "/api/v1/flights/search", `{"origin":"FRA"}`, contentType)

			assertSingleError(t, rec, http.StatusUnsupportedMediaType, apperror.UnsupportedMediaType, "Supported media types: application/json")
		})
	}
}

// =====================================================
// Bookings
// =====================================================

func TestListServices_Success(t *testing.T) {
	s := newTestServer(t)
	s.bookings.EXPECT().ListServices(gomock.Any(), "abcdef").Return([]domain.ServiceItem{
		{ID: "OT01", StatusCode: "HK"},
		{ID: "OT02", StatusCode: "HL"},
	}, nil)

	rec := s.get("/api/v1/bookings/abcdef/services")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"OT01","statusCode":"HK"},{"id":"OT02","statusCode":"HL"}]`, rec.Body.String())
}

func TestListServices_InvalidBookingID(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/api/v1/bookings/ABC-EF/services")

	assertSingleError(t, rec, http.StatusBadRequest, apperror.ParameterIncorrectFormat, "bookingId")
}

func TestListServices_BookingNotFound(t *testing.T) {
	s := newTestServer(t)
	s.bookings.EXPECT().ListServices(gomock.Any(), "ABCDEG").Return(nil, &domain.BookingNotFoundError{BookingID: "ABCDEG"})

	rec := s.get("/api/v1/bookings/ABCDEG/services")

	assertSingleError(t, rec, http.StatusNotFound, apperror.DataNotFound, "Booking for provided ABCDEG was not found")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(s.logs.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "40400", entry["errorId"])
}

func TestGetService_Success(t *testing.T) {
	s := newTestServer(t)
	s.bookings.EXPECT().GetService(gomock.Any(), "abcdef", "OT02").Return(domain.ServiceItem{ID: "OT02", StatusCode: "HL"}, nil)

	rec := s.get("/api/v1/bookings/abcdef/services/OT02")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"OT02","statusCode":"HL"}`, rec.Body.String())
}

func TestGetService_Failures(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/api/v1/bookings/ABCDEF/services/OT")
	assertSingleError(t, rec, http.StatusBadRequest, apperror.ParameterInvalidLength, "serviceId")

	rec = s.get("/api/v1/bookings/ABCDE/services/OT")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []apperror.ProcessingError{
		apperror.NewProcessingError(apperror.ParameterIncorrectFormat, "bookingId"),
		apperror.NewProcessingError(apperror.ParameterInvalidLength, "serviceId"),
	}, decodeEnvelope(t, rec).ProcessingErrors)
}

func TestGetService_WrappedNotFound(t *testing.T) {
	s := newTestServer(t)
	missing := &domain.ServiceNotFoundError{BookingID: "ABCDEF", ServiceID: "OT09"}
	s.bookings.EXPECT().GetService(gomock.Any(), "ABCDEF", "OT09").
		Return(domain.ServiceItem{}, fmt.Errorf("lookup: %w", missing))

	rec := s.get("/api/v1/bookings/ABCDEF/services/OT09")

	assertSingleError(t, rec, http.StatusNotFound, apperror.DataNotFound, "Service for provided OT09 was not found in the ABCDEF booking")
}

// =====================================================
// Meta endpoints and catch-all
// =====================================================

func TestInfo(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/info")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"flightsearch-app","version":{"service":"1.2.3"},"commitId":"abc123"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPanicInHandler(t *testing.T) {
	s := newTestServer(t)
	s.flights.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.SearchCriteria) ([]domain.FlightItem, error) {
			panic("catalogue corrupted")
		})

	rec := s.get("/api/v1/flights?origin=FRA&destination=MSP")

	assertSingleError(t, rec, http.StatusInternalServerError, apperror.InternalError, "")
	assert.NotContains(t, rec.Body.String(), "goroutine")
	assert.NotContains(t, rec.Body.String(), "catalogue corrupted")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(s.logs.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "50099", entry["errorId"])
	assert.Equal(t, "Major", entry["severity"])
	assert.Contains(t, entry["stack"], "goroutine")
}

func TestUnhandledError(t *testing.T) {
	s := newTestServer(t)
	s.bookings.EXPECT().ListServices(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	rec := s.get("/api/v1/bookings/ABCDEF/services")

	assertSingleError(t, rec, http.StatusInternalServerError, apperror.InternalError, "")
	assert.False(t, decodeEnvelope(t, rec).RetryIndicator)
}
