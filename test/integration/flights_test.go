package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flightsearch-app/internal/apperror"
	"github.com/flight-search/flightsearch-app/internal/domain"
)

var fraMspFirstTen = []string{
	"LH9742", "LH7500", "LH3671", "LH5806", "LH2093",
	"LH6447", "LH4157", "FL1001", "FL1002", "FL1003",
}

func TestFindFlights_OrderedAndCapped(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Get("/api/v1/flights?origin=FRA&destination=MSP")

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	assert.Equal(t, fraMspFirstTen, FlightIDs(resp.Flights(t)))
}

func TestFindFlights_Filters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"lower case codes", "origin=fra&destination=msp&flightType=direct",
			[]string{"FL1001", "FL1002", "FL1003", "FL1004", "FL1005"}},
		{"departure date", "origin=FRA&destination=MSP&departureDate=2025-01-02T08:00:00Z",
			[]string{"LH6447"}},
		{"return date", "origin=FRA&destination=MSP&returnDate=2025-01-03T12:00:00Z",
			[]string{"FL1001"}},
		{"segmented", "origin=LAX&destination=JFK&flightType=SEGMENTED",
			[]string{"FL9874"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTestServer(t)

			resp := ts.Get("/api/v1/flights?" + tt.query)

			require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
			assert.Equal(t, tt.expected, FlightIDs(resp.Flights(t)))
		})
	}
}

func TestFindFlights_SegmentsIncluded(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Get("/api/v1/flights?origin=LAX&destination=JFK&departureDate=2025-01-02T09:00:00Z")

	require.Equal(t, http.StatusOK, resp.Code)
	flights := resp.Flights(t)
	require.Len(t, flights, 1)
	assert.Equal(t, domain.FlightTypeSegmented, flights[0].FlightType)
	assert.Equal(t, []string{"FL9874-C1", "FL9874-C2"}, FlightIDs(flights[0].ViaFlightItems))
}

func TestFindFlights_NoMatch(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Get("/api/v1/flights?origin=FRA&destination=JFK")

	require.Equal(t, http.StatusNotFound, resp.Code)
	msg := resp.Envelope(t)
	require.Len(t, msg.ProcessingErrors, 1)
	assert.Equal(t, apperror.DataNotFound.Code, msg.ProcessingErrors[0].Code)
	assert.Equal(t, "Flight for provided parameters was not found", msg.ProcessingErrors[0].Description)
}

func TestFindFlights_InvalidParameters(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		code        apperror.ErrorCode
		description string
	}{
		{"missing origin", "destination=MSP", apperror.ParameterMissingValue, "origin"},
		{"short destination", "origin=FRA&destination=MS", apperror.ParameterInvalidLength, "destination"},
		{"unknown flight type", "origin=FRA&destination=MSP&flightType=charter", apperror.ParameterIncorrectFormat, "flightType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTestServer(t)

			resp := ts.Get("/api/v1/flights?" + tt.query)

			require.Equal(t, http.StatusBadRequest, resp.Code, string(resp.Body))
			msg := resp.Envelope(t)
			assert.Equal(t, apperror.MessageTypeError, msg.Type)
			assert.False(t, msg.RetryIndicator)
			require.Len(t, msg.ProcessingErrors, 1)
			assert.Equal(t, tt.code.Code, msg.ProcessingErrors[0].Code)
			assert.Contains(t, msg.ProcessingErrors[0].Description, tt.description)
		})
	}
}

func TestSearchFlights_Body(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.SearchRequest(`{"origin":"FRA","destination":"MSP","maxResults":3}`)

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	assert.Equal(t, fraMspFirstTen[:3], FlightIDs(resp.Flights(t)))
}

func TestSearchFlights_BodyFailures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		code        apperror.ErrorCode
		description string
	}{
		{"syntax error", `{"origin":"FRA","destination":}`, apperror.ParameterIncorrectFormat, "destination"},
		{"wrong type", `{"origin":"FRA","destination":"MSP","maxResults":"ten"}`, apperror.ParameterIncorrectFormat, "maxResults"},
		{"blank origin", `{"origin":"  ","destination":"MSP"}`, apperror.ParameterMissingValue, "origin"},
		{"too many results", `{"origin":"FRA","destination":"MSP","maxResults":50}`, apperror.ParameterOutOfRange, "maxResults"},
		{"return without departure", `{"origin":"FRA","destination":"MSP","returnDate":"2025-01-03T12:00:00Z"}`,
			apperror.ConditionalValuesIncorrect, "request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTestServer(t)

			resp := ts.SearchRequest(tt.body)

			require.Equal(t, http.StatusBadRequest, resp.Code, string(resp.Body))
			msg := resp.Envelope(t)
			require.NotEmpty(t, msg.ProcessingErrors)
			assert.Equal(t, tt.code.Code, msg.ProcessingErrors[0].Code)
			assert.Contains(t, msg.ProcessingErrors[0].Description, tt.description)
		})
	}
}

func TestSearchFlights_UnsupportedMediaType(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Do(Request{
		Method:      http.MethodPost,
		Path:        "/api/v1/flights/search",
		Body:        "origin=FRA",
		ContentType: "application/x-www-form-urlencoded",
	})

	require.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
	assert.Equal(t, apperror.UnsupportedMediaType.Code, resp.Envelope(t).ProcessingErrors[0].Code)
}
