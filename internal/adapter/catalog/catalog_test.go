package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flightsearch-app/internal/domain"
)

func TestCatalog_EmbeddedFlights(t *testing.T) {
	flights, err := New().Flights()
	require.NoError(t, err)
	require.Len(t, flights, 40)

	first := flights[0]
	assert.Equal(t, "LH9742", first.ID)
	assert.Equal(t, domain.FareClassBusiness, first.FareClass)
	assert.Equal(t, domain.FlightTypeSegmented, first.FlightType)
	require.Len(t, first.ViaFlightItems, 2)
	assert.Equal(t, "LH9742-C1", first.ViaFlightItems[0].ID)
	assert.Equal(t, "LHR", first.ViaFlightItems[0].Destination)
}

func TestCatalog_EmbeddedBookings(t *testing.T) {
	bookings, err := New().Bookings()
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	assert.Equal(t, "ABCDEF", bookings[0].BookingID)
	assert.Equal(t, []domain.ServiceItem{
		{ID: "OT01", StatusCode: "HK"},
		{ID: "OT02", StatusCode: "HL"},
		{ID: "OT03", StatusCode: "HX"},
		{ID: "OT04", StatusCode: "HK"},
	}, bookings[0].Services)
}

func TestCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		flights string
	}{
		{"missing file", ""},
		{"invalid json", `[{"id": }]`},
		{"unknown fare class", `[{"id":"X1","origin":"FRA","destination":"MSP","fareClass":"Cargo","flightType":"direct"}]`},
		{"unknown flight type", `[{"id":"X1","origin":"FRA","destination":"MSP","fareClass":"First","flightType":"charter"}]`},
		{"missing flight type", `[{"id":"X1","origin":"FRA","destination":"MSP","fareClass":"First"}]`},
		{"duplicate id", `[
			{"id":"X1","origin":"FRA","destination":"MSP","fareClass":"First","flightType":"direct"},
			{"id":"X1","origin":"FRA","destination":"MSP","fareClass":"First","flightType":"direct"}
		]`},
		{"invalid segment", `[{"id":"X1","origin":"FRA","destination":"MSP","fareClass":"First","flightType":"segmented",
			"viaFlightItems":[{"id":"X1-C1","origin":"FRA","fareClass":"First","flightType":"direct"}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			if tt.flights != "" {
				fsys[flightsFile] = &fstest.MapFile{Data: []byte(tt.flights)}
			}

			_, err := NewFromFS(fsys).Flights()
			assert.Error(t, err)
		})
	}
}

func TestCatalog_BookingWithoutID(t *testing.T) {
	fsys := fstest.MapFS{bookingsFile: &fstest.MapFile{Data: []byte(`[{"services":[]}]`)}}

	_, err := NewFromFS(fsys).Bookings()
	assert.Error(t, err)
}
