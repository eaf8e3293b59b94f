package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFareClass_JSON(t *testing.T) {
	tests := []struct {
		class FareClass
		label string
	}{
		{FareClassEconomy, "Economy"},
		{FareClassPremiumEconomy, "Premium economy"},
		{FareClassBusiness, "Business"},
		{FareClassFirst, "First"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			data, err := json.Marshal(tt.class)
			require.NoError(t, err)
			assert.Equal(t, `"`+tt.label+`"`, string(data))

			var decoded FareClass
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.class, decoded)
			assert.Equal(t, tt.label, tt.class.Label())
		})
	}
}

func TestFareClass_UnknownValues(t *testing.T) {
	_, err := json.Marshal(FareClass("X"))
	assert.Error(t, err)

	var decoded FareClass
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, json.Unmarshal([]byte(`"Cargo"`), &decoded), &typeErr)
}

func TestParseFlightType(t *testing.T) {
	tests := []struct {
		value    string
		expected FlightType
		wantErr  bool
	}{
		{"direct", FlightTypeDirect, false},
		{"DIRECT", FlightTypeDirect, false},
		{"Segmented", FlightTypeSegmented, false},
		{"charter", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseFlightType(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestFlightType_UnmarshalJSON(t *testing.T) {
	var body struct {
		FlightType FlightType `json:"flightType"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"flightType":"SEGMENTED"}`), &body))
	assert.Equal(t, FlightTypeSegmented, body.FlightType)

	err := json.Unmarshal([]byte(`{"flightType":"charter"}`), &body)
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "flightType", typeErr.Field)
}

func TestFlightType_UnmarshalParam(t *testing.T) {
	var ft FlightType
	require.NoError(t, ft.UnmarshalParam("Direct"))
	assert.Equal(t, FlightTypeDirect, ft)

	assert.Error(t, ft.UnmarshalParam("charter"))
	assert.Equal(t, FlightTypeDirect, ft, "failed parse leaves the value untouched")
}

func TestFlightItem_JSONShape(t *testing.T) {
	item := FlightItem{
		ID:                "LH9742",
		DepartureDateTime: "2025-01-01T08:00:00Z",
		ArrivalDateTime:   "2025-01-01T18:00:00Z",
		Origin:            "FRA",
		Destination:       "MSP",
		AirlineCode:       "SQ",
		Price:             24573,
		Currency:          "USD",
		FareClass:         FareClassBusiness,
		FlightType:        FlightTypeSegmented,
		ViaFlightItems:    []FlightItem{},
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "LH9742",
		"departureDateTime": "2025-01-01T08:00:00Z",
		"arrivalDateTime": "2025-01-01T18:00:00Z",
		"origin": "FRA",
		"destination": "MSP",
		"airlineCode": "SQ",
		"price": 24573,
		"currency": "USD",
		"fareClass": "Business",
		"flightType": "segmented",
		"viaFlightItems": []
	}`, string(data))
}
