// Package domain contains the business entities of the flight search service
// and the not-found signals raised when one of them cannot be located.
package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// FlightItem is one flight of the catalogue. Segmented flights list their
// legs in ViaFlightItems.
type FlightItem struct {
	// ID is the flight id (e.g., "LH1234")
	ID string `json:"id"`

	// DepartureDateTime is the departure instant in ISO 8601 (e.g., "2025-01-01T08:00:00Z")
	DepartureDateTime string `json:"departureDateTime"`

	// ArrivalDateTime is the arrival instant in ISO 8601
	ArrivalDateTime string `json:"arrivalDateTime"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// AirlineCode is the IATA airline code
	AirlineCode string `json:"airlineCode"`

	// Price is expressed in cents of Currency
	Price int `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	FareClass  FareClass  `json:"fareClass"`
	FlightType FlightType `json:"flightType"`

	ViaFlightItems []FlightItem `json:"viaFlightItems"`
}

// FareClass is the booking class of a flight.
type FareClass string

const (
	FareClassEconomy        FareClass = "E"
	FareClassPremiumEconomy FareClass = "P"
	FareClassBusiness       FareClass = "B"
	FareClassFirst          FareClass = "F"
)

var fareClassLabels = map[FareClass]string{
	FareClassEconomy:        "Economy",
	FareClassPremiumEconomy: "Premium economy",
	FareClassBusiness:       "Business",
	FareClassFirst:          "First",
}

// Label returns the name used on the wire (e.g., "Premium economy").
func (f FareClass) Label() string {
	return fareClassLabels[f]
}

// MarshalJSON writes the label of the fare class.
func (f FareClass) MarshalJSON() ([]byte, error) {
	label, ok := fareClassLabels[f]
	if !ok {
		return nil, fmt.Errorf("unknown fare class %q", string(f))
	}
	return json.Marshal(label)
}

// UnmarshalJSON accepts the label of a fare class.
func (f *FareClass) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	for class, l := range fareClassLabels {
		if l == label {
			*f = class
			return nil
		}
	}
	return &json.UnmarshalTypeError{Value: "string " + label, Type: reflect.TypeOf(*f)}
}

// FlightType tells direct flights from segmented ones.
type FlightType string

const (
	FlightTypeDirect    FlightType = "direct"
	FlightTypeSegmented FlightType = "segmented"
)

// ParseFlightType converts a request value to a FlightType, ignoring case.
func ParseFlightType(value string) (FlightType, error) {
	switch FlightType(strings.ToLower(value)) {
	case FlightTypeDirect:
		return FlightTypeDirect, nil
	case FlightTypeSegmented:
		return FlightTypeSegmented, nil
	default:
		return "", fmt.Errorf("unknown flight type %q", value)
	}
}

// IsValid reports whether f is a known flight type.
func (f FlightType) IsValid() bool {
	return f == FlightTypeDirect || f == FlightTypeSegmented
}

// UnmarshalJSON accepts "direct" and "segmented" in any case. Other values are
// reported as a type error so the decoder attaches the field path.
func (f *FlightType) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseFlightType(value)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + value, Type: reflect.TypeOf(*f)}
	}
	*f = parsed
	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for query parameters.
func (f *FlightType) UnmarshalParam(param string) error {
	parsed, err := ParseFlightType(param)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
