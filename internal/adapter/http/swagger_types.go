package http

// The types below exist only for the API documentation. They describe the
// wire form of types whose JSON is produced by custom marshalers.

// SwaggerFlight is the wire form of domain.FlightItem.
// @Description A flight; segmented flights list their legs
type SwaggerFlight struct {
	ID                string          `json:"id" example:"LH9742"`
	DepartureDateTime string          `json:"departureDateTime" example:"2025-01-01T08:00:00Z"`
	ArrivalDateTime   string          `json:"arrivalDateTime" example:"2025-01-01T18:00:00Z"`
	Origin            string          `json:"origin" example:"FRA"`
	Destination       string          `json:"destination" example:"MSP"`
	AirlineCode       string          `json:"airlineCode" example:"LH"`
	Price             int             `json:"price" example:"45000"`
	Currency          string          `json:"currency" example:"EUR"`
	FareClass         string          `json:"fareClass" enums:"Economy,Premium economy,Business,First" example:"Economy"`
	FlightType        string          `json:"flightType" enums:"direct,segmented" example:"segmented"`
	ViaFlightItems    []SwaggerFlight `json:"viaFlightItems"`
}

// SwaggerErrorMessage is the wire form of apperror.ErrorMessage.
// @Description Error envelope returned by every failed request
type SwaggerErrorMessage struct {
	Type             string                   `json:"type" enums:"E,W" example:"E"`
	RetryIndicator   bool                     `json:"retryIndicator" example:"false"`
	ProcessingErrors []SwaggerProcessingError `json:"processingErrors"`
}

// SwaggerProcessingError is one entry of SwaggerErrorMessage.
type SwaggerProcessingError struct {
	Code        string `json:"code" example:"40002"`
	Title       string `json:"title" example:"Invalid value length in field"`
	Description string `json:"description,omitempty" example:"origin"`
}
