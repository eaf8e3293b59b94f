package domain

// DefaultMaxResults caps a search when nothing else is configured.
const DefaultMaxResults = 10

// SearchCriteria defines the parameters of a flight search.
// Empty optional fields do not filter.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport, matched ignoring case
	Origin string

	// Destination is the IATA code of the arrival airport, matched ignoring case
	Destination string

	// DepartureDate must equal the flight departureDateTime, ignoring case
	DepartureDate string

	// ReturnDate must equal the flight arrivalDateTime, ignoring case
	ReturnDate string

	// FlightType restricts results to direct or segmented flights
	FlightType FlightType

	// MaxResults caps the number of flights returned; zero means the service default
	MaxResults int
}
