package domain

// ServiceItem is an ancillary service attached to a booking.
type ServiceItem struct {
	// ID is the service id from the services dictionary (e.g., "OT01")
	ID string `json:"id"`

	// StatusCode is the operational status: HK confirmed, HL waitlist,
	// TK schedule change confirmed, UN unable to confirm not operating,
	// UC unable to confirm, HX cancelled, NO no action taken
	StatusCode string `json:"statusCode"`
}
