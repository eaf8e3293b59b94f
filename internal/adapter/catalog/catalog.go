// Package catalog loads the static flight and booking data the service runs on.
// The data ships inside the binary as JSON documents.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/flight-search/flightsearch-app/internal/domain"
)

//go:embed data/*.json
var embedded embed.FS

const (
	flightsFile  = "data/flights.json"
	bookingsFile = "data/bookings.json"
)

// Booking is a booking record with its services.
type Booking struct {
	BookingID string               `json:"bookingId"`
	Services  []domain.ServiceItem `json:"services"`
}

// Catalog reads the documents from a file system.
type Catalog struct {
	fsys fs.FS
}

// New returns a catalog over the embedded documents.
func New() *Catalog {
	return &Catalog{fsys: embedded}
}

// NewFromFS returns a catalog reading data/flights.json and data/bookings.json from fsys.
func NewFromFS(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

// Flights loads every flight of the catalogue. Ids must be unique.
func (c *Catalog) Flights() ([]domain.FlightItem, error) {
	var flights []domain.FlightItem
	if err := c.decode(flightsFile, &flights); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(flights))
	for i, f := range flights {
		if err := validateFlight(f); err != nil {
			return nil, fmt.Errorf("flight #%d: %w", i, err)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("duplicate flight id %q", f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return flights, nil
}

// Bookings loads every booking of the catalogue.
func (c *Catalog) Bookings() ([]Booking, error) {
	var bookings []Booking
	if err := c.decode(bookingsFile, &bookings); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.BookingID == "" {
			return nil, fmt.Errorf("booking without id in %s", bookingsFile)
		}
	}
	return bookings, nil
}

func (c *Catalog) decode(name string, v interface{}) error {
	data, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// validateFlight checks the fields the search relies on.
func validateFlight(f domain.FlightItem) error {
	if f.ID == "" || f.Origin == "" || f.Destination == "" {
		return fmt.Errorf("flight %q is missing id, origin or destination", f.ID)
	}
	if !f.FlightType.IsValid() {
		return fmt.Errorf("flight %q has unknown type %q", f.ID, f.FlightType)
	}
	for _, via := range f.ViaFlightItems {
		if err := validateFlight(via); err != nil {
			return fmt.Errorf("segment of %q: %w", f.ID, err)
		}
	}
	return nil
}
