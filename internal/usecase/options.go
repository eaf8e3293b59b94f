// Package usecase contains the business logic of the service: booking
// service lookups and flight search over the static catalogue.
package usecase

import "github.com/flight-search/flightsearch-app/internal/domain"

// Config contains configuration options for the flight search.
type Config struct {
	// MaxResults caps every search; requests may only lower it
	MaxResults int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{MaxResults: domain.DefaultMaxResults}
}

// limitFor returns the cap applying to criteria under cfg.
func (cfg Config) limitFor(criteria domain.SearchCriteria) int {
	limit := cfg.MaxResults
	if limit <= 0 {
		limit = domain.DefaultMaxResults
	}
	if criteria.MaxResults > 0 && criteria.MaxResults < limit {
		limit = criteria.MaxResults
	}
	return limit
}
