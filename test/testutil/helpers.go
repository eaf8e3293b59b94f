// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"testing/fstest"
	"time"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// CatalogFS lays out flight and booking documents the way the catalogue
// reads them. An empty document is left out of the file system.
func CatalogFS(flights, bookings string) fstest.MapFS {
	fsys := fstest.MapFS{}
	if flights != "" {
		fsys["data/flights.json"] = &fstest.MapFile{Data: []byte(flights)}
	}
	if bookings != "" {
		fsys["data/bookings.json"] = &fstest.MapFile{Data: []byte(bookings)}
	}
	return fsys
}
