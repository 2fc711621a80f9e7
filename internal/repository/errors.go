// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that a write violated a constraint (a
// duplicate booking or a reference to a missing row) while
// ErrUnavailable means the database could not be reached in time.
package repository

import "errors"

// ErrConflict is returned when a write cannot be performed because of
// conflicting state, such as booking a venue twice at the same start
// time. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrUnavailable is returned when the database connection failed or a
// query timed out. Handlers should translate this into an HTTP 503
// response.
var ErrUnavailable = errors.New("database unavailable")

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// IsNotFound reports whether err means a requested record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound) || errors.Is(err, ErrArtistNotFound)
}
