// Package repository contains data access logic for Show domain operations. This file defines
// the show queries.  Shows are created once and never edited; they are
// removed only through the venue or artist cascade.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

const listingSelect = `SELECT s.id, s.venue_id, s.artist_id, s.start_time, s.created_at,
	       v.name, v.image_link, a.name, a.image_link
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create schedules a show.  Inside one transaction it checks that the
// venue and artist exist (ErrVenueNotFound / ErrArtistNotFound) and
// that neither is already booked at exactly the same start time
// (ErrConflict), then inserts the row.  StartTime is stored in UTC with
// second precision and written back onto s.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) (err error) {
	start := formatDBTime(s.StartTime)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Classify(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = Classify(cerr)
		}
	}()

	if err = exists(ctx, tx, `SELECT 1 FROM venues WHERE id = ?`, s.VenueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return Classify(err)
	}
	if err = exists(ctx, tx, `SELECT 1 FROM artists WHERE id = ?`, s.ArtistID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return Classify(err)
	}

	// Exact start time collisions for either party.  The unique keys on
	// (venue_id, start_time) and (artist_id, start_time) catch races.
	var clashes int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shows WHERE start_time = ? AND (venue_id = ? OR artist_id = ?)`,
		start, s.VenueID, s.ArtistID).Scan(&clashes); err != nil {
		return Classify(err)
	}
	if clashes > 0 {
		return fmt.Errorf("%w: venue or artist already booked at %s", ErrConflict, start)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		s.VenueID, s.ArtistID, start)
	if err != nil {
		return Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return tx.QueryRowContext(ctx, `SELECT start_time, created_at FROM shows WHERE id = ?`, s.ID).
		Scan(dbTime{&s.StartTime}, dbTime{&s.CreatedAt})
}

func exists(ctx context.Context, tx *sql.Tx, q string, id uint64) error {
	var one int
	return tx.QueryRowContext(ctx, q, id).Scan(&one)
}

func scanListings(rows *sql.Rows) ([]model.ShowListing, error) {
	defer rows.Close()
	out := []model.ShowListing{}
	for rows.Next() {
		var l model.ShowListing
		if err := rows.Scan(&l.ID, &l.VenueID, &l.ArtistID, dbTime{&l.StartTime}, dbTime{&l.CreatedAt},
			&l.VenueName, &l.VenueImageLink, &l.ArtistName, &l.ArtistImageLink); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, Classify(err)
	}
	return out, nil
}

// ListListings returns every show with venue and artist display fields,
// ordered by start time.
func (r *ShowRepo) ListListings(ctx context.Context) ([]model.ShowListing, error) {
	rows, err := r.db.QueryContext(ctx, listingSelect+` ORDER BY s.start_time ASC, s.id ASC`)
	if err != nil {
		return nil, Classify(err)
	}
	return scanListings(rows)
}

// ListingsByVenue returns the shows held at one venue.
func (r *ShowRepo) ListingsByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	rows, err := r.db.QueryContext(ctx, listingSelect+` WHERE s.venue_id = ? ORDER BY s.start_time ASC, s.id ASC`, venueID)
	if err != nil {
		return nil, Classify(err)
	}
	return scanListings(rows)
}

// ListingsByArtist returns the shows one artist is booked for.
func (r *ShowRepo) ListingsByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	rows, err := r.db.QueryContext(ctx, listingSelect+` WHERE s.artist_id = ? ORDER BY s.start_time ASC, s.id ASC`, artistID)
	if err != nil {
		return nil, Classify(err)
	}
	return scanListings(rows)
}

// UpcomingByVenue counts the shows starting after now per venue.
// Venues with no upcoming show are absent from the map.
func (r *ShowRepo) UpcomingByVenue(ctx context.Context, now time.Time) (map[uint64]int, error) {
	return r.countAfter(ctx, "venue_id", now)
}

// UpcomingByArtist counts the shows starting after now per artist.
func (r *ShowRepo) UpcomingByArtist(ctx context.Context, now time.Time) (map[uint64]int, error) {
	return r.countAfter(ctx, "artist_id", now)
}

// countAfter is only called with the fixed column names above.
func (r *ShowRepo) countAfter(ctx context.Context, column string, now time.Time) (map[uint64]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+column+`, COUNT(*) FROM shows WHERE start_time > ? GROUP BY `+column, formatDBTime(now))
	if err != nil {
		return nil, Classify(err)
	}
	defer rows.Close()
	counts := make(map[uint64]int)
	for rows.Next() {
		var (
			id uint64
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, Classify(err)
	}
	return counts, nil
}

// CountBetween returns how many shows start in [from, to).  The home
// page uses it for the "this week" figure.
func (r *ShowRepo) CountBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shows WHERE start_time >= ? AND start_time < ?`,
		formatDBTime(from), formatDBTime(to)).Scan(&n)
	if err != nil {
		return 0, Classify(err)
	}
	return n, nil
}
