// Package repository contains data access logic separated from HTTP handlers.
// This file holds the venue queries: CRUD, the area listing, name search
// and the cascading delete.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to compare sentinel values
	"fmt"

	"github.com/iliyamo/fyyur/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, website, facebook_link, image_link,
	genres, seeking_talent, seeking_description, created_at, updated_at`

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

func scanVenue(s rowScanner) (*model.Venue, error) {
	var (
		v       model.Venue
		genres  string
		seeking sql.NullString
	)
	if err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Website,
		&v.FacebookLink, &v.ImageLink, &genres, &v.SeekingTalent, &seeking,
		dbTime{&v.CreatedAt}, dbTime{&v.UpdatedAt}); err != nil {
		return nil, err
	}
	v.Genres = model.DecodeGenres(genres)
	v.SeekingDescription = seeking.String
	return &v, nil
}

func scanVenues(rows *sql.Rows) ([]model.Venue, error) {
	defer rows.Close()
	out := []model.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, Classify(err)
	}
	return out, nil
}

// Create inserts a new venue.  On success the venue's ID and timestamp
// fields are populated from the stored row.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, website, facebook_link,
	           image_link, genres, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.Website,
		v.FacebookLink, v.ImageLink, model.EncodeGenres(v.Genres), v.SeekingTalent, nullable(v.SeekingDescription))
	if err != nil {
		return Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*v = *stored
	return nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx, "SELECT "+venueColumns+" FROM venues WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, Classify(err)
	}
	return v, nil
}

// Update overwrites every editable column of the venue identified by
// v.ID.  It returns ErrVenueNotFound when the row does not exist.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, website = ?,
	               facebook_link = ?, image_link = ?, genres = ?, seeking_talent = ?,
	               seeking_description = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.Website,
		v.FacebookLink, v.ImageLink, model.EncodeGenres(v.Genres), v.SeekingTalent,
		nullable(v.SeekingDescription), v.ID)
	if err != nil {
		return Classify(err)
	}
	// MySQL reports 0 affected rows when nothing changed, so confirm
	// the row exists before calling it missing.
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, v.ID); err != nil {
			return err
		}
	}
	stored, err := r.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	*v = *stored
	return nil
}

// ListAll returns every venue ordered by city, state and id, the order
// the area listing is presented in.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+venueColumns+" FROM venues ORDER BY city, state, id")
	if err != nil {
		return nil, Classify(err)
	}
	return scanVenues(rows)
}

// ListRecent returns the most recently created venues, newest first.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+venueColumns+" FROM venues ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, Classify(err)
	}
	return scanVenues(rows)
}

// SearchByName returns the venues whose name contains term, ignoring
// case, ordered by id, together with the total match count.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+venueColumns+" FROM venues WHERE "+foldExpr(r.db, "name")+" LIKE ? ESCAPE '!' ORDER BY id", likePattern(term))
	if err != nil {
		return nil, 0, Classify(err)
	}
	out, err := scanVenues(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, len(out), nil
}

// Delete removes a venue and all of its shows in one transaction and
// returns the deleted venue's name.  ErrVenueNotFound is returned when
// the venue does not exist.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (name string, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", Classify(err)
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

	if err = tx.QueryRowContext(ctx, `SELECT name FROM venues WHERE id = ?`, id).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrVenueNotFound
		}
		return "", Classify(err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return "", fmt.Errorf("delete venue shows: %w", Classify(err))
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return "", fmt.Errorf("delete venue: %w", Classify(err))
	}
	return name, nil
}
