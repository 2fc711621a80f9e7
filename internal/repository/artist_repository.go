package repository

// This file holds the artist queries.  They mirror the venue queries
// except that artists have no address and are listed by id.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, website, facebook_link, image_link,
	genres, seeking_venue, seeking_description, created_at, updated_at`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func scanArtist(s rowScanner) (*model.Artist, error) {
	var (
		a       model.Artist
		genres  string
		seeking sql.NullString
	)
	if err := s.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Website, &a.FacebookLink,
		&a.ImageLink, &genres, &a.SeekingVenue, &seeking,
		dbTime{&a.CreatedAt}, dbTime{&a.UpdatedAt}); err != nil {
		return nil, err
	}
	a.Genres = model.DecodeGenres(genres)
	a.SeekingDescription = seeking.String
	return &a, nil
}

func scanArtists(rows *sql.Rows) ([]model.Artist, error) {
	defer rows.Close()
	out := []model.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, Classify(err)
	}
	return out, nil
}

// Create inserts a new artist and populates its ID and timestamps.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, city, state, phone, website, facebook_link, image_link,
	           genres, seeking_venue, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Website, a.FacebookLink,
		a.ImageLink, model.EncodeGenres(a.Genres), a.SeekingVenue, nullable(a.SeekingDescription))
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
	*a = *stored
	return nil
}

// GetByID retrieves an artist by its ID.  It returns ErrArtistNotFound
// if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := scanArtist(r.db.QueryRowContext(ctx, "SELECT "+artistColumns+" FROM artists WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, Classify(err)
	}
	return a, nil
}

// Update overwrites the editable columns of the artist identified by a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
	           SET name = ?, city = ?, state = ?, phone = ?, website = ?, facebook_link = ?,
	               image_link = ?, genres = ?, seeking_venue = ?, seeking_description = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Website, a.FacebookLink,
		a.ImageLink, model.EncodeGenres(a.Genres), a.SeekingVenue, nullable(a.SeekingDescription), a.ID)
	if err != nil {
		return Classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, a.ID); err != nil {
			return err
		}
	}
	stored, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

// ListAll returns all artists ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+artistColumns+" FROM artists ORDER BY id")
	if err != nil {
		return nil, Classify(err)
	}
	return scanArtists(rows)
}

// ListRecent returns the most recently created artists, newest first.
func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+artistColumns+" FROM artists ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, Classify(err)
	}
	return scanArtists(rows)
}

// SearchByName returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+artistColumns+" FROM artists WHERE "+foldExpr(r.db, "name")+" LIKE ? ESCAPE '!' ORDER BY id", likePattern(term))
	if err != nil {
		return nil, 0, Classify(err)
	}
	out, err := scanArtists(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, len(out), nil
}

// Delete removes an artist and every show they are booked for.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) (name string, err error) {
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

	if err = tx.QueryRowContext(ctx, `SELECT name FROM artists WHERE id = ?`, id).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrArtistNotFound
		}
		return "", Classify(err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return "", fmt.Errorf("delete artist shows: %w", Classify(err))
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
		return "", fmt.Errorf("delete artist: %w", Classify(err))
	}
	return name, nil
}
