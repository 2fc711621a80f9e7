package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/model"
)

// openTestDB returns a migrated SQLite database in a temp directory.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "fyyur.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, config.DriverSQLite))
	return db
}

func mustVenue(t *testing.T, r *VenueRepo, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{Name: name, City: city, State: state, Genres: []string{"Jazz"}}
	require.NoError(t, r.Create(context.Background(), v))
	return v
}

func mustArtist(t *testing.T, r *ArtistRepo, name string) *model.Artist {
	t.Helper()
	a := &model.Artist{Name: name, City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"}}
	require.NoError(t, r.Create(context.Background(), a))
	return a
}

func mustShow(t *testing.T, r *ShowRepo, venueID, artistID uint64, start time.Time) *model.Show {
	t.Helper()
	s := &model.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}
	require.NoError(t, r.Create(context.Background(), s))
	return s
}
