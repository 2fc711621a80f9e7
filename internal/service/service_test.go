package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// fixedNow is the clock every service test runs at.
var fixedNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	events chan queue.ShowScheduledEvent
}

func (p *recordingPublisher) PublishShowScheduled(_ context.Context, ev queue.ShowScheduledEvent) error {
	p.events <- ev
	return nil
}

func newTestService(t *testing.T) (*Service, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{events: make(chan queue.ShowScheduledEvent, 8)}
	return newServiceWith(t, pub), pub
}

// newServiceWith builds a SQLite-backed service that publishes to pub.
func newServiceWith(t *testing.T, pub EventPublisher) *Service {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, config.DriverSQLite))

	svc := New(repository.NewVenueRepo(db), repository.NewArtistRepo(db), repository.NewShowRepo(db),
		pub, func() time.Time { return fixedNow }, nil)
	t.Cleanup(svc.Wait)
	return svc
}

func venueInput(name, city, state string) VenueInput {
	return VenueInput{Name: name, City: city, State: state, Address: "1015 Folsom Street", Genres: []string{"Jazz"}}
}

func artistInput(name string) ArtistInput {
	return ArtistInput{Name: name, City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"}}
}
