// Package service holds the booking logic that sits between the HTTP
// handlers and the repositories: form validation, the past/upcoming
// show split, area grouping, search summaries and the show booking
// flow.  It depends only on the store interfaces below so it can be
// exercised against SQLite or fakes.
package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
)

// VenueStore is the persistence contract for venues.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	ListAll(ctx context.Context) ([]model.Venue, error)
	ListRecent(ctx context.Context, limit int) ([]model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]model.Venue, int, error)
	Delete(ctx context.Context, id uint64) (string, error)
}

// ArtistStore is the persistence contract for artists.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
	ListAll(ctx context.Context) ([]model.Artist, error)
	ListRecent(ctx context.Context, limit int) ([]model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]model.Artist, int, error)
	Delete(ctx context.Context, id uint64) (string, error)
}

// ShowStore is the persistence contract for shows.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	ListListings(ctx context.Context) ([]model.ShowListing, error)
	ListingsByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error)
	ListingsByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error)
	UpcomingByVenue(ctx context.Context, now time.Time) (map[uint64]int, error)
	UpcomingByArtist(ctx context.Context, now time.Time) (map[uint64]int, error)
	CountBetween(ctx context.Context, from, to time.Time) (int, error)
}

// EventPublisher delivers domain events.  *queue.Publisher and
// queue.Noop implement it.
type EventPublisher interface {
	PublishShowScheduled(ctx context.Context, ev queue.ShowScheduledEvent) error
}

// publishTimeout bounds the background publish after a show is booked.
const publishTimeout = 5 * time.Second

// homeListSize is how many recent venues and artists the home page shows.
const homeListSize = 10

// Service implements the booking operations.  It is safe for
// concurrent use as long as the stores are.
type Service struct {
	venues  VenueStore
	artists ArtistStore
	shows   ShowStore
	events  EventPublisher
	now     func() time.Time
	log     *zap.Logger

	// background tracks event publishes still in flight
	background sync.WaitGroup
}

// New wires a Service.  A nil publisher discards events, a nil clock
// uses time.Now and a nil logger logs nothing.
func New(venues VenueStore, artists ArtistStore, shows ShowStore, events EventPublisher, clock func() time.Time, log *zap.Logger) *Service {
	if events == nil {
		events = queue.Noop{}
	}
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		venues:  venues,
		artists: artists,
		shows:   shows,
		events:  events,
		now:     clock,
		log:     log.Named("service"),
	}
}

// Wait blocks until every background event publish has finished.  Call
// it after the last request is served and before closing the stores.
func (s *Service) Wait() { s.background.Wait() }

// Now returns the service clock in UTC.
func (s *Service) Now() time.Time { return s.now().UTC() }
