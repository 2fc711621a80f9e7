package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// startLayouts are the accepted start_time formats, all read as UTC
// unless they carry an offset.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ShowInput is the show form.
type ShowInput struct {
	ArtistID  uint64 `form:"artist_id" json:"artist_id" validate:"required"`
	VenueID   uint64 `form:"venue_id" json:"venue_id" validate:"required"`
	StartTime string `form:"start_time" json:"start_time" validate:"required"`
}

// ParseStartTime reads a show start time in any accepted layout and
// returns it in UTC truncated to the second.
func ParseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, errors.New("unrecognised time")
}

// CreateShow books artist in.ArtistID at venue in.VenueID.  An unknown
// venue or artist is a validation error; an exact start time clash for
// either party is repository.ErrConflict.  On success a
// ShowScheduledEvent is published in the background.
func (s *Service) CreateShow(ctx context.Context, in ShowInput) (*model.Show, error) {
	in.StartTime = strings.TrimSpace(in.StartTime)
	if err := check(in); err != nil {
		return nil, err
	}
	start, err := ParseStartTime(in.StartTime)
	if err != nil {
		return nil, fieldError("start_time", "must be a date and time such as 2035-04-01 20:00:00")
	}

	show := &model.Show{VenueID: in.VenueID, ArtistID: in.ArtistID, StartTime: start}
	switch err := s.shows.Create(ctx, show); {
	case errors.Is(err, repository.ErrVenueNotFound):
		return nil, fieldError("venue_id", "does not match any venue")
	case errors.Is(err, repository.ErrArtistNotFound):
		return nil, fieldError("artist_id", "does not match any artist")
	case err != nil:
		return nil, err
	}
	s.log.Info("show scheduled", zapID(show.ID),
		zap.Uint64("venue_id", show.VenueID), zap.Uint64("artist_id", show.ArtistID),
		zap.Time("start_time", show.StartTime))

	s.background.Add(1)
	go func(show model.Show) {
		defer s.background.Done()
		s.announce(show)
	}(*show)
	return show, nil
}

// announce publishes the scheduled event.  Failures are logged only;
// the booking already succeeded.
func (s *Service) announce(show model.Show) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	ev := queue.ShowScheduledEvent{
		ShowID:      show.ID,
		VenueID:     show.VenueID,
		ArtistID:    show.ArtistID,
		StartTime:   show.StartTime.Format(time.RFC3339),
		ScheduledAt: s.Now().Format(time.RFC3339),
	}
	if v, err := s.venues.GetByID(ctx, show.VenueID); err == nil {
		ev.VenueName = v.Name
	}
	if a, err := s.artists.GetByID(ctx, show.ArtistID); err == nil {
		ev.ArtistName = a.Name
	}
	if err := s.events.PublishShowScheduled(ctx, ev); err != nil {
		s.log.Warn("publish show.scheduled failed", zapID(show.ID), zap.Error(err))
	}
}

// ListShows returns every show ordered by start time.
func (s *Service) ListShows(ctx context.Context) ([]model.ShowListing, error) {
	return s.shows.ListListings(ctx)
}
