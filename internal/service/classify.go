package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// Scheduled is anything with a start time and a stable identity.
// model.Show and model.ShowListing implement it.
type Scheduled interface {
	StartsAt() time.Time
	Key() uint64
}

// Partition splits shows into past (start <= now) and upcoming
// (start > now).  Both slices are sorted by start time, ties broken by
// key, and are never nil.  The input is not modified.
func Partition[S Scheduled](shows []S, now time.Time) (past, upcoming []S) {
	past, upcoming = make([]S, 0, len(shows)), make([]S, 0, len(shows))
	for _, s := range shows {
		if s.StartsAt().After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	slices.SortFunc(past, byStart[S])
	slices.SortFunc(upcoming, byStart[S])
	return past, upcoming
}

func byStart[S Scheduled](a, b S) int {
	if c := a.StartsAt().Compare(b.StartsAt()); c != 0 {
		return c
	}
	return cmp.Compare(a.Key(), b.Key())
}

// ShowQuery selects the shows of exactly one artist or one venue.
type ShowQuery struct {
	ArtistID uint64
	VenueID  uint64
}

// ShowsFor returns the past and upcoming shows of the artist or venue
// named in q, relative to the service clock.  Naming neither or both
// returns ErrInvalidArgument.
func (s *Service) ShowsFor(ctx context.Context, q ShowQuery) (past, upcoming []model.ShowListing, err error) {
	var listings []model.ShowListing
	switch {
	case q.ArtistID != 0 && q.VenueID != 0, q.ArtistID == 0 && q.VenueID == 0:
		return nil, nil, ErrInvalidArgument
	case q.ArtistID != 0:
		listings, err = s.shows.ListingsByArtist(ctx, q.ArtistID)
	default:
		listings, err = s.shows.ListingsByVenue(ctx, q.VenueID)
	}
	if err != nil {
		return nil, nil, err
	}
	past, upcoming = Partition(listings, s.Now())
	return past, upcoming, nil
}
