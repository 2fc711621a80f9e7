package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/fyyur/internal/model"
)

// Home is the landing page content.
type Home struct {
	RecentVenues  []model.Venue  `json:"recent_venues"`
	RecentArtists []model.Artist `json:"recent_artists"`
	ShowsThisWeek int            `json:"shows_this_week"`
}

// Home returns the newest venues and artists and the number of shows
// starting in the next seven days.
func (s *Service) Home(ctx context.Context) (*Home, error) {
	venues, err := s.venues.ListRecent(ctx, homeListSize)
	if err != nil {
		return nil, err
	}
	artists, err := s.artists.ListRecent(ctx, homeListSize)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	n, err := s.shows.CountBetween(ctx, now, now.Add(7*24*time.Hour))
	if err != nil {
		return nil, err
	}
	return &Home{RecentVenues: venues, RecentArtists: artists, ShowsThisWeek: n}, nil
}

func zapID(id uint64) zap.Field     { return zap.Uint64("id", id) }
func zapName(name string) zap.Field { return zap.String("name", name) }
