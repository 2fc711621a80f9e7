package service

import (
	"context"

	"github.com/iliyamo/fyyur/internal/model"
)

// Summary is the short form of a venue or artist used by the listing
// and search pages.
type Summary struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	UpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is one (city, state) group on the venue listing.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type areaKey struct{ city, state string }

// GroupByArea groups venues by (city, state).  Every venue lands in
// exactly one group whatever the input order; groups come out in the
// order their first venue appears and keep input order inside.
// upcoming maps venue id to its upcoming show count.
func GroupByArea(venues []model.Venue, upcoming map[uint64]int) []Area {
	index := make(map[areaKey]int)
	areas := []Area{}
	for _, v := range venues {
		k := areaKey{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{ID: v.ID, Name: v.Name, UpcomingShows: upcoming[v.ID]})
	}
	return areas
}

// VenueAreas returns every venue grouped by area with upcoming show
// counts.
func (s *Service) VenueAreas(ctx context.Context) ([]Area, error) {
	venues, err := s.venues.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.venueUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByArea(venues, counts), nil
}

func (s *Service) venueUpcoming(ctx context.Context) (map[uint64]int, error) {
	return s.shows.UpcomingByVenue(ctx, s.Now())
}

func (s *Service) artistUpcoming(ctx context.Context) (map[uint64]int, error) {
	return s.shows.UpcomingByArtist(ctx, s.Now())
}
