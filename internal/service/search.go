package service

import (
	"context"
	"strings"
)

// SearchResult is the response of a name search.
type SearchResult struct {
	Term  string    `json:"search_term"`
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// SearchVenues returns venues whose name contains term, ignoring case.
// An empty term matches every venue.
func (s *Service) SearchVenues(ctx context.Context, term string) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	venues, total, err := s.venues.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	counts, err := s.venueUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	res := &SearchResult{Term: term, Count: total, Data: make([]Summary, 0, len(venues))}
	for _, v := range venues {
		res.Data = append(res.Data, Summary{ID: v.ID, Name: v.Name, UpcomingShows: counts[v.ID]})
	}
	return res, nil
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Service) SearchArtists(ctx context.Context, term string) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	artists, total, err := s.artists.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	counts, err := s.artistUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	res := &SearchResult{Term: term, Count: total, Data: make([]Summary, 0, len(artists))}
	for _, a := range artists {
		res.Data = append(res.Data, Summary{ID: a.ID, Name: a.Name, UpcomingShows: counts[a.ID]})
	}
	return res, nil
}
