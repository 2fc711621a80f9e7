package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/model"
)

func TestGroupByAreaIgnoresInputOrder(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, Name: "A", City: "Austin", State: "TX"},
		{ID: 3, Name: "C", City: "Dallas", State: "TX"},
		{ID: 2, Name: "B", City: "Austin", State: "TX"},
	}
	areas := GroupByArea(venues, map[uint64]int{2: 3})
	require.Len(t, areas, 2)

	assert.Equal(t, "Austin", areas[0].City)
	assert.Equal(t, []Summary{{ID: 1, Name: "A"}, {ID: 2, Name: "B", UpcomingShows: 3}}, areas[0].Venues)
	assert.Equal(t, "Dallas", areas[1].City)
	assert.Len(t, areas[1].Venues, 1)
}

func TestGroupByAreaSameCityDifferentState(t *testing.T) {
	areas := GroupByArea([]model.Venue{
		{ID: 1, City: "Portland", State: "OR"},
		{ID: 2, City: "Portland", State: "ME"},
	}, nil)
	assert.Len(t, areas, 2)
}

func TestGroupByAreaEmpty(t *testing.T) {
	areas := GroupByArea(nil, nil)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestVenueAreas(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	hop, err := svc.CreateVenue(ctx, venueInput("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)
	_, err = svc.CreateVenue(ctx, venueInput("The Dueling Pianos Bar", "New York", "NY"))
	require.NoError(t, err)
	_, err = svc.CreateVenue(ctx, venueInput("Park Square", "San Francisco", "CA"))
	require.NoError(t, err)
	a, err := svc.CreateArtist(ctx, artistInput("Guns N Petals"))
	require.NoError(t, err)
	_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: hop.ID, StartTime: "2035-04-01T20:00"})
	require.NoError(t, err)
	_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: hop.ID, StartTime: "2019-04-01T20:00"})
	require.NoError(t, err)

	areas, err := svc.VenueAreas(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "San Francisco", areas[1].City)
	require.Len(t, areas[1].Venues, 2)
	assert.Equal(t, hop.ID, areas[1].Venues[0].ID)
	assert.Equal(t, 1, areas[1].Venues[0].UpcomingShows)
	assert.Zero(t, areas[1].Venues[1].UpcomingShows)
}
