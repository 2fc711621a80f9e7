package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/model"
)

func TestShowRepoCreate(t *testing.T) {
	db := openTestDB(t)
	venues, artists, shows := NewVenueRepo(db), NewArtistRepo(db), NewShowRepo(db)
	ctx := context.Background()

	v := mustVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	a := mustArtist(t, artists, "Guns N Petals")

	local := time.FixedZone("PDT", -7*3600)
	s := &model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: time.Date(2035, 4, 1, 13, 0, 0, 500, local)}
	require.NoError(t, shows.Create(ctx, s))
	require.NotZero(t, s.ID)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), s.StartTime)

	t.Run("missing venue", func(t *testing.T) {
		err := shows.Create(ctx, &model.Show{VenueID: 999, ArtistID: a.ID, StartTime: time.Now()})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})
	t.Run("missing artist", func(t *testing.T) {
		err := shows.Create(ctx, &model.Show{VenueID: v.ID, ArtistID: 999, StartTime: time.Now()})
		assert.ErrorIs(t, err, ErrArtistNotFound)
	})
	t.Run("venue double booked", func(t *testing.T) {
		other := mustArtist(t, artists, "The Wild Sax Band")
		err := shows.Create(ctx, &model.Show{VenueID: v.ID, ArtistID: other.ID, StartTime: s.StartTime})
		assert.ErrorIs(t, err, ErrConflict)
	})
	t.Run("artist double booked", func(t *testing.T) {
		other := mustVenue(t, venues, "Park Square", "San Francisco", "CA")
		err := shows.Create(ctx, &model.Show{VenueID: other.ID, ArtistID: a.ID, StartTime: s.StartTime})
		assert.ErrorIs(t, err, ErrConflict)
	})
	t.Run("a second later is fine", func(t *testing.T) {
		mustShow(t, shows, v.ID, a.ID, s.StartTime.Add(time.Second))
	})
}

func TestShowRepoListings(t *testing.T) {
	db := openTestDB(t)
	venues, artists, shows := NewVenueRepo(db), NewArtistRepo(db), NewShowRepo(db)
	ctx := context.Background()

	hop := mustVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	park := mustVenue(t, venues, "Park Square", "San Francisco", "CA")
	guns := mustArtist(t, artists, "Guns N Petals")
	sax := mustArtist(t, artists, "The Wild Sax Band")

	base := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	late := mustShow(t, shows, hop.ID, guns.ID, base.Add(48*time.Hour))
	early := mustShow(t, shows, park.ID, sax.ID, base)
	mid := mustShow(t, shows, hop.ID, sax.ID, base.Add(24*time.Hour))

	all, err := shows.ListListings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint64{early.ID, mid.ID, late.ID}, []uint64{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "Park Square", all[0].VenueName)
	assert.Equal(t, "The Wild Sax Band", all[0].ArtistName)
	assert.Equal(t, base, all[0].StartTime)

	byVenue, err := shows.ListingsByVenue(ctx, hop.ID)
	require.NoError(t, err)
	assert.Len(t, byVenue, 2)

	byArtist, err := shows.ListingsByArtist(ctx, sax.ID)
	require.NoError(t, err)
	require.Len(t, byArtist, 2)
	assert.Equal(t, early.ID, byArtist[0].ID)

	byVenueCount, err := shows.UpcomingByVenue(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int{hop.ID: 2}, byVenueCount, "a show starting exactly now is not upcoming")

	byArtistCount, err := shows.UpcomingByArtist(ctx, base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int{sax.ID: 2, guns.ID: 1}, byArtistCount)

	none, err := shows.UpcomingByArtist(ctx, base.Add(72*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)

	n, err := shows.CountBetween(ctx, base, base.Add(36*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
