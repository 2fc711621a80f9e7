package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

func TestCreateVenueDerivesSeekingTalent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := venueInput(" The Musical Hop ", "San Francisco", "ca")
	in.SeekingDescription = "   "
	in.Genres = []string{"Jazz", " Jazz", "", "Reggae"}
	v, err := svc.CreateVenue(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "CA", v.State)
	assert.Equal(t, []string{"Jazz", "Reggae"}, v.Genres)
	assert.False(t, v.SeekingTalent)
	assert.Empty(t, v.SeekingDescription)

	in.SeekingDescription = "Looking for local jazz acts"
	v, err = svc.UpdateVenue(ctx, v.ID, in)
	require.NoError(t, err)
	assert.True(t, v.SeekingTalent)

	stored, err := svc.Venue(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, stored.SeekingTalent)
	assert.Equal(t, "Looking for local jazz acts", stored.SeekingDescription)
}

func TestCreateArtistDerivesSeekingVenue(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := artistInput("Guns N Petals")
	in.SeekingDescription = "Looking for shows in the Bay Area"
	a, err := svc.CreateArtist(ctx, in)
	require.NoError(t, err)
	assert.True(t, a.SeekingVenue)

	in.SeekingDescription = ""
	a, err = svc.UpdateArtist(ctx, a.ID, in)
	require.NoError(t, err)
	assert.False(t, a.SeekingVenue)
}

func TestVenueValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateVenue(ctx, VenueInput{
		State:     "ZZ",
		Website:   "not a url",
		Genres:    []string{"Jazz", "Polka"},
		ImageLink: "https://images.example.com/hop.png",
	})
	ve, ok := AsValidation(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "is required", ve.Fields["name"])
	assert.Equal(t, "is required", ve.Fields["city"])
	assert.Equal(t, "is required", ve.Fields["address"])
	assert.Contains(t, ve.Fields["state"], "state code")
	assert.Contains(t, ve.Fields["website"], "URL")
	assert.Contains(t, ve.Fields["genres"], "Polka")
	assert.NotContains(t, ve.Fields, "image_link")
}

func TestArtistValidation(t *testing.T) {
	svc, _ := newTestService(t)
	in := artistInput("")
	in.FacebookLink = "facebook"
	_, err := svc.CreateArtist(context.Background(), in)
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 2)
	assert.Contains(t, ve.Error(), "facebook_link")
}

func TestUpdateMissingRecords(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateVenue(ctx, 42, venueInput("X", "Austin", "TX"))
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
	_, err = svc.UpdateArtist(ctx, 42, artistInput("X"))
	assert.ErrorIs(t, err, repository.ErrArtistNotFound)
	_, err = svc.VenueDetail(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
	_, err = svc.ArtistDetail(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrArtistNotFound)
}

func TestDeleteVenueRemovesShows(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.CreateVenue(ctx, venueInput("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)
	a, err := svc.CreateArtist(ctx, artistInput("Guns N Petals"))
	require.NoError(t, err)
	_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "2035-04-01T20:00"})
	require.NoError(t, err)

	name, err := svc.DeleteVenue(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", name)

	detail, err := svc.ArtistDetail(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, detail.UpcomingShowsCount)
	assert.Zero(t, detail.PastShowsCount)

	_, err = svc.DeleteVenue(ctx, v.ID)
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
}

func TestDeleteArtistRemovesShows(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.CreateVenue(ctx, venueInput("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)
	a, err := svc.CreateArtist(ctx, artistInput("Guns N Petals"))
	require.NoError(t, err)
	_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "2035-04-01T20:00"})
	require.NoError(t, err)

	_, err = svc.DeleteArtist(ctx, a.ID)
	require.NoError(t, err)

	shows, err := svc.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestCreateShow(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	v, err := svc.CreateVenue(ctx, venueInput("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)
	a, err := svc.CreateArtist(ctx, artistInput("Guns N Petals"))
	require.NoError(t, err)

	s, err := svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "2035-04-01T13:00:00-07:00"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), s.StartTime)

	select {
	case ev := <-pub.events:
		assert.Equal(t, s.ID, ev.ShowID)
		assert.Equal(t, "The Musical Hop", ev.VenueName)
		assert.Equal(t, "Guns N Petals", ev.ArtistName)
		assert.Equal(t, "2035-04-01T20:00:00Z", ev.StartTime)
	case <-time.After(5 * time.Second):
		t.Fatal("no show.scheduled event published")
	}

	t.Run("double booking", func(t *testing.T) {
		_, err := svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "2035-04-01 20:00:00"})
		assert.ErrorIs(t, err, repository.ErrConflict)
	})
	t.Run("unknown venue", func(t *testing.T) {
		_, err := svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: 999, StartTime: "2035-05-01T20:00"})
		ve, ok := AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "venue_id")
	})
	t.Run("unknown artist", func(t *testing.T) {
		_, err := svc.CreateShow(ctx, ShowInput{ArtistID: 999, VenueID: v.ID, StartTime: "2035-05-01T20:00"})
		ve, ok := AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "artist_id")
	})
	t.Run("bad input", func(t *testing.T) {
		_, err := svc.CreateShow(ctx, ShowInput{StartTime: "next friday"})
		ve, ok := AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "artist_id")
		assert.Contains(t, ve.Fields, "venue_id")

		_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "next friday"})
		ve, ok = AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "start_time")
	})
}

func TestParseStartTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2035-04-01T20:00:00Z", "2035-04-01T20:00", "2035-04-01 20:00:00", " 2035-04-01 20:00 "} {
		got, err := ParseStartTime(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseStartTime("04/01/2035")
	assert.Error(t, err)
}

func TestHome(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.CreateVenue(ctx, venueInput("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)
	second, err := svc.CreateVenue(ctx, venueInput("Park Square", "San Francisco", "CA"))
	require.NoError(t, err)
	a, err := svc.CreateArtist(ctx, artistInput("Guns N Petals"))
	require.NoError(t, err)
	_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "2025-01-03T20:00"})
	require.NoError(t, err)
	_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "2025-02-03T20:00"})
	require.NoError(t, err)

	home, err := svc.Home(ctx)
	require.NoError(t, err)
	require.Len(t, home.RecentVenues, 2)
	assert.Equal(t, second.ID, home.RecentVenues[0].ID)
	assert.Len(t, home.RecentArtists, 1)
	assert.Equal(t, 1, home.ShowsThisWeek)
}

// gatedPublisher blocks every publish until release is closed.
type gatedPublisher struct {
	release   chan struct{}
	published atomic.Int32
}

func (p *gatedPublisher) PublishShowScheduled(context.Context, queue.ShowScheduledEvent) error {
	<-p.release
	p.published.Add(1)
	return nil
}

func TestWaitBlocksUntilEventsArePublished(t *testing.T) {
	pub := &gatedPublisher{release: make(chan struct{})}
	svc := newServiceWith(t, pub)
	var once sync.Once
	release := func() { once.Do(func() { close(pub.release) }) }
	t.Cleanup(release)
	ctx := context.Background()

	v, err := svc.CreateVenue(ctx, venueInput("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)
	a, err := svc.CreateArtist(ctx, artistInput("Guns N Petals"))
	require.NoError(t, err)
	_, err = svc.CreateShow(ctx, ShowInput{ArtistID: a.ID, VenueID: v.ID, StartTime: "2035-04-01 20:00:00"})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		svc.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned while a publish was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after the publish finished")
	}
	assert.EqualValues(t, 1, pub.published.Load())
}
