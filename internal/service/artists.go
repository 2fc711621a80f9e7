package service

import (
	"context"
	"strings"

	"github.com/iliyamo/fyyur/internal/model"
)

// ArtistInput is the artist form.
type ArtistInput struct {
	Name               string   `form:"name" json:"name" yaml:"name" validate:"required,max=120"`
	City               string   `form:"city" json:"city" yaml:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" yaml:"state" validate:"required,state"`
	Phone              string   `form:"phone" json:"phone" yaml:"phone" validate:"max=120"`
	Website            string   `form:"website" json:"website" yaml:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" yaml:"facebook_link" validate:"omitempty,url,max=500"`
	ImageLink          string   `form:"image_link" json:"image_link" yaml:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" yaml:"genres" validate:"max=19,dive,genre"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" yaml:"seeking_description" validate:"max=500"`
}

func (in *ArtistInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Website = strings.TrimSpace(in.Website)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.Genres = cleanGenres(in.Genres)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)
}

// apply copies the form onto a.  SeekingVenue follows the description.
func (in ArtistInput) apply(a *model.Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.Website = in.Website
	a.FacebookLink = in.FacebookLink
	a.ImageLink = in.ImageLink
	a.Genres = in.Genres
	a.SeekingDescription = in.SeekingDescription
	a.SeekingVenue = in.SeekingDescription != ""
}

// ArtistInputFrom fills the edit form from a stored artist.
func ArtistInputFrom(a model.Artist) ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		Genres:             a.Genres,
		SeekingDescription: a.SeekingDescription,
	}
}

// ArtistDetail is an artist with its shows split around now.
type ArtistDetail struct {
	model.Artist
	PastShows          []model.ShowListing `json:"past_shows"`
	UpcomingShows      []model.ShowListing `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// CreateArtist validates in and stores a new artist.
func (s *Service) CreateArtist(ctx context.Context, in ArtistInput) (*model.Artist, error) {
	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}
	var a model.Artist
	in.apply(&a)
	if err := s.artists.Create(ctx, &a); err != nil {
		return nil, err
	}
	s.log.Info("artist created", zapID(a.ID), zapName(a.Name))
	return &a, nil
}

// UpdateArtist replaces the editable fields of artist id.
func (s *Service) UpdateArtist(ctx context.Context, id uint64, in ArtistInput) (*model.Artist, error) {
	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(a)
	if err := s.artists.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteArtist removes artist id together with its shows.
func (s *Service) DeleteArtist(ctx context.Context, id uint64) (string, error) {
	name, err := s.artists.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.log.Info("artist deleted", zapID(id), zapName(name))
	return name, nil
}

// Artist returns a single artist without their shows.
func (s *Service) Artist(ctx context.Context, id uint64) (*model.Artist, error) {
	return s.artists.GetByID(ctx, id)
}

// ArtistDetail returns artist id with its past and upcoming shows.
func (s *Service) ArtistDetail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming, err := s.ShowsFor(ctx, ShowQuery{ArtistID: id})
	if err != nil {
		return nil, err
	}
	return &ArtistDetail{
		Artist:             *a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// ListArtists returns every artist ordered by id.
func (s *Service) ListArtists(ctx context.Context) ([]model.Artist, error) {
	return s.artists.ListAll(ctx)
}
