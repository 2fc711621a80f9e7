package service

import (
	"context"
	"strings"

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueInput is the venue form.  The same struct binds HTML forms, JSON
// bodies and seed files.
type VenueInput struct {
	Name               string   `form:"name" json:"name" yaml:"name" validate:"required,max=120"`
	City               string   `form:"city" json:"city" yaml:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" yaml:"state" validate:"required,state"`
	Address            string   `form:"address" json:"address" yaml:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" yaml:"phone" validate:"max=120"`
	Website            string   `form:"website" json:"website" yaml:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" yaml:"facebook_link" validate:"omitempty,url,max=500"`
	ImageLink          string   `form:"image_link" json:"image_link" yaml:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" yaml:"genres" validate:"max=19,dive,genre"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" yaml:"seeking_description" validate:"max=500"`
}

func (in *VenueInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Website = strings.TrimSpace(in.Website)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.Genres = cleanGenres(in.Genres)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)
}

// apply copies the form onto v.  SeekingTalent is derived from the
// description: a venue with something to say is looking for talent.
func (in VenueInput) apply(v *model.Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.Website = in.Website
	v.FacebookLink = in.FacebookLink
	v.ImageLink = in.ImageLink
	v.Genres = in.Genres
	v.SeekingDescription = in.SeekingDescription
	v.SeekingTalent = in.SeekingDescription != ""
}

// VenueInputFrom fills the edit form from a stored venue.
func VenueInputFrom(v model.Venue) VenueInput {
	return VenueInput{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		Genres:             v.Genres,
		SeekingDescription: v.SeekingDescription,
	}
}

// VenueDetail is a venue with its shows split around now.
type VenueDetail struct {
	model.Venue
	PastShows          []model.ShowListing `json:"past_shows"`
	UpcomingShows      []model.ShowListing `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// CreateVenue validates in and stores a new venue.
func (s *Service) CreateVenue(ctx context.Context, in VenueInput) (*model.Venue, error) {
	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}
	var v model.Venue
	in.apply(&v)
	if err := s.venues.Create(ctx, &v); err != nil {
		return nil, err
	}
	s.log.Info("venue created", zapID(v.ID), zapName(v.Name))
	return &v, nil
}

// UpdateVenue replaces the editable fields of venue id.
func (s *Service) UpdateVenue(ctx context.Context, id uint64, in VenueInput) (*model.Venue, error) {
	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(v)
	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVenue removes venue id together with its shows and returns the
// venue's name.
func (s *Service) DeleteVenue(ctx context.Context, id uint64) (string, error) {
	name, err := s.venues.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	s.log.Info("venue deleted", zapID(id), zapName(name))
	return name, nil
}

// Venue returns a single venue without its shows.
func (s *Service) Venue(ctx context.Context, id uint64) (*model.Venue, error) {
	return s.venues.GetByID(ctx, id)
}

// VenueDetail returns venue id with its past and upcoming shows.
func (s *Service) VenueDetail(ctx context.Context, id uint64) (*VenueDetail, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming, err := s.ShowsFor(ctx, ShowQuery{VenueID: id})
	if err != nil {
		return nil, err
	}
	return &VenueDetail{
		Venue:              *v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// ListVenues returns every venue ordered by area.  The show form uses
// it for its venue picker.
func (s *Service) ListVenues(ctx context.Context) ([]model.Venue, error) {
	return s.venues.ListAll(ctx)
}
