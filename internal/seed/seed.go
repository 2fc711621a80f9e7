// Package seed loads venues, artists and shows from a YAML fixture
// file.  Shows refer to their venue and artist by name so fixtures do
// not depend on generated ids.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iliyamo/fyyur/internal/service"
)

//go:embed default.yaml
var defaultFixtures []byte

// Show is a show fixture.
type Show struct {
	Venue     string `yaml:"venue"`
	Artist    string `yaml:"artist"`
	StartTime string `yaml:"start_time"`
}

// File is the fixture document.
type File struct {
	Venues  []service.VenueInput  `yaml:"venues"`
	Artists []service.ArtistInput `yaml:"artists"`
	Shows   []Show                `yaml:"shows"`
}

// Result counts what Apply created.
type Result struct {
	Venues  int
	Artists int
	Shows   int
}

// Load decodes a fixture file.  Unknown keys are rejected so typos do
// not silently drop data.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &f, nil
}

// Default returns the fixtures bundled with the binary.
func Default() (*File, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

// Apply creates every record in f through the service, so fixtures go
// through the same validation as the forms.  It stops at the first
// failure and reports what was created before it.
func Apply(ctx context.Context, svc *service.Service, f *File) (Result, error) {
	var res Result
	venues := make(map[string]uint64, len(f.Venues))
	for i, in := range f.Venues {
		v, err := svc.CreateVenue(ctx, in)
		if err != nil {
			return res, fmt.Errorf("venue %d (%q): %w", i, in.Name, err)
		}
		venues[v.Name] = v.ID
		res.Venues++
	}

	artists := make(map[string]uint64, len(f.Artists))
	for i, in := range f.Artists {
		a, err := svc.CreateArtist(ctx, in)
		if err != nil {
			return res, fmt.Errorf("artist %d (%q): %w", i, in.Name, err)
		}
		artists[a.Name] = a.ID
		res.Artists++
	}

	for i, s := range f.Shows {
		venueID, ok := venues[s.Venue]
		if !ok {
			return res, fmt.Errorf("show %d: unknown venue %q", i, s.Venue)
		}
		artistID, ok := artists[s.Artist]
		if !ok {
			return res, fmt.Errorf("show %d: unknown artist %q", i, s.Artist)
		}
		if _, err := svc.CreateShow(ctx, service.ShowInput{VenueID: venueID, ArtistID: artistID, StartTime: s.StartTime}); err != nil {
			return res, fmt.Errorf("show %d (%s at %s): %w", i, s.Artist, s.Venue, err)
		}
		res.Shows++
	}
	return res, nil
}
