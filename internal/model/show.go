package model

import "time"

// Show links one artist to one venue at a start time.  It is the only
// join point between venues and artists and carries no other data.
// StartTime is always stored in UTC with second precision.
type Show struct {
    ID        uint64    `json:"id"`         // shows.id
    VenueID   uint64    `json:"venue_id"`   // shows.venue_id
    ArtistID  uint64    `json:"artist_id"`  // shows.artist_id
    StartTime time.Time `json:"start_time"` // shows.start_time
    CreatedAt time.Time `json:"created_at"` // shows.created_at
}

// StartsAt returns the scheduled start of the show.
func (s Show) StartsAt() time.Time { return s.StartTime }

// Key returns the show's primary key.
func (s Show) Key() uint64 { return s.ID }

// ShowListing is a show joined with the display fields of its venue
// and artist.  Detail pages and the show list are built from it.
type ShowListing struct {
    Show
    VenueName       string `json:"venue_name"`
    VenueImageLink  string `json:"venue_image_link"`
    ArtistName      string `json:"artist_name"`
    ArtistImageLink string `json:"artist_image_link"`
}
