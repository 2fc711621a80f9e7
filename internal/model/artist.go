package model

import "time"

// Artist is a performer that can be booked for shows.  It corresponds
// to a row in the `artists` table.  Artists have no street address;
// City and State describe where they are based.
type Artist struct {
    ID                 uint64    `json:"id"`                  // artists.id
    Name               string    `json:"name"`                // artists.name
    City               string    `json:"city"`                // artists.city
    State              string    `json:"state"`               // artists.state
    Phone              string    `json:"phone"`               // artists.phone
    Website            string    `json:"website"`             // artists.website
    FacebookLink       string    `json:"facebook_link"`       // artists.facebook_link
    ImageLink          string    `json:"image_link"`          // artists.image_link
    Genres             []string  `json:"genres"`              // artists.genres (JSON array text)
    SeekingVenue       bool      `json:"seeking_venue"`       // artists.seeking_venue
    SeekingDescription string    `json:"seeking_description"` // artists.seeking_description (nullable)
    CreatedAt          time.Time `json:"created_at"`          // artists.created_at
    UpdatedAt          time.Time `json:"updated_at"`          // artists.updated_at
}
