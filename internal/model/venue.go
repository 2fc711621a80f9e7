package model

import "time"

// Venue is a place where shows are held.  A venue may host any number
// of shows.  It corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City, State        – the listing area the venue is grouped under.
//  Address            – street address.
//  Phone              – contact phone number.
//  Website            – public website URL.
//  FacebookLink       – social media page URL.
//  ImageLink          – URL of the venue image.
//  Genres             – ordered list of genres played at the venue.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text describing what the venue is looking for.
type Venue struct {
    ID                 uint64    `json:"id"`                  // venues.id
    Name               string    `json:"name"`                // venues.name
    City               string    `json:"city"`                // venues.city
    State              string    `json:"state"`               // venues.state
    Address            string    `json:"address"`             // venues.address
    Phone              string    `json:"phone"`               // venues.phone
    Website            string    `json:"website"`             // venues.website
    FacebookLink       string    `json:"facebook_link"`       // venues.facebook_link
    ImageLink          string    `json:"image_link"`          // venues.image_link
    Genres             []string  `json:"genres"`              // venues.genres (JSON array text)
    SeekingTalent      bool      `json:"seeking_talent"`      // venues.seeking_talent
    SeekingDescription string    `json:"seeking_description"` // venues.seeking_description (nullable)
    CreatedAt          time.Time `json:"created_at"`          // venues.created_at
    UpdatedAt          time.Time `json:"updated_at"`          // venues.updated_at
}
