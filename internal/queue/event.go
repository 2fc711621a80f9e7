// Package queue defines message payloads exchanged over the message broker.
package queue

// ShowScheduledQueue is the durable queue show events are routed to.
const ShowScheduledQueue = "show.scheduled"

// ShowScheduledEvent is published when a show is booked.  It carries the
// display names so downstream consumers can log or notify without
// querying the primary database.
type ShowScheduledEvent struct {
    ShowID      uint64 `json:"show_id"`
    VenueID     uint64 `json:"venue_id"`
    VenueName   string `json:"venue_name"`
    ArtistID    uint64 `json:"artist_id"`
    ArtistName  string `json:"artist_name"`
    StartTime   string `json:"start_time"`
    ScheduledAt string `json:"scheduled_at"`
}
