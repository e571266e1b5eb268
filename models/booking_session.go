package models

import "time"

// BookingSession holds context between slot display and final booking.
// The availability snapshot inside a session is display-only: confirmation
// always re-validates against freshly fetched reservations, never against
// the snapshot.
type BookingSession struct {
	SessionID     string         `json:"sessionId"`
	ReservationID string         `json:"reservationId"` // the pending hold record
	Request       BookingRequest `json:"request"`
	Duration      int            `json:"duration"` // effective minutes, resolved at hold time
	Proposed      Interval       `json:"proposed"`
	Shown         []SlotVerdict  `json:"shown,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	ExpiresAt     time.Time      `json:"expiresAt"`
}

// BookingResponse is the payload returned by the booking resolver and
// the confirm endpoint.
type BookingResponse struct {
	SessionID    string           `json:"sessionID,omitempty"`
	Availability *DaySlots        `json:"availability,omitempty"`
	Booking      *Reservation     `json:"booking,omitempty"`
	Conflict     *BookingConflict `json:"conflict,omitempty"`
}
