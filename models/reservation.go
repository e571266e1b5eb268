package models

import "time"

// ReservationStatus is the external lifecycle of a reservation. Only its
// time-blocking effect matters here: cancelled and no-show records never
// block a slot.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation is a stored booking record. Older records are heterogeneous:
// some carry an explicit duration, some only reference a service, and some
// store their start as an "HH:mm" clock string instead of minutes.
type Reservation struct {
	ID         string            `bson:"id" json:"id"`
	BusinessID string            `bson:"businessId" json:"businessId"`
	ResourceID string            `bson:"resourceId" json:"resourceId"`
	UserID     string            `bson:"userId,omitempty" json:"userId,omitempty"`
	Date       string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start      int               `bson:"start" json:"start"`
	StartClock string            `bson:"startClock,omitempty" json:"startClock,omitempty"` // legacy "HH:mm" form
	Duration   *int              `bson:"duration,omitempty" json:"duration,omitempty"`     // minutes; nil on legacy records
	Service    *ServiceRef       `bson:"service,omitempty" json:"service,omitempty"`
	Status     ReservationStatus `bson:"status" json:"status"`
	TotalPrice float64           `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
}

// Blocks reports whether the reservation still occupies its interval.
func (r *Reservation) Blocks() bool {
	return r.Status != StatusCancelled && r.Status != StatusNoShow
}

// BookingRequest is a client's proposed booking, before validation.
// Effective duration: ExplicitDurationMinutes when present, else the
// service base plus selected option impacts, else the engine default.
type BookingRequest struct {
	BusinessID              string   `json:"businessId"`
	ResourceID              string   `json:"resourceId"`
	UserID                  string   `json:"userId"`
	Date                    string   `json:"date"` // "YYYY-MM-DD"
	Start                   int      `json:"start"`
	ServiceID               string   `json:"serviceId,omitempty"`
	SelectedOptions         []string `json:"selectedOptions,omitempty"`
	ExplicitDurationMinutes *int     `json:"explicitDurationMinutes,omitempty"`
}
