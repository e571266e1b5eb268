package models

// BusinessHours is the bookable window of a resource's day,
// in minutes from midnight.
type BusinessHours struct {
	OpenMinutes  int `bson:"openMinutes" json:"openMinutes"`
	CloseMinutes int `bson:"closeMinutes" json:"closeMinutes"`
}

// DefaultBusinessHours is the 9:00–18:00 window applied when a resource
// carries no override. Deployments override it at startup via
// ConfigureDefaultHours.
var DefaultBusinessHours = BusinessHours{OpenMinutes: 540, CloseMinutes: 1080}

// ConfigureDefaultHours replaces the default window. Windows with a
// non-positive span or a negative open time are ignored.
func ConfigureDefaultHours(open, close int) {
	if open >= 0 && close > open {
		DefaultBusinessHours = BusinessHours{OpenMinutes: open, CloseMinutes: close}
	}
}

// SpanMinutes returns the length of the open window.
func (h BusinessHours) SpanMinutes() int {
	return h.CloseMinutes - h.OpenMinutes
}

// Resource is the bookable unit contended for: a hotel room, a restaurant
// table, or a stylist. Resources are always addressed by explicit ID.
type Resource struct {
	ID         string         `bson:"id" json:"id"`
	BusinessID string         `bson:"businessId" json:"businessId"`
	Vertical   Vertical       `bson:"vertical" json:"vertical"`
	Name       string         `bson:"name" json:"name"`
	Hours      *BusinessHours `bson:"hours,omitempty" json:"hours,omitempty"` // nil means the default window
}

// EffectiveHours returns the resource's override or the default window.
func (r *Resource) EffectiveHours() BusinessHours {
	if r != nil && r.Hours != nil {
		return *r.Hours
	}
	return DefaultBusinessHours
}
