package models

// Vertical identifies which line of business a resource or service belongs to.
type Vertical string

const (
	VerticalHotel      Vertical = "hotel"
	VerticalRestaurant Vertical = "restaurant"
	VerticalSalon      Vertical = "salon"
)

// ServiceOption is an add-on a client can select with a service.
// Options are independent and additive; selecting one adds its duration
// impact to the base duration. Impacts may be negative (e.g. an express
// variant of a treatment).
type ServiceOption struct {
	Name                  string  `bson:"name" json:"name"` // unique within a service
	DurationImpactMinutes int     `bson:"durationImpactMinutes" json:"durationImpactMinutes"`
	PriceImpact           float64 `bson:"priceImpact" json:"priceImpact"`
}

// ServiceDefinition is immutable reference data owned by the business:
// a salon treatment, a room category, a table seating, etc.
type ServiceDefinition struct {
	ID                  string          `bson:"id" json:"id"`
	BusinessID          string          `bson:"businessId" json:"businessId"`
	Vertical            Vertical        `bson:"vertical" json:"vertical"`
	Name                string          `bson:"name" json:"name"`
	BaseDurationMinutes int             `bson:"baseDurationMinutes" json:"baseDurationMinutes"`
	BasePrice           float64         `bson:"basePrice" json:"basePrice"`
	Options             []ServiceOption `bson:"options,omitempty" json:"options,omitempty"`
}

// ServiceRef is a reservation's link to its service. Stored records carry
// either just an ID (legacy, object-id shaped) or an embedded definition;
// the repository resolves refs once so downstream code never sniffs shapes.
type ServiceRef struct {
	ID      string             `bson:"id,omitempty" json:"id,omitempty"`
	Service *ServiceDefinition `bson:"service,omitempty" json:"service,omitempty"`
}

// Resolved reports whether the referenced definition has been loaded.
func (r *ServiceRef) Resolved() bool {
	return r != nil && r.Service != nil
}

// ResolveWith attaches the definition when the lookup knows the ID.
// Unknown IDs leave the ref unresolved; duration resolution then falls
// through to the default.
func (r *ServiceRef) ResolveWith(lookup func(id string) *ServiceDefinition) {
	if r == nil || r.Service != nil || r.ID == "" || lookup == nil {
		return
	}
	r.Service = lookup(r.ID)
}
