package booking

import (
	"context"

	"tribook/models"
)

// BookingService drives the hold → confirm workflow. A hold persists a
// pending reservation (validated and inserted in one transaction) and
// opens a session; confirm promotes it; an unconfirmed hold is expired by
// the background worker.
type BookingService interface {
	Hold(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	// Book is the one-shot path: validate against fresh data and persist a
	// confirmed reservation in a single transactional call.
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
}
