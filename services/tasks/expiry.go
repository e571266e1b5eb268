package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TypeHoldExpire releases a pending reservation whose hold window lapsed
// without confirmation.
const TypeHoldExpire = "hold:expire"

// HoldExpirePayload identifies the hold to release.
type HoldExpirePayload struct {
	ReservationID string `json:"reservationId"`
	SessionID     string `json:"sessionId"`
}

// NewHoldExpireTask builds the expiry task scheduled for the end of the
// hold window.
func NewHoldExpireTask(payload HoldExpirePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeHoldExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
