// Package model defines the stored rows, request payloads and response
// envelopes of the notes and products resources.
//
// Rows mirror the database columns (`db` tags) and are converted into
// response types with ToResponse. Payload types implement
// validation.Validatable and are bound by the handler pipeline.
package model

import (
	"errors"
	"time"
)

// StatusSuccess is the envelope status of every successful JSON response.
const StatusSuccess = "success"

// ErrMissingTimestamp is returned when a stored row has no created_at or
// updated_at value and therefore cannot be rendered.
var ErrMissingTimestamp = errors.New("stored row is missing a timestamp")

func requireTimestamps(createdAt, updatedAt *time.Time) (time.Time, time.Time, error) {
	if createdAt == nil || updatedAt == nil {
		return time.Time{}, time.Time{}, ErrMissingTimestamp
	}
	return *createdAt, *updatedAt, nil
}
