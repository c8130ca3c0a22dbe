// Sentinel errors shared by the store and the layers above it. Handlers
// translate them into HTTP status codes; callers inspect them with errors.Is.
package store

import "errors"

// ErrSlotTaken is returned when an insert loses the race for a
// resource/date/time slot: another active reservation already holds it.
// The caller must re-query availability and re-select; the stale selection
// is never retried automatically.
var ErrSlotTaken = errors.New("slot already reserved")

// ErrNotFound is returned when no reservation exists for the given id.
var ErrNotFound = errors.New("reservation not found")

// ErrForbidden is returned when the caller attempts to mutate a reservation
// owned by someone else.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition is returned when a status change would move the
// lifecycle backwards or out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrStorageUnavailable is returned when the backing store times out or
// fails outright. The operation is retryable; state is unchanged.
var ErrStorageUnavailable = errors.New("storage unavailable")
