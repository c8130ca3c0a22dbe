// Package availability derives the free/occupied view of a resource's slots
// for one date. A snapshot is recomputed from the ledger on every call and is
// never cached: a stale snapshot would hide reservations made by concurrent
// writers. Correctness of the view does not depend on this read being
// transactional; the insert-time uniqueness constraint is the guard.
package availability

import (
	"context"
	"errors"
	"fmt"

	"facility-reservation-backend/internal/catalog"
	"facility-reservation-backend/internal/store"
)

// ErrUnavailable is returned when the ledger read fails. Callers must treat
// it as "unknown", never as "everything is free".
var ErrUnavailable = errors.New("availability unavailable")

// SlotStatus pairs one catalog slot with its occupancy for the queried date.
type SlotStatus struct {
	Slot      catalog.TimeSlotDefinition `json:"slot"`
	Available bool                       `json:"available"`
}

// Snapshot is the derived availability of one resource on one date. It is
// never persisted.
type Snapshot struct {
	ResourceID string       `json:"resource_id"`
	DateLabel  string       `json:"date_label"`
	Slots      []SlotStatus `json:"slots"`
}

// Query reads the reservation ledger to answer availability requests.
type Query struct {
	store store.Store
}

// NewQuery creates an availability query bound to the given store.
func NewQuery(s store.Store) *Query {
	return &Query{store: s}
}

// Get marks every catalog slot for the resource/date as available or
// occupied based on the active reservations currently in the ledger.
func (q *Query) Get(ctx context.Context, resourceID, dateLabel string) (*Snapshot, error) {
	active, err := q.store.ListActiveForResourceDate(ctx, resourceID, dateLabel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	occupied := make(map[string]struct{}, len(active))
	for _, r := range active {
		occupied[r.TimeLabel] = struct{}{}
	}

	snap := &Snapshot{ResourceID: resourceID, DateLabel: dateLabel}
	for _, slot := range catalog.Slots() {
		_, taken := occupied[slot.Label]
		snap.Slots = append(snap.Slots, SlotStatus{Slot: slot, Available: !taken})
	}
	return snap, nil
}
