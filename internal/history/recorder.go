// Package history appends the immutable audit trail of reservation state
// changes. Appends are best-effort by contract: the lifecycle operation that
// triggered an entry has already been reported as successful, so a failed
// write is logged and dropped, never propagated.
package history

import (
	"context"
	"log"
	"time"

	"facility-reservation-backend/internal/model"
	"facility-reservation-backend/internal/store"
)

// Recorder accepts history entries for eventual persistence. Implementations
// never return an error to the caller.
type Recorder interface {
	Record(entry model.HistoryEntry)
}

// Pool persists entries asynchronously through a fixed set of workers.
type Pool struct {
	size  int
	jobs  chan model.HistoryEntry
	store store.Store
}

// NewPool creates a worker pool writing through the given store. The job
// buffer holds size*4 pending entries; Record drops on overflow rather than
// block a request.
func NewPool(size int, s store.Store) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{
		size:  size,
		jobs:  make(chan model.HistoryEntry, size*4),
		store: s,
	}
}

// Start launches the worker goroutines. They exit when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	for {
		select {
		case entry := <-p.jobs:
			if err := p.store.AppendHistory(ctx, &entry); err != nil {
				log.Printf("history worker %d: dropping %s entry for reservation %s: %v",
					id, entry.ActionType, entry.ReservationID, err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Record enqueues an entry. A full buffer drops the entry with a log line;
// the reservation outcome the entry describes is already committed.
func (p *Pool) Record(entry model.HistoryEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	select {
	case p.jobs <- entry:
	default:
		log.Printf("history: buffer full, dropping %s entry for reservation %s",
			entry.ActionType, entry.ReservationID)
	}
}

// Jobs returns the jobs channel for testing.
func (p *Pool) Jobs() chan model.HistoryEntry {
	return p.jobs
}

// Sync writes entries inline. It is used by tests and by deployments where a
// worker pool is not wanted; failures are still swallowed.
type Sync struct {
	Store store.Store
}

// Record persists the entry immediately, logging any failure.
func (s *Sync) Record(entry model.HistoryEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.Store.AppendHistory(context.Background(), &entry); err != nil {
		log.Printf("history: dropping %s entry for reservation %s: %v",
			entry.ActionType, entry.ReservationID, err)
	}
}
