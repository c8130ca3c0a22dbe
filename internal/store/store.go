package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"facility-reservation-backend/internal/model"
	"facility-reservation-backend/internal/parse"
)

// DefaultTimeout bounds every storage call when the config does not set one.
const DefaultTimeout = 5 * time.Second

// Store defines the persistence operations for reservations, history and
// the read-only resource catalog.
type Store interface {
	DB() *gorm.DB
	CreateReservation(ctx context.Context, res *model.Reservation) error
	UpdateStatus(ctx context.Context, id string, next model.Status, expectedOwner string) (*model.Reservation, bool, error)
	ListActiveForUser(ctx context.Context, userID string, asOf time.Time) ([]model.Reservation, error)
	ListActiveForResourceDate(ctx context.Context, resourceID, dateLabel string) ([]model.Reservation, error)
	AppendHistory(ctx context.Context, entry *model.HistoryEntry) error
	GetResource(ctx context.Context, id string) (*model.Resource, error)
	ListResources(ctx context.Context) ([]model.Resource, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormStore creates a new GORM-backed store. Every call carries the given
// per-operation timeout; expiry surfaces as ErrStorageUnavailable.
func NewGormStore(db *gorm.DB, timeout time.Duration) Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &gormStore{db: db, timeout: timeout}
}

// DB exposes the underlying handle for migrations and tests.
func (s *gormStore) DB() *gorm.DB { return s.db }

func (s *gormStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// CreateReservation inserts a reservation. The partial unique index over
// (resource_id, date_label, time_label) restricted to active statuses is the
// authoritative double-booking guard: a constraint violation here means the
// caller lost the race, not that anything is broken.
func (s *gormStore) CreateReservation(ctx context.Context, res *model.Reservation) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.Status == "" {
		res.Status = model.StatusConfirmed
	}
	if err := s.db.WithContext(ctx).Create(res).Error; err != nil {
		if isDuplicate(err) {
			return ErrSlotTaken
		}
		return storageErr("create reservation", err)
	}
	return nil
}

// UpdateStatus moves a reservation to the next lifecycle state on behalf of
// expectedOwner. Cancelling a reservation that is already cancelled or
// completed is a successful no-op; every other transition must move forward.
// The bool reports whether a transition was actually applied, so callers
// record history only for real state changes.
func (s *gormStore) UpdateStatus(ctx context.Context, id string, next model.Status, expectedOwner string) (*model.Reservation, bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var res model.Reservation
	changed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageErr("load reservation", err)
		}
		if res.UserID != expectedOwner {
			return ErrForbidden
		}
		if next == model.StatusCancelled && res.Status.IsTerminal() {
			// Idempotent cancel: nothing to write.
			return nil
		}
		if !res.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&res).Update("status", next).Error; err != nil {
			return storageErr("update reservation status", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &res, changed, nil
}

// ListActiveForUser returns the caller's active reservations whose derived
// start is at or after asOf, ordered by derived start ascending. Labels that
// cannot be parsed into an instant are kept and sorted last: an entry the
// user can still see beats one silently dropped over a bad display string.
func (s *gormStore) ListActiveForUser(ctx context.Context, userID string, asOf time.Time) ([]model.Reservation, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []model.Reservation
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, activeStatuses()).
		Find(&rows).Error
	if err != nil {
		return nil, storageErr("list reservations for user", err)
	}

	type keyed struct {
		res      model.Reservation
		start    time.Time
		parsable bool
	}
	upcoming := make([]keyed, 0, len(rows))
	for _, r := range rows {
		start, perr := parse.SlotStart(r.DateLabel, r.TimeLabel, asOf)
		if perr != nil {
			upcoming = append(upcoming, keyed{res: r})
			continue
		}
		if start.Before(asOf) {
			continue
		}
		upcoming = append(upcoming, keyed{res: r, start: start, parsable: true})
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i], upcoming[j]
		if a.parsable != b.parsable {
			return a.parsable
		}
		return a.start.Before(b.start)
	})

	out := make([]model.Reservation, len(upcoming))
	for i, k := range upcoming {
		out[i] = k.res
	}
	return out, nil
}

// ListActiveForResourceDate returns every active reservation holding a slot
// on the given resource and date. This is the availability feed; it is read
// fresh on every call and never cached.
func (s *gormStore) ListActiveForResourceDate(ctx context.Context, resourceID, dateLabel string) ([]model.Reservation, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []model.Reservation
	err := s.db.WithContext(ctx).
		Where("resource_id = ? AND date_label = ? AND status IN ?", resourceID, dateLabel, activeStatuses()).
		Find(&rows).Error
	if err != nil {
		return nil, storageErr("list reservations for resource/date", err)
	}
	return rows, nil
}

// AppendHistory inserts one immutable history entry.
func (s *gormStore) AppendHistory(ctx context.Context, entry *model.HistoryEntry) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return storageErr("append history entry", err)
	}
	return nil
}

// GetResource loads one resource from the read-only catalog.
func (s *gormStore) GetResource(ctx context.Context, id string) (*model.Resource, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var res model.Resource
	if err := s.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("load resource", err)
	}
	return &res, nil
}

// ListResources returns the full resource catalog ordered by name.
func (s *gormStore) ListResources(ctx context.Context) ([]model.Resource, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []model.Resource
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, storageErr("list resources", err)
	}
	return rows, nil
}

func activeStatuses() []model.Status {
	return []model.Status{model.StatusConfirmed, model.StatusCheckedIn}
}

// storageErr wraps a driver failure or timeout as the retryable
// ErrStorageUnavailable while keeping the cause in the chain.
func storageErr(op string, err error) error {
	return &storeError{op: op, err: err}
}

type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string {
	return "storage unavailable: " + e.op + ": " + e.err.Error()
}

func (e *storeError) Unwrap() error { return e.err }

// Is makes every wrapped driver failure match ErrStorageUnavailable.
func (e *storeError) Is(target error) bool { return target == ErrStorageUnavailable }

// isDuplicate detects a unique-constraint violation across the drivers in
// play: GORM's translated sentinel where available, otherwise the SQLite and
// Postgres error texts.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
