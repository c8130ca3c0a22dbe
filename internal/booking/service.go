// Package booking is the orchestration surface of the reservation engine:
// it turns a slot selection into a persisted reservation with its codes, a
// cancel request into a ledger update, and exposes the upcoming list. It is
// the only package the presentation layer calls for mutations.
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"facility-reservation-backend/internal/catalog"
	"facility-reservation-backend/internal/codes"
	"facility-reservation-backend/internal/history"
	"facility-reservation-backend/internal/model"
	"facility-reservation-backend/internal/store"
)

// ValidationError reports malformed or missing input, rejected before any
// storage call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CreateInput carries one user's slot selection. UserID is the opaque,
// already-authenticated caller identity supplied by the presentation layer.
type CreateInput struct {
	UserID       string
	ResourceID   string
	ResourceName string
	DateLabel    string
	TimeLabel    string
}

// CreateResult returns the persisted reservation together with the codes the
// user is shown.
type CreateResult struct {
	Reservation   *model.Reservation `json:"reservation"`
	ReferenceCode string             `json:"reference_code"`
	CheckInCode   string             `json:"check_in_code"`
}

// Service coordinates the ledger, code generation and history recording.
type Service struct {
	store    store.Store
	recorder history.Recorder
	now      func() time.Time
}

// NewService creates the lifecycle controller.
func NewService(s store.Store, r history.Recorder) *Service {
	return &Service{store: s, recorder: r, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create validates the selection, issues both codes and inserts a confirmed
// reservation. On store.ErrSlotTaken the selection was stale or lost a race;
// the caller must re-query availability and re-select, nothing is retried
// here. The history append is best-effort and cannot fail the create.
func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	res := &model.Reservation{
		ResourceID:    in.ResourceID,
		ResourceName:  in.ResourceName,
		UserID:        in.UserID,
		DateLabel:     strings.TrimSpace(in.DateLabel),
		TimeLabel:     strings.TrimSpace(in.TimeLabel),
		Status:        model.StatusConfirmed,
		ReferenceCode: codes.NewReferenceCode(),
		CheckInCode:   codes.NewCheckInCode(),
	}
	if err := s.store.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	s.recorder.Record(model.HistoryEntry{
		UserID:        res.UserID,
		ReservationID: res.ID,
		ActionType:    model.ActionCreated,
		Description:   fmt.Sprintf("Reserved %s on %s, %s", res.ResourceName, res.DateLabel, res.TimeLabel),
		ChangeSet: map[string]string{
			"status":     string(model.StatusConfirmed),
			"resource":   res.ResourceID,
			"date_label": res.DateLabel,
			"time_label": res.TimeLabel,
		},
		CreatedAt: s.now(),
	})

	return &CreateResult{
		Reservation:   res,
		ReferenceCode: res.ReferenceCode,
		CheckInCode:   res.CheckInCode,
	}, nil
}

// Cancel moves the reservation to cancelled on behalf of its owner. A second
// cancel is a successful no-op; the freed slot shows up on the next
// availability read.
func (s *Service) Cancel(ctx context.Context, userID, reservationID string) (*model.Reservation, error) {
	res, changed, err := s.store.UpdateStatus(ctx, reservationID, model.StatusCancelled, userID)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Repeat cancel: no transition happened, so no history entry.
		return res, nil
	}

	s.recorder.Record(model.HistoryEntry{
		UserID:        userID,
		ReservationID: res.ID,
		ActionType:    model.ActionCancelled,
		Description:   fmt.Sprintf("Cancelled reservation for %s on %s, %s", res.ResourceName, res.DateLabel, res.TimeLabel),
		ChangeSet:     map[string]string{"status": string(model.StatusCancelled)},
		CreatedAt:     s.now(),
	})
	return res, nil
}

// ListUpcoming returns the caller's active reservations from now on, ordered
// by derived start time. Past confirmed-but-never-checked-in reservations
// stay in the ledger but are excluded here.
func (s *Service) ListUpcoming(ctx context.Context, userID string) ([]model.Reservation, error) {
	return s.store.ListActiveForUser(ctx, userID, s.now())
}

func validateCreate(in CreateInput) error {
	required := []struct {
		field, value string
	}{
		{"user_id", in.UserID},
		{"resource_id", in.ResourceID},
		{"date_label", in.DateLabel},
		{"time_label", in.TimeLabel},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "must not be empty"}
		}
	}
	if _, ok := catalog.ByLabel(strings.TrimSpace(in.TimeLabel)); !ok {
		return &ValidationError{Field: "time_label", Reason: "not a bookable slot"}
	}
	return nil
}
