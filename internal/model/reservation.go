package model

import "time"

// Status is the lifecycle state of a reservation. Transitions only move
// forward: confirmed -> checked_in -> completed, or confirmed -> cancelled.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCheckedIn Status = "checked_in"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsActive reports whether a reservation in this status occupies its slot.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo reports whether moving from s to next is a forward step.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCompleted
	default:
		return false
	}
}

// Reservation holds one user's claim on a resource/date/time slot. Rows are
// never physically deleted; cancelled and completed reservations are retained
// for history display. The partial unique index over
// (resource_id, date_label, time_label) restricted to active statuses is
// created in internal/db and is the authoritative double-booking guard.
type Reservation struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	ResourceID    string    `gorm:"size:64;not null;index" json:"resource_id"`
	ResourceName  string    `gorm:"size:256" json:"resource_name"`
	UserID        string    `gorm:"size:64;not null;index" json:"user_id"`
	DateLabel     string    `gorm:"size:64;not null" json:"date_label"`
	TimeLabel     string    `gorm:"size:64;not null" json:"time_label"`
	Status        Status    `gorm:"size:32;not null" json:"status"`
	ReferenceCode string    `gorm:"size:16;not null" json:"reference_code"`
	CheckInCode   string    `gorm:"size:8;not null" json:"check_in_code"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"-"`
}
