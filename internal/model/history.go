package model

import "time"

// History action types. One entry is appended per completed lifecycle
// transition; entries are immutable once written.
const (
	ActionCreated   = "created"
	ActionCancelled = "cancelled"
	ActionCheckedIn = "checked_in"
)

// HistoryEntry is the append-only audit record for a reservation state
// change. Writes are best-effort: a failed append never fails the lifecycle
// operation that triggered it.
type HistoryEntry struct {
	ID            string            `gorm:"primaryKey;size:64" json:"id"`
	UserID        string            `gorm:"size:64;not null;index" json:"user_id"`
	ReservationID string            `gorm:"size:64;not null;index" json:"reservation_id"`
	ActionType    string            `gorm:"size:32;not null" json:"action_type"`
	Description   string            `gorm:"size:512" json:"description"`
	ChangeSet     map[string]string `gorm:"serializer:json" json:"change_set"`
	Metadata      map[string]string `gorm:"serializer:json" json:"metadata"`
	CreatedAt     time.Time         `gorm:"not null" json:"created_at"`
}
