package model

import "time"

// Resource represents a bookable facility (meeting room, court, studio).
// Rows are provisioned by an external admin tool; this service only reads them.
type Resource struct {
	ID                  string    `gorm:"primaryKey;size:64" json:"id"`
	Name                string    `gorm:"size:256;not null" json:"name"`
	Location            string    `gorm:"size:256" json:"location"`
	Description         string    `gorm:"type:text" json:"description"`
	ImageURL            string    `gorm:"size:512" json:"image_url"`
	OpenHours           string    `gorm:"size:128" json:"open_hours"`
	Amenities           []string  `gorm:"serializer:json" json:"amenities"`
	CapacityDescription string    `gorm:"size:128" json:"capacity_description"`
	CreatedAt           time.Time `gorm:"not null" json:"-"`
	UpdatedAt           time.Time `gorm:"not null" json:"-"`
}
