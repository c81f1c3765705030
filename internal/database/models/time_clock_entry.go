package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeClockEntry is an immutable, append-only clock event. Entries are never
// updated or deleted; a worker's current status is always a fold over their
// ordered entry log. There is deliberately no persisted session object.
type TimeClockEntry struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WorkerID    uuid.UUID   `json:"worker_id" gorm:"type:uuid;not null;index:idx_entries_worker_ts" validate:"required"`
	LocationID  uuid.UUID   `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClockType   ClockType   `json:"clock_type" gorm:"type:varchar(20);not null" validate:"required"`
	Timestamp   time.Time   `json:"timestamp" gorm:"type:timestamptz;not null;index:idx_entries_worker_ts" validate:"required"`
	EntryMethod EntryMethod `json:"entry_method" gorm:"type:varchar(20);not null;default:'MANUAL'"`
	// Seq breaks timestamp ties in insertion order.
	Seq       int64     `json:"-" gorm:"autoIncrement;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Worker   Worker   `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Location Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets the UUID if not already set
func (e *TimeClockEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for TimeClockEntry
func (TimeClockEntry) TableName() string {
	return "time_clock_entries"
}
