package models

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduledTimeLayout is the wire format for shift start and end times
const ScheduledTimeLayout = "15:04"

// Shift represents a planned work interval for one worker at one location.
// Shifts are never deleted; cancellation is a status transition.
type Shift struct {
	BaseModel
	WorkerID                  uuid.UUID   `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	LocationID                uuid.UUID   `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date                      time.Time   `json:"date" gorm:"type:date;not null;index" validate:"required"`
	ScheduledStart            string      `json:"scheduled_start" gorm:"type:varchar(5);not null" validate:"required"`
	ScheduledEnd              string      `json:"scheduled_end" gorm:"type:varchar(5);not null" validate:"required"`
	ShiftType                 ShiftType   `json:"shift_type" gorm:"type:varchar(20);not null;default:'REGULAR'" validate:"required"`
	Position                  string      `json:"position" gorm:"size:100;not null" validate:"required,max=100"`
	IsSupervisorShift         bool        `json:"is_supervisor_shift" gorm:"default:false"`
	RequiresSupervisorPresent bool        `json:"requires_supervisor_present" gorm:"default:false"`
	Status                    ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
	BreakDurationMinutes      int         `json:"break_duration_minutes" gorm:"default:0" validate:"min=0,max=120"`
	HourlyRate                float64     `json:"hourly_rate" gorm:"type:numeric(8,2);default:0"`
	Notes                     string      `json:"notes" gorm:"type:text"`

	// Backstop for the concurrent-scheduling race: a partial unique index
	// on (worker_id, date, time_range_hash) rejects a second identical live
	// range even if two writers pass the overlap query simultaneously.
	// Cancelled and no-show rows are excluded so a vacated slot can be
	// rescheduled; the index predicate lives in database.Initialize because
	// GORM index tags cannot express it.
	TimeRangeHash string `json:"-" gorm:"type:varchar(16);not null"`

	// Relationships
	Worker   Worker   `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Location Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// BeforeCreate fills in the time range hash alongside the base model hook
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if err := s.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if s.TimeRangeHash == "" {
		s.TimeRangeHash = TimeRangeHash(s.ScheduledStart, s.ScheduledEnd)
	}
	return nil
}

// TimeRangeHash produces a stable short hash for a scheduled time range
func TimeRangeHash(start, end string) string {
	h := fnv.New32a()
	h.Write([]byte(start + "-" + end))
	return fmt.Sprintf("%08x", h.Sum32())
}

// DurationHours returns the scheduled length of the shift in hours,
// wrapping past midnight when the end time precedes the start time.
func (s *Shift) DurationHours() (float64, error) {
	return ScheduledDurationHours(s.ScheduledStart, s.ScheduledEnd)
}

// ScheduledDurationHours computes the overnight-adjusted duration between
// two HH:MM times.
func ScheduledDurationHours(start, end string) (float64, error) {
	st, err := time.Parse(ScheduledTimeLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	et, err := time.Parse(ScheduledTimeLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", end, err)
	}
	d := et.Sub(st)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours(), nil
}
