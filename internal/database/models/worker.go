package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CapabilitySet is a set of capabilities stored as a jsonb array. Membership
// checks go through Has so typo-class string comparisons never leak into
// call sites.
type CapabilitySet []Capability

// Has reports whether the set contains the given capability
func (s CapabilitySet) Has(c Capability) bool {
	for _, have := range s {
		if have == c {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for jsonb storage
func (s CapabilitySet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb storage
func (s *CapabilitySet) Scan(value interface{}) error {
	if value == nil {
		*s = CapabilitySet{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported capability set type %T", value)
	}
	return json.Unmarshal(data, s)
}

// Worker represents a schedulable person. The personnel directory owns the
// identity fields; the scheduling core only reads them.
type Worker struct {
	BaseModel
	FullName          string           `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	FirstName         string           `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName          string           `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email             string           `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber       string           `json:"phone_number" gorm:"size:20"`
	EmploymentStatus  EmploymentStatus `json:"employment_status" gorm:"type:varchar(20);not null;default:'ACTIVE'" validate:"required"`
	Capabilities      CapabilitySet    `json:"capabilities" gorm:"type:jsonb"`
	DefaultHourlyRate float64          `json:"default_hourly_rate" gorm:"type:numeric(8,2);default:0"`

	// Relationships
	Shifts           []Shift          `json:"shifts,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	TimeClockEntries []TimeClockEntry `json:"time_clock_entries,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Worker
func (Worker) TableName() string {
	return "workers"
}

// IsSchedulable reports whether the worker can be assigned new shifts
func (w *Worker) IsSchedulable() bool {
	return w.EmploymentStatus == EmploymentStatusActive
}
