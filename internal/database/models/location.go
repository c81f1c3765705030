package models

// Location represents a staffed site. The location directory owns the
// identity fields; the coverage policy columns are read by the time clock
// engine when evaluating break requests.
type Location struct {
	BaseModel
	Name     string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Timezone string `json:"timezone" gorm:"size:50;not null;default:'UTC'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Coverage policy. Zero values fall back to the configured defaults.
	RequiredCoverage    int `json:"required_coverage" gorm:"default:0" validate:"min=0"`
	MaxConcurrentBreaks int `json:"max_concurrent_breaks" gorm:"default:0" validate:"min=0"`

	// Relationships
	Shifts           []Shift          `json:"shifts,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	TimeClockEntries []TimeClockEntry `json:"time_clock_entries,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
