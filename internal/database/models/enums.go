package models

// EmploymentStatus defines the employment state of a worker
type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive   EmploymentStatus = "INACTIVE"
	EmploymentStatusOnLeave    EmploymentStatus = "ON_LEAVE"
	EmploymentStatusTerminated EmploymentStatus = "TERMINATED"
)

// ShiftType defines the types of scheduled shifts
type ShiftType string

const (
	ShiftTypeRegular ShiftType = "REGULAR"
	ShiftTypeOpening ShiftType = "OPENING"
	ShiftTypeClosing ShiftType = "CLOSING"
	ShiftTypeSplit   ShiftType = "SPLIT"
	ShiftTypeDouble  ShiftType = "DOUBLE"
)

// ShiftStatus defines the lifecycle status of a shift
type ShiftStatus string

const (
	ShiftStatusScheduled  ShiftStatus = "SCHEDULED"
	ShiftStatusInProgress ShiftStatus = "IN_PROGRESS"
	ShiftStatusCompleted  ShiftStatus = "COMPLETED"
	ShiftStatusNoShow     ShiftStatus = "NO_SHOW"
	ShiftStatusCancelled  ShiftStatus = "CANCELLED"
)

// ClockType defines the kinds of time clock events
type ClockType string

const (
	ClockTypeClockIn    ClockType = "CLOCK_IN"
	ClockTypeBreakStart ClockType = "BREAK_START"
	ClockTypeBreakEnd   ClockType = "BREAK_END"
	ClockTypeClockOut   ClockType = "CLOCK_OUT"
)

// WorkerClockStatus is the derived real-time state of a worker. It is never
// persisted; it is always computed by folding the worker's entry log.
type WorkerClockStatus string

const (
	WorkerStatusClockedOut WorkerClockStatus = "CLOCKED_OUT"
	WorkerStatusClockedIn  WorkerClockStatus = "CLOCKED_IN"
	WorkerStatusOnBreak    WorkerClockStatus = "ON_BREAK"
)

// EntryMethod defines how a clock event was captured. Opaque to the clock
// engine, validated only for membership at the boundary.
type EntryMethod string

const (
	EntryMethodManual    EntryMethod = "MANUAL"
	EntryMethodBiometric EntryMethod = "BIOMETRIC"
	EntryMethodKiosk     EntryMethod = "KIOSK"
	EntryMethodMobile    EntryMethod = "MOBILE"
)

// Capability defines a permission held by a worker. Authorization checks are
// set-membership tests against this closed enum, not string comparisons.
type Capability string

const (
	CapabilityManageSchedule  Capability = "MANAGE_SCHEDULE"
	CapabilityRecordTimeClock Capability = "RECORD_TIME_CLOCK"
	CapabilityViewReports     Capability = "VIEW_REPORTS"
	CapabilityManageWorkers   Capability = "MANAGE_WORKERS"
	CapabilityManageLocations Capability = "MANAGE_LOCATIONS"
)

// IsValid checks if the EmploymentStatus is valid
func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentStatusActive, EmploymentStatusInactive, EmploymentStatusOnLeave, EmploymentStatusTerminated:
		return true
	}
	return false
}

// IsValid checks if the ShiftType is valid
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeRegular, ShiftTypeOpening, ShiftTypeClosing, ShiftTypeSplit, ShiftTypeDouble:
		return true
	}
	return false
}

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusScheduled, ShiftStatusInProgress, ShiftStatusCompleted, ShiftStatusNoShow, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from this status
func (s ShiftStatus) IsTerminal() bool {
	switch s {
	case ShiftStatusCompleted, ShiftStatusNoShow, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the ClockType is valid
func (c ClockType) IsValid() bool {
	switch c {
	case ClockTypeClockIn, ClockTypeBreakStart, ClockTypeBreakEnd, ClockTypeClockOut:
		return true
	}
	return false
}

// IsValid checks if the WorkerClockStatus is valid
func (s WorkerClockStatus) IsValid() bool {
	switch s {
	case WorkerStatusClockedOut, WorkerStatusClockedIn, WorkerStatusOnBreak:
		return true
	}
	return false
}

// IsValid checks if the EntryMethod is valid
func (m EntryMethod) IsValid() bool {
	switch m {
	case EntryMethodManual, EntryMethodBiometric, EntryMethodKiosk, EntryMethodMobile:
		return true
	}
	return false
}

// IsValid checks if the Capability is valid
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityManageSchedule, CapabilityRecordTimeClock, CapabilityViewReports, CapabilityManageWorkers, CapabilityManageLocations:
		return true
	}
	return false
}
