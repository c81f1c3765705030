package testutils

import (
	"fmt"
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
)

// WorkerFactory provides methods to create test Worker data
type WorkerFactory struct{}

// NewWorkerFactory creates a new WorkerFactory
func NewWorkerFactory() *WorkerFactory {
	return &WorkerFactory{}
}

// Create creates a test Worker with default values
func (f *WorkerFactory) Create() *models.Worker {
	id := uuid.New()
	// Unique email derived from the UUID to avoid index conflicts
	email := fmt.Sprintf("worker-%s@test.com", id.String()[:8])

	return &models.Worker{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:         "Jordan Reyes",
		FirstName:        "Jordan",
		LastName:         "Reyes",
		Email:            email,
		PhoneNumber:      "+1-555-0123",
		EmploymentStatus: models.EmploymentStatusActive,
		Capabilities: models.CapabilitySet{
			models.CapabilityRecordTimeClock,
		},
		DefaultHourlyRate: 0,
	}
}

// WithEmail sets a custom email for the worker
func (f *WorkerFactory) WithEmail(email string) *models.Worker {
	worker := f.Create()
	worker.Email = email
	return worker
}

// WithEmploymentStatus sets a custom employment status for the worker
func (f *WorkerFactory) WithEmploymentStatus(status models.EmploymentStatus) *models.Worker {
	worker := f.Create()
	worker.EmploymentStatus = status
	return worker
}

// WithCapabilities sets the capability set for the worker
func (f *WorkerFactory) WithCapabilities(capabilities ...models.Capability) *models.Worker {
	worker := f.Create()
	worker.Capabilities = models.CapabilitySet(capabilities)
	return worker
}

// WithDefaultRate sets the worker's default hourly rate
func (f *WorkerFactory) WithDefaultRate(rate float64) *models.Worker {
	worker := f.Create()
	worker.DefaultHourlyRate = rate
	return worker
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	id := uuid.New()
	return &models.Location{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                fmt.Sprintf("Test Location %s", id.String()[:8]),
		Timezone:            "UTC",
		IsActive:            true,
		RequiredCoverage:    1,
		MaxConcurrentBreaks: 2,
	}
}

// WithName sets a custom name for the location
func (f *LocationFactory) WithName(name string) *models.Location {
	location := f.Create()
	location.Name = name
	return location
}

// WithCoverage sets the coverage thresholds for the location
func (f *LocationFactory) WithCoverage(requiredCoverage, maxConcurrentBreaks int) *models.Location {
	location := f.Create()
	location.RequiredCoverage = requiredCoverage
	location.MaxConcurrentBreaks = maxConcurrentBreaks
	return location
}

// WithActive sets the active flag for the location
func (f *LocationFactory) WithActive(isActive bool) *models.Location {
	location := f.Create()
	location.IsActive = isActive
	return location
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values. The shift lands on a
// fixed future date so past-date rules never trip in fixtures.
func (f *ShiftFactory) Create() *models.Shift {
	date := time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkerID:             uuid.New(),
		LocationID:           uuid.New(),
		Date:                 date,
		ScheduledStart:       "09:00",
		ScheduledEnd:         "17:00",
		ShiftType:            models.ShiftTypeRegular,
		Position:             "Cashier",
		Status:               models.ShiftStatusScheduled,
		BreakDurationMinutes: 30,
		HourlyRate:           16.50,
		TimeRangeHash:        models.TimeRangeHash("09:00", "17:00"),
	}
}

// ForWorker sets the worker ID for the shift
func (f *ShiftFactory) ForWorker(workerID uuid.UUID) *models.Shift {
	shift := f.Create()
	shift.WorkerID = workerID
	return shift
}

// ForWorkerAtLocation sets both references for the shift
func (f *ShiftFactory) ForWorkerAtLocation(workerID, locationID uuid.UUID) *models.Shift {
	shift := f.Create()
	shift.WorkerID = workerID
	shift.LocationID = locationID
	return shift
}

// WithTimes sets the scheduled range and rehashes it
func (f *ShiftFactory) WithTimes(start, end string) *models.Shift {
	shift := f.Create()
	shift.ScheduledStart = start
	shift.ScheduledEnd = end
	shift.TimeRangeHash = models.TimeRangeHash(start, end)
	return shift
}

// WithStatus sets a custom lifecycle status for the shift
func (f *ShiftFactory) WithStatus(status models.ShiftStatus) *models.Shift {
	shift := f.Create()
	shift.Status = status
	return shift
}

// WithShiftType sets a custom shift type
func (f *ShiftFactory) WithShiftType(shiftType models.ShiftType) *models.Shift {
	shift := f.Create()
	shift.ShiftType = shiftType
	return shift
}

// TimeClockEntryFactory provides methods to create test TimeClockEntry data
type TimeClockEntryFactory struct{}

// NewTimeClockEntryFactory creates a new TimeClockEntryFactory
func NewTimeClockEntryFactory() *TimeClockEntryFactory {
	return &TimeClockEntryFactory{}
}

// Create creates a test TimeClockEntry with default values
func (f *TimeClockEntryFactory) Create() *models.TimeClockEntry {
	return &models.TimeClockEntry{
		ID:          uuid.New(),
		WorkerID:    uuid.New(),
		LocationID:  uuid.New(),
		ClockType:   models.ClockTypeClockIn,
		Timestamp:   time.Now().UTC(),
		EntryMethod: models.EntryMethodManual,
		CreatedAt:   time.Now(),
	}
}

// ForWorkerAtLocation sets both references for the entry
func (f *TimeClockEntryFactory) ForWorkerAtLocation(workerID, locationID uuid.UUID) *models.TimeClockEntry {
	entry := f.Create()
	entry.WorkerID = workerID
	entry.LocationID = locationID
	return entry
}

// WithClockType sets a custom clock type for the entry
func (f *TimeClockEntryFactory) WithClockType(clockType models.ClockType) *models.TimeClockEntry {
	entry := f.Create()
	entry.ClockType = clockType
	return entry
}

// WithTimestamp sets a custom timestamp for the entry
func (f *TimeClockEntryFactory) WithTimestamp(ts time.Time) *models.TimeClockEntry {
	entry := f.Create()
	entry.Timestamp = ts
	return entry
}

// FactorySet provides access to all factories
type FactorySet struct {
	Worker         *WorkerFactory
	Location       *LocationFactory
	Shift          *ShiftFactory
	TimeClockEntry *TimeClockEntryFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Worker:         NewWorkerFactory(),
		Location:       NewLocationFactory(),
		Shift:          NewShiftFactory(),
		TimeClockEntry: NewTimeClockEntryFactory(),
	}
}

// CreateStaffedLocation creates a location with a worker and one scheduled
// shift linking them, for tests that need the full reference chain.
func (fs *FactorySet) CreateStaffedLocation() (*models.Location, *models.Worker, *models.Shift) {
	location := fs.Location.Create()
	worker := fs.Worker.Create()
	shift := fs.Shift.ForWorkerAtLocation(worker.ID, location.ID)
	return location, worker, shift
}
