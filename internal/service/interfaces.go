package service

import (
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// WorkerServiceInterface defines the interface for worker service
type WorkerServiceInterface interface {
	CreateWorker(req *CreateWorkerRequest) (*WorkerResponse, error)
	GetWorker(id uuid.UUID) (*WorkerResponse, error)
	ListWorkers(status models.EmploymentStatus, page, pageSize int) (*WorkerListResponse, error)
	UpdateWorker(id uuid.UUID, req *UpdateWorkerRequest) (*WorkerResponse, error)
}

// LocationServiceInterface defines the interface for location service
type LocationServiceInterface interface {
	CreateLocation(req *CreateLocationRequest) (*LocationResponse, error)
	GetLocation(id uuid.UUID) (*LocationResponse, error)
	ListLocations(page, pageSize int) (*LocationListResponse, error)
	UpdateLocation(id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error)
}

// ShiftSchedulerServiceInterface defines the interface for shift scheduling
type ShiftSchedulerServiceInterface interface {
	Schedule(draft *ShiftDraft) (*ScheduleShiftResponse, error)
	GetShift(id uuid.UUID) (*ShiftResponse, error)
	GetWorkerShifts(workerID uuid.UUID, from, to time.Time, page, pageSize int) (*ShiftListResponse, error)
	Transition(shiftID uuid.UUID, newStatus models.ShiftStatus) (*ShiftResponse, error)
}

// TimeClockServiceInterface defines the interface for the time clock
type TimeClockServiceInterface interface {
	Record(req *RecordEntryRequest) (*TimeClockEntryResponse, error)
	CurrentStatus(workerID uuid.UUID) (*WorkerStatusResponse, error)
	GetEntries(workerID uuid.UUID, from, to time.Time, page, pageSize int) (*EntryListResponse, error)
}

// CoverageServiceInterface defines the interface for coverage analysis
type CoverageServiceInterface interface {
	AnalyzeLocation(locationID uuid.UUID, from, to time.Time, mode CoverageMode) (*WeekSummary, error)
}
