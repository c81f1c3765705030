package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// clockTransitions is the complete transition table. Any (status, action)
// pair absent from it is invalid and records no entry.
var clockTransitions = map[models.WorkerClockStatus]map[models.ClockType]models.WorkerClockStatus{
	models.WorkerStatusClockedOut: {
		models.ClockTypeClockIn: models.WorkerStatusClockedIn,
	},
	models.WorkerStatusClockedIn: {
		models.ClockTypeBreakStart: models.WorkerStatusOnBreak,
		models.ClockTypeClockOut:   models.WorkerStatusClockedOut,
	},
	models.WorkerStatusOnBreak: {
		models.ClockTypeBreakEnd: models.WorkerStatusClockedIn,
		models.ClockTypeClockOut: models.WorkerStatusClockedOut,
	},
}

// DeriveStatus folds a worker's ordered entry log into their current status.
// Absence of entries means CLOCKED_OUT. This is the only way status is ever
// computed; there is no cached status field anywhere to drift from the log.
func DeriveStatus(entries []models.TimeClockEntry) models.WorkerClockStatus {
	status := models.WorkerStatusClockedOut
	for _, entry := range entries {
		if next, ok := clockTransitions[status][entry.ClockType]; ok {
			status = next
		}
	}
	return status
}

// statusAfter maps a single entry to the status it implies, used when
// deriving headcounts from each worker's latest entry.
func statusAfter(clockType models.ClockType) models.WorkerClockStatus {
	switch clockType {
	case models.ClockTypeClockIn, models.ClockTypeBreakEnd:
		return models.WorkerStatusClockedIn
	case models.ClockTypeBreakStart:
		return models.WorkerStatusOnBreak
	default:
		return models.WorkerStatusClockedOut
	}
}

// TimeClockService is the event-sourced state machine for clock events.
// Appends are serialized per worker; the coverage guard and its append run
// as one atomic unit per location.
type TimeClockService struct {
	entryRepo    repository.TimeClockEntryRepositoryInterface
	workerRepo   repository.WorkerRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	policy       *config.CoveragePolicy

	workerLocks   sync.Map // uuid.UUID -> *sync.Mutex
	locationLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// NewTimeClockService creates a new time clock service
func NewTimeClockService(entryRepo repository.TimeClockEntryRepositoryInterface, workerRepo repository.WorkerRepositoryInterface, locationRepo repository.LocationRepositoryInterface, policy *config.CoveragePolicy) *TimeClockService {
	return &TimeClockService{
		entryRepo:    entryRepo,
		workerRepo:   workerRepo,
		locationRepo: locationRepo,
		policy:       policy,
	}
}

// RecordEntryRequest represents a clock action request
type RecordEntryRequest struct {
	WorkerID    uuid.UUID          `json:"worker_id" validate:"required"`
	LocationID  uuid.UUID          `json:"location_id" validate:"required"`
	ClockType   models.ClockType   `json:"clock_type" validate:"required"`
	Timestamp   time.Time          `json:"timestamp" validate:"required"`
	EntryMethod models.EntryMethod `json:"entry_method,omitempty"`
}

// TimeClockEntryResponse represents a recorded clock event
type TimeClockEntryResponse struct {
	ID          uuid.UUID          `json:"id"`
	WorkerID    uuid.UUID          `json:"worker_id"`
	LocationID  uuid.UUID          `json:"location_id"`
	ClockType   models.ClockType   `json:"clock_type"`
	Timestamp   string             `json:"timestamp"`
	EntryMethod models.EntryMethod `json:"entry_method"`
	CreatedAt   string             `json:"created_at"`
}

// WorkerStatusResponse represents a worker's derived clock status
type WorkerStatusResponse struct {
	WorkerID uuid.UUID                `json:"worker_id"`
	Status   models.WorkerClockStatus `json:"status"`
	AsOf     string                   `json:"as_of"`
}

// EntryListResponse represents a paginated list of clock entries
type EntryListResponse struct {
	Entries  []TimeClockEntryResponse `json:"entries"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

func (s *TimeClockService) workerLock(workerID uuid.UUID) *sync.Mutex {
	lock, _ := s.workerLocks.LoadOrStore(workerID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *TimeClockService) locationLock(locationID uuid.UUID) *sync.Mutex {
	lock, _ := s.locationLocks.LoadOrStore(locationID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Record validates and appends a clock event for a worker. The worker's
// currently derived status decides whether the action is legal; a rejected
// action appends nothing. Two racing calls for the same worker serialize on
// the per-worker lock, so the loser re-derives against the winner's entry
// and fails with an InvalidTransitionError.
func (s *TimeClockService) Record(req *RecordEntryRequest) (*TimeClockEntryResponse, error) {
	if !req.ClockType.IsValid() {
		return nil, apperrors.ErrInvalidClockType
	}
	method := req.EntryMethod
	if method == "" {
		method = models.EntryMethodManual
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid entry method %q", req.EntryMethod)
	}
	if req.Timestamp.IsZero() {
		return nil, &apperrors.ValidationError{Violations: []apperrors.Violation{{
			Field:    "timestamp",
			Code:     "required",
			Message:  "timestamp is required",
			Severity: apperrors.SeverityError,
		}}}
	}

	worker, err := s.workerRepo.GetByID(req.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("worker", req.WorkerID)
		}
		return nil, fmt.Errorf("failed to verify worker: %w", err)
	}
	location, err := s.locationRepo.GetByID(req.LocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("location", req.LocationID)
		}
		return nil, fmt.Errorf("failed to verify location: %w", err)
	}

	lock := s.workerLock(worker.ID)
	lock.Lock()
	defer lock.Unlock()

	entries, err := s.entryRepo.GetByWorker(worker.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry log: %w", err)
	}

	if len(entries) > 0 {
		latest := entries[len(entries)-1]
		if !req.Timestamp.After(latest.Timestamp) {
			return nil, &apperrors.ValidationError{Violations: []apperrors.Violation{{
				Field:    "timestamp",
				Code:     "non_monotonic",
				Message:  apperrors.ErrNonMonotonicTimestamp.Error(),
				Severity: apperrors.SeverityError,
			}}}
		}
	}

	current := DeriveStatus(entries)
	if _, ok := clockTransitions[current][req.ClockType]; !ok {
		return nil, &apperrors.InvalidTransitionError{
			From:      string(current),
			Attempted: string(req.ClockType),
		}
	}

	entry := &models.TimeClockEntry{
		WorkerID:    worker.ID,
		LocationID:  location.ID,
		ClockType:   req.ClockType,
		Timestamp:   req.Timestamp,
		EntryMethod: method,
	}

	if req.ClockType == models.ClockTypeBreakStart {
		// The guard read and the append must be one atomic unit per
		// location, or two workers could both take the last break slot.
		locLock := s.locationLock(location.ID)
		locLock.Lock()
		defer locLock.Unlock()

		if err := s.checkBreakCoverage(location, worker.ID); err != nil {
			return nil, err
		}
		if err := s.entryRepo.Append(entry); err != nil {
			return nil, fmt.Errorf("failed to append entry: %w", err)
		}
		return s.toEntryResponse(entry), nil
	}

	if err := s.entryRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to append entry: %w", err)
	}
	return s.toEntryResponse(entry), nil
}

// checkBreakCoverage enforces the location's coverage policy for a pending
// BREAK_START. Thresholds come from the location row when set, otherwise
// from the policy file or configured defaults. The requester is excluded
// from the floor count by identity rather than by subtraction: a worker
// whose clock-in was recorded at another location is not in this
// location's latest-entry set at all.
func (s *TimeClockService) checkBreakCoverage(location *models.Location, requesterID uuid.UUID) error {
	thresholds := s.policy.ThresholdsFor(location.Name)
	required := location.RequiredCoverage
	if required == 0 {
		required = thresholds.RequiredCoverage
	}
	maxBreaks := location.MaxConcurrentBreaks
	if maxBreaks == 0 {
		maxBreaks = thresholds.MaxConcurrentBreaks
	}

	latest, err := s.entryRepo.GetLatestPerWorkerAtLocation(location.ID)
	if err != nil {
		return fmt.Errorf("failed to derive location headcount: %w", err)
	}

	remaining := 0
	onBreak := 0
	for _, entry := range latest {
		if entry.WorkerID == requesterID {
			continue
		}
		switch statusAfter(entry.ClockType) {
		case models.WorkerStatusClockedIn:
			remaining++
		case models.WorkerStatusOnBreak:
			onBreak++
		}
	}

	if remaining < required {
		return &apperrors.CoverageViolationError{
			LocationID: location.ID,
			Reason:     fmt.Sprintf("granting the break would leave %d clocked-in workers, below the required %d", remaining, required),
		}
	}
	if onBreak+1 > maxBreaks {
		return &apperrors.CoverageViolationError{
			LocationID: location.ID,
			Reason:     fmt.Sprintf("%d workers are already on break, at the limit of %d", onBreak, maxBreaks),
		}
	}
	return nil
}

// CurrentStatus derives a worker's clock status from their entry log. This
// is a pure read; it never consults or maintains a mutable status field.
func (s *TimeClockService) CurrentStatus(workerID uuid.UUID) (*WorkerStatusResponse, error) {
	if _, err := s.workerRepo.GetByID(workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("worker", workerID)
		}
		return nil, fmt.Errorf("failed to verify worker: %w", err)
	}

	entries, err := s.entryRepo.GetByWorker(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry log: %w", err)
	}

	return &WorkerStatusResponse{
		WorkerID: workerID,
		Status:   DeriveStatus(entries),
		AsOf:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GetEntries retrieves a worker's entries within a time range
func (s *TimeClockService) GetEntries(workerID uuid.UUID, from, to time.Time, page, pageSize int) (*EntryListResponse, error) {
	if _, err := s.workerRepo.GetByID(workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("worker", workerID)
		}
		return nil, fmt.Errorf("failed to verify worker: %w", err)
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	entries, total, err := s.entryRepo.GetByWorkerAndDateRange(workerID, from, to, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	responses := make([]TimeClockEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *s.toEntryResponse(&entries[i])
	}

	return &EntryListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *TimeClockService) toEntryResponse(entry *models.TimeClockEntry) *TimeClockEntryResponse {
	return &TimeClockEntryResponse{
		ID:          entry.ID,
		WorkerID:    entry.WorkerID,
		LocationID:  entry.LocationID,
		ClockType:   entry.ClockType,
		Timestamp:   entry.Timestamp.UTC().Format(time.RFC3339),
		EntryMethod: entry.EntryMethod,
		CreatedAt:   entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
