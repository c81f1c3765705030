package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shiftStatusTransitions is the shift lifecycle. Statuses only move forward;
// CANCELLED and NO_SHOW are terminal exits from the live path.
var shiftStatusTransitions = map[models.ShiftStatus][]models.ShiftStatus{
	models.ShiftStatusScheduled:  {models.ShiftStatusInProgress, models.ShiftStatusCancelled, models.ShiftStatusNoShow},
	models.ShiftStatusInProgress: {models.ShiftStatusCompleted, models.ShiftStatusCancelled, models.ShiftStatusNoShow},
}

// ShiftSchedulerService validates, prices, and persists shift drafts, and
// drives the shift lifecycle.
type ShiftSchedulerService struct {
	shiftRepo    repository.ShiftRepositoryInterface
	workerRepo   repository.WorkerRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	shiftRules   *ShiftValidator
	validator    *validator.Validate
	cfg          *config.Config
}

// NewShiftSchedulerService creates a new shift scheduler service
func NewShiftSchedulerService(shiftRepo repository.ShiftRepositoryInterface, workerRepo repository.WorkerRepositoryInterface, locationRepo repository.LocationRepositoryInterface, shiftRules *ShiftValidator, cfg *config.Config) *ShiftSchedulerService {
	return &ShiftSchedulerService{
		shiftRepo:    shiftRepo,
		workerRepo:   workerRepo,
		locationRepo: locationRepo,
		shiftRules:   shiftRules,
		validator:    validator.New(),
		cfg:          cfg,
	}
}

// ShiftResponse represents a shift in API responses
type ShiftResponse struct {
	ID                        uuid.UUID          `json:"id"`
	WorkerID                  uuid.UUID          `json:"worker_id"`
	LocationID                uuid.UUID          `json:"location_id"`
	Date                      string             `json:"date"`
	ScheduledStart            string             `json:"scheduled_start"`
	ScheduledEnd              string             `json:"scheduled_end"`
	DurationHours             float64            `json:"duration_hours"`
	ShiftType                 models.ShiftType   `json:"shift_type"`
	Position                  string             `json:"position"`
	IsSupervisorShift         bool               `json:"is_supervisor_shift"`
	RequiresSupervisorPresent bool               `json:"requires_supervisor_present"`
	Status                    models.ShiftStatus `json:"status"`
	BreakDurationMinutes      int                `json:"break_duration_minutes"`
	HourlyRate                float64            `json:"hourly_rate"`
	Notes                     string             `json:"notes,omitempty"`
	CreatedAt                 string             `json:"created_at"`
	UpdatedAt                 string             `json:"updated_at"`
}

// ScheduleShiftResponse is the result of a successful scheduling call.
// Warnings carry the advisory violations that did not block the shift.
type ScheduleShiftResponse struct {
	Shift    ShiftResponse         `json:"shift"`
	Warnings []apperrors.Violation `json:"warnings,omitempty"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// UpdateShiftStatusRequest represents a lifecycle transition request
type UpdateShiftStatusRequest struct {
	Status models.ShiftStatus `json:"status" validate:"required"`
}

// Schedule runs a draft through the full pipeline: rule validation, worker
// and location checks, overlap detection, rate suggestion, and persistence.
// The overlap query and the insert share one transaction so two racing
// drafts for the same worker cannot both land.
func (s *ShiftSchedulerService) Schedule(draft *ShiftDraft) (*ScheduleShiftResponse, error) {
	if err := s.validator.Struct(draft); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ok, violations := s.shiftRules.Validate(draft)
	if !ok {
		blocking := make([]apperrors.Violation, 0, len(violations))
		for _, v := range violations {
			if v.Severity == apperrors.SeverityError {
				blocking = append(blocking, v)
			}
		}
		return nil, apperrors.NewValidationError(blocking)
	}
	warnings := make([]apperrors.Violation, 0)
	for _, v := range violations {
		if v.Severity == apperrors.SeverityWarning {
			warnings = append(warnings, v)
		}
	}

	worker, err := s.workerRepo.GetByID(draft.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("worker", draft.WorkerID)
		}
		return nil, fmt.Errorf("failed to verify worker: %w", err)
	}
	if !worker.IsSchedulable() {
		return nil, apperrors.NewValidationError([]apperrors.Violation{{
			Field:    "worker_id",
			Code:     "not_schedulable",
			Message:  fmt.Sprintf("worker has employment status %s and cannot be scheduled", worker.EmploymentStatus),
			Severity: apperrors.SeverityError,
		}})
	}

	location, err := s.locationRepo.GetByID(draft.LocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("location", draft.LocationID)
		}
		return nil, fmt.Errorf("failed to verify location: %w", err)
	}
	if !location.IsActive {
		return nil, apperrors.NewValidationError([]apperrors.Violation{{
			Field:    "location_id",
			Code:     "location_inactive",
			Message:  fmt.Sprintf("location %s is inactive", location.Name),
			Severity: apperrors.SeverityError,
		}})
	}

	shiftType := draft.ShiftType
	if shiftType == "" {
		shiftType = models.ShiftTypeRegular
	}

	shift := &models.Shift{
		WorkerID:                  worker.ID,
		LocationID:                location.ID,
		Date:                      truncateToDate(draft.Date),
		ScheduledStart:            draft.ScheduledStart,
		ScheduledEnd:              draft.ScheduledEnd,
		ShiftType:                 shiftType,
		Position:                  draft.Position,
		IsSupervisorShift:         draft.IsSupervisorShift,
		RequiresSupervisorPresent: draft.RequiresSupervisorPresent,
		Status:                    models.ShiftStatusScheduled,
		BreakDurationMinutes:      draft.BreakDurationMinutes,
		HourlyRate:                s.suggestRate(draft, worker),
		Notes:                     draft.Notes,
	}

	err = s.shiftRepo.DB().Transaction(func(tx *gorm.DB) error {
		existing, err := s.shiftRepo.GetActiveByWorkerAndDate(tx, worker.ID, shift.Date)
		if err != nil {
			return fmt.Errorf("failed to check existing shifts: %w", err)
		}
		for i := range existing {
			if rangesOverlap(shift.ScheduledStart, shift.ScheduledEnd, existing[i].ScheduledStart, existing[i].ScheduledEnd) {
				return &apperrors.OverlapError{ExistingShiftID: existing[i].ID}
			}
		}
		return s.shiftRepo.CreateInTx(tx, shift)
	})
	if err != nil {
		var overlapErr *apperrors.OverlapError
		if errors.As(err, &overlapErr) {
			return nil, overlapErr
		}
		return nil, err
	}

	return &ScheduleShiftResponse{
		Shift:    s.toResponse(shift),
		Warnings: warnings,
	}, nil
}

// GetShift retrieves a shift by ID
func (s *ShiftSchedulerService) GetShift(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("shift", id)
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	resp := s.toResponse(shift)
	return &resp, nil
}

// GetWorkerShifts retrieves a worker's shifts within a date range
func (s *ShiftSchedulerService) GetWorkerShifts(workerID uuid.UUID, from, to time.Time, page, pageSize int) (*ShiftListResponse, error) {
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

	shifts, total, err := s.shiftRepo.GetByWorkerAndDateRange(workerID, from, to, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = s.toResponse(&shifts[i])
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Transition moves a shift to a new lifecycle status. Terminal statuses
// accept no further transitions.
func (s *ShiftSchedulerService) Transition(shiftID uuid.UUID, newStatus models.ShiftStatus) (*ShiftResponse, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidationError([]apperrors.Violation{{
			Field:    "status",
			Code:     "invalid_enum",
			Message:  fmt.Sprintf("unknown shift status %q", newStatus),
			Severity: apperrors.SeverityError,
		}})
	}

	shift, err := s.shiftRepo.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("shift", shiftID)
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if !statusTransitionAllowed(shift.Status, newStatus) {
		return nil, &apperrors.InvalidStatusTransitionError{
			From:      string(shift.Status),
			Attempted: string(newStatus),
		}
	}

	if err := s.shiftRepo.UpdateStatus(shift.ID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update shift status: %w", err)
	}
	shift.Status = newStatus
	resp := s.toResponse(shift)
	return &resp, nil
}

func statusTransitionAllowed(from, to models.ShiftStatus) bool {
	for _, allowed := range shiftStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// suggestRate picks the hourly rate for a draft. An explicit rate always
// wins; otherwise the base depends on supervisor duty and the position
// title adds a premium. The worker's default rate overrides the configured
// base when set.
func (s *ShiftSchedulerService) suggestRate(draft *ShiftDraft, worker *models.Worker) float64 {
	if draft.HourlyRate != nil {
		return *draft.HourlyRate
	}

	rate := s.cfg.BaseHourlyRate
	if worker.DefaultHourlyRate > 0 {
		rate = worker.DefaultHourlyRate
	}
	if draft.IsSupervisorShift && rate < s.cfg.SupervisorHourlyRate {
		rate = s.cfg.SupervisorHourlyRate
	}

	position := strings.ToLower(draft.Position)
	switch {
	case strings.Contains(position, "manager"):
		rate += s.cfg.ManagerRatePremium
	case strings.Contains(position, "lead"):
		rate += s.cfg.LeadRatePremium
	}
	return rate
}

// rangesOverlap reports whether two scheduled ranges on the same date
// intersect, treating an end before its start as wrapping past midnight.
func rangesOverlap(startA, endA, startB, endB string) bool {
	aStart, aEnd, okA := rangeMinutes(startA, endA)
	bStart, bEnd, okB := rangeMinutes(startB, endB)
	if !okA || !okB {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// rangeMinutes converts an HH:MM range to minute offsets from the date's
// midnight, with wrapping ends pushed past 1440.
func rangeMinutes(start, end string) (int, int, bool) {
	st, err := time.Parse(models.ScheduledTimeLayout, start)
	if err != nil {
		return 0, 0, false
	}
	et, err := time.Parse(models.ScheduledTimeLayout, end)
	if err != nil {
		return 0, 0, false
	}
	startMin := st.Hour()*60 + st.Minute()
	endMin := et.Hour()*60 + et.Minute()
	if endMin < startMin {
		endMin += 24 * 60
	}
	return startMin, endMin, true
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ShiftSchedulerService) toResponse(shift *models.Shift) ShiftResponse {
	hours, _ := shift.DurationHours()
	return ShiftResponse{
		ID:                        shift.ID,
		WorkerID:                  shift.WorkerID,
		LocationID:                shift.LocationID,
		Date:                      shift.Date.Format("2006-01-02"),
		ScheduledStart:            shift.ScheduledStart,
		ScheduledEnd:              shift.ScheduledEnd,
		DurationHours:             hours,
		ShiftType:                 shift.ShiftType,
		Position:                  shift.Position,
		IsSupervisorShift:         shift.IsSupervisorShift,
		RequiresSupervisorPresent: shift.RequiresSupervisorPresent,
		Status:                    shift.Status,
		BreakDurationMinutes:      shift.BreakDurationMinutes,
		HourlyRate:                shift.HourlyRate,
		Notes:                     shift.Notes,
		CreatedAt:                 shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 shift.UpdatedAt.Format(time.RFC3339),
	}
}
