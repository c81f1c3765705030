package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoverageMode selects which shifts count toward totals
type CoverageMode string

const (
	// CoverageModeEffective excludes cancelled and no-show shifts entirely
	CoverageModeEffective CoverageMode = "effective"
	// CoverageModeAll counts cancelled and no-show shifts in historical
	// totals; they still never satisfy a coverage flag
	CoverageModeAll CoverageMode = "all"
)

// IsValid checks if the CoverageMode is valid
func (m CoverageMode) IsValid() bool {
	return m == CoverageModeEffective || m == CoverageModeAll
}

// DaySummary is the staffing picture for a single date
type DaySummary struct {
	Date                  string  `json:"date"`
	ShiftCount            int     `json:"shift_count"`
	UniqueWorkers         int     `json:"unique_workers"`
	TotalScheduledHours   float64 `json:"total_scheduled_hours"`
	HasOpeningShift       bool    `json:"has_opening_shift"`
	HasClosingShift       bool    `json:"has_closing_shift"`
	HasSupervisorCoverage bool    `json:"has_supervisor_coverage"`
}

// WeekSummary aggregates day summaries over a date range
type WeekSummary struct {
	From                 string       `json:"from"`
	To                   string       `json:"to"`
	Mode                 CoverageMode `json:"mode"`
	Days                 []DaySummary `json:"days"`
	TotalShifts          int          `json:"total_shifts"`
	TotalScheduledHours  float64      `json:"total_scheduled_hours"`
	UniqueWorkers        int          `json:"unique_workers"`
	SupervisorShiftCount int          `json:"supervisor_shift_count"`
}

// CoverageService aggregates shifts into staffing summaries. Analysis is
// read-only and side-effect-free.
type CoverageService struct {
	shiftRepo    repository.ShiftRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
}

// NewCoverageService creates a new coverage service
func NewCoverageService(shiftRepo repository.ShiftRepositoryInterface, locationRepo repository.LocationRepositoryInterface) *CoverageService {
	return &CoverageService{shiftRepo: shiftRepo, locationRepo: locationRepo}
}

// AnalyzeLocation loads a location's shifts for the date range and runs the
// pure aggregation over them.
func (s *CoverageService) AnalyzeLocation(locationID uuid.UUID, from, to time.Time, mode CoverageMode) (*WeekSummary, error) {
	if mode == "" {
		mode = CoverageModeEffective
	}
	if !mode.IsValid() {
		return nil, apperrors.ErrInvalidCoverageMode
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.locationRepo.GetByID(locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("location", locationID)
		}
		return nil, fmt.Errorf("failed to verify location: %w", err)
	}

	shifts, err := s.shiftRepo.GetByLocationAndDateRange(locationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	summary := Analyze(shifts, from, to, mode)
	return &summary, nil
}

// Analyze folds a shift collection into a WeekSummary. An empty input yields
// zeroed counts and no coverage flags. Cancelled shifts never satisfy a
// coverage flag; in effective mode they (and no-shows) are excluded from
// counts as well.
func Analyze(shifts []models.Shift, from, to time.Time, mode CoverageMode) WeekSummary {
	summary := WeekSummary{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		Mode: mode,
		Days: []DaySummary{},
	}

	type dayAccum struct {
		shiftCount int
		workers    map[uuid.UUID]struct{}
		hours      float64
		opening    bool
		closing    bool
		supervisor bool
	}

	days := map[string]*dayAccum{}
	weekWorkers := map[uuid.UUID]struct{}{}

	for i := range shifts {
		shift := &shifts[i]
		excludedFromCoverage := shift.Status == models.ShiftStatusCancelled || shift.Status == models.ShiftStatusNoShow
		if mode == CoverageModeEffective && excludedFromCoverage {
			continue
		}

		key := shift.Date.Format("2006-01-02")
		accum, ok := days[key]
		if !ok {
			accum = &dayAccum{workers: map[uuid.UUID]struct{}{}}
			days[key] = accum
		}

		accum.shiftCount++
		accum.workers[shift.WorkerID] = struct{}{}
		weekWorkers[shift.WorkerID] = struct{}{}
		summary.TotalShifts++

		if hours, err := shift.DurationHours(); err == nil {
			accum.hours += hours
			summary.TotalScheduledHours += hours
		}

		// Coverage flags only ever come from shifts that are still live.
		if !excludedFromCoverage {
			if shift.ShiftType == models.ShiftTypeOpening {
				accum.opening = true
			}
			if shift.ShiftType == models.ShiftTypeClosing {
				accum.closing = true
			}
			if shift.IsSupervisorShift {
				accum.supervisor = true
				summary.SupervisorShiftCount++
			}
		}
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		accum := days[key]
		summary.Days = append(summary.Days, DaySummary{
			Date:                  key,
			ShiftCount:            accum.shiftCount,
			UniqueWorkers:         len(accum.workers),
			TotalScheduledHours:   accum.hours,
			HasOpeningShift:       accum.opening,
			HasClosingShift:       accum.closing,
			HasSupervisorCoverage: accum.supervisor,
		})
	}

	summary.UniqueWorkers = len(weekWorkers)
	return summary
}
