package service

import (
	"fmt"
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"

	"github.com/google/uuid"
)

// Shift duration and break bounds
const (
	MinShiftDurationHours = 0.5
	MaxShiftDurationHours = 12.0
	LongShiftHours        = 8.0
	MaxBreakMinutes       = 120
)

// ShiftDraft is a proposed shift before validation and persistence
type ShiftDraft struct {
	WorkerID                  uuid.UUID        `json:"worker_id" validate:"required"`
	LocationID                uuid.UUID        `json:"location_id" validate:"required"`
	Date                      time.Time        `json:"date" validate:"required"`
	ScheduledStart            string           `json:"scheduled_start" validate:"required"`
	ScheduledEnd              string           `json:"scheduled_end" validate:"required"`
	ShiftType                 models.ShiftType `json:"shift_type,omitempty"`
	Position                  string           `json:"position" validate:"required,max=100"`
	IsSupervisorShift         bool             `json:"is_supervisor_shift,omitempty"`
	RequiresSupervisorPresent bool             `json:"requires_supervisor_present,omitempty"`
	BreakDurationMinutes      int              `json:"break_duration_minutes,omitempty"`
	HourlyRate                *float64         `json:"hourly_rate,omitempty"`
	Notes                     string           `json:"notes,omitempty"`
}

// ShiftValidator is a pure rule checker for shift drafts. It holds no state
// beyond a clock, injected so tests can pin the current moment.
type ShiftValidator struct {
	now func() time.Time
}

// NewShiftValidator creates a new shift validator
func NewShiftValidator() *ShiftValidator {
	return &ShiftValidator{now: time.Now}
}

// NewShiftValidatorAt creates a shift validator with a fixed clock
func NewShiftValidatorAt(now func() time.Time) *ShiftValidator {
	return &ShiftValidator{now: now}
}

// Validate evaluates every rule against the draft and returns the complete
// violation list. Checks are not short-circuited so callers always see all
// problems at once. The draft is acceptable when no violation carries ERROR
// severity.
func (v *ShiftValidator) Validate(draft *ShiftDraft) (bool, []apperrors.Violation) {
	var violations []apperrors.Violation

	startOK := validScheduledTime(draft.ScheduledStart)
	if !startOK {
		violations = append(violations, apperrors.Violation{
			Field:    "scheduled_start",
			Code:     "malformed_time",
			Message:  fmt.Sprintf("scheduled start %q is not a valid HH:MM time", draft.ScheduledStart),
			Severity: apperrors.SeverityError,
		})
	}
	endOK := validScheduledTime(draft.ScheduledEnd)
	if !endOK {
		violations = append(violations, apperrors.Violation{
			Field:    "scheduled_end",
			Code:     "malformed_time",
			Message:  fmt.Sprintf("scheduled end %q is not a valid HH:MM time", draft.ScheduledEnd),
			Severity: apperrors.SeverityError,
		})
	}

	if startOK && endOK {
		hours, err := models.ScheduledDurationHours(draft.ScheduledStart, draft.ScheduledEnd)
		if err == nil {
			if hours < MinShiftDurationHours {
				violations = append(violations, apperrors.Violation{
					Field:    "scheduled_end",
					Code:     "duration_too_short",
					Message:  fmt.Sprintf("shift duration %.2fh is below the %.1fh minimum", hours, MinShiftDurationHours),
					Severity: apperrors.SeverityError,
				})
			}
			if hours > MaxShiftDurationHours {
				violations = append(violations, apperrors.Violation{
					Field:    "scheduled_end",
					Code:     "duration_too_long",
					Message:  fmt.Sprintf("shift duration %.2fh exceeds the %.0fh maximum", hours, MaxShiftDurationHours),
					Severity: apperrors.SeverityError,
				})
			}
			// Advisory only: long shifts prompt confirmation, they never block.
			if hours > LongShiftHours && hours <= MaxShiftDurationHours {
				violations = append(violations, apperrors.Violation{
					Field:    "scheduled_end",
					Code:     "long_shift",
					Message:  fmt.Sprintf("shift duration %.2fh exceeds %.0f hours", hours, LongShiftHours),
					Severity: apperrors.SeverityWarning,
				})
			}
		}
	}

	if startOK && !draft.Date.IsZero() {
		if startsInPast(draft.Date, draft.ScheduledStart, v.now()) {
			violations = append(violations, apperrors.Violation{
				Field:    "date",
				Code:     "past_date",
				Message:  "shift cannot be scheduled in the past",
				Severity: apperrors.SeverityError,
			})
		}
	}
	if draft.Date.IsZero() {
		violations = append(violations, apperrors.Violation{
			Field:    "date",
			Code:     "required",
			Message:  "date is required",
			Severity: apperrors.SeverityError,
		})
	}

	if draft.BreakDurationMinutes < 0 || draft.BreakDurationMinutes > MaxBreakMinutes {
		violations = append(violations, apperrors.Violation{
			Field:    "break_duration_minutes",
			Code:     "break_out_of_range",
			Message:  fmt.Sprintf("break duration must be between 0 and %d minutes", MaxBreakMinutes),
			Severity: apperrors.SeverityError,
		})
	}

	if draft.Position == "" {
		violations = append(violations, apperrors.Violation{
			Field:    "position",
			Code:     "required",
			Message:  "position is required",
			Severity: apperrors.SeverityError,
		})
	}

	if draft.WorkerID == uuid.Nil {
		violations = append(violations, apperrors.Violation{
			Field:    "worker_id",
			Code:     "required",
			Message:  "worker reference is required",
			Severity: apperrors.SeverityError,
		})
	}
	if draft.LocationID == uuid.Nil {
		violations = append(violations, apperrors.Violation{
			Field:    "location_id",
			Code:     "required",
			Message:  "location reference is required",
			Severity: apperrors.SeverityError,
		})
	}

	if draft.ShiftType != "" && !draft.ShiftType.IsValid() {
		violations = append(violations, apperrors.Violation{
			Field:    "shift_type",
			Code:     "invalid_enum",
			Message:  fmt.Sprintf("unknown shift type %q", draft.ShiftType),
			Severity: apperrors.SeverityError,
		})
	}

	return !hasBlockingViolation(violations), violations
}

// hasBlockingViolation reports whether any violation carries ERROR severity
func hasBlockingViolation(violations []apperrors.Violation) bool {
	for _, v := range violations {
		if v.Severity == apperrors.SeverityError {
			return true
		}
	}
	return false
}

func validScheduledTime(value string) bool {
	_, err := time.Parse(models.ScheduledTimeLayout, value)
	return err == nil
}

// startsInPast combines the shift date with its start time and compares
// against the current moment in the date's location.
func startsInPast(date time.Time, start string, now time.Time) bool {
	st, err := time.Parse(models.ScheduledTimeLayout, start)
	if err != nil {
		return false
	}
	startAt := time.Date(date.Year(), date.Month(), date.Day(), st.Hour(), st.Minute(), 0, 0, now.Location())
	return startAt.Before(now)
}
