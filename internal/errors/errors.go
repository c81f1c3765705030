package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Severity grades a validation violation
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Violation is a single validation finding with enough structure for a UI
// to render an actionable message without string-parsing.
type Violation struct {
	Field    string   `json:"field"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Kind)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ValidationError carries the full violation list for a rejected draft.
// Every check is evaluated, so callers see all problems at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Severity == SeverityError {
			msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
		}
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// InvalidTransitionError indicates a clock action that is not legal from the
// worker's currently derived status. No entry is recorded.
type InvalidTransitionError struct {
	From      string
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid clock transition: cannot %s while %s", e.Attempted, e.From)
}

// CoverageViolationError indicates a break request that would breach the
// location's coverage policy. Surfaced so a manager can override; never
// silently bypassed by the engine.
type CoverageViolationError struct {
	LocationID uuid.UUID
	Reason     string
}

func (e *CoverageViolationError) Error() string {
	return fmt.Sprintf("coverage violation at location %s: %s", e.LocationID, e.Reason)
}

// OverlapError indicates the draft shift intersects an existing non-cancelled
// shift for the same worker and date.
type OverlapError struct {
	ExistingShiftID uuid.UUID
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("shift overlaps existing shift %s", e.ExistingShiftID)
}

// InvalidStatusTransitionError indicates a shift status change that is not on
// the allowed forward path.
type InvalidStatusTransitionError struct {
	From      string
	Attempted string
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid shift status transition from %s to %s", e.From, e.Attempted)
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrWorkerNotFound   = &NotFoundError{Kind: "worker"}
	ErrLocationNotFound = &NotFoundError{Kind: "location"}
	ErrShiftNotFound    = &NotFoundError{Kind: "shift"}
	ErrEntryNotFound    = &NotFoundError{Kind: "time clock entry"}
)

// Business Logic Errors
var (
	ErrInvalidClockType        = errors.New("invalid clock type")
	ErrInvalidShiftType        = errors.New("invalid shift type")
	ErrInvalidShiftStatus      = errors.New("invalid shift status")
	ErrNonMonotonicTimestamp   = errors.New("timestamp precedes the worker's latest entry")
	ErrWorkerNotSchedulable    = errors.New("worker is not schedulable")
	ErrInvalidCoverageMode     = errors.New("invalid coverage mode")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// NewNotFoundError creates a NotFoundError for a specific entity reference
func NewNotFoundError(kind string, id uuid.UUID) error {
	return &NotFoundError{Kind: kind, ID: id.String()}
}

// NewValidationError wraps a violation list; at least one violation must
// carry ERROR severity for callers to treat the draft as rejected.
func NewValidationError(violations []Violation) error {
	return &ValidationError{Violations: violations}
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsCoverageViolation checks if an error is a CoverageViolationError
func IsCoverageViolation(err error) bool {
	var coverageErr *CoverageViolationError
	return errors.As(err, &coverageErr)
}

// IsOverlap checks if an error is an OverlapError
func IsOverlap(err error) bool {
	var overlapErr *OverlapError
	return errors.As(err, &overlapErr)
}

// IsInvalidStatusTransition checks if an error is an InvalidStatusTransitionError
func IsInvalidStatusTransition(err error) bool {
	var statusErr *InvalidStatusTransitionError
	return errors.As(err, &statusErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}
