package handlers

import (
	"errors"
	"net/http"

	apperrors "staffing-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP status and JSON shape the
// API contracts promise. Violation lists ride along on validation failures
// so clients can render every problem at once.
func respondError(c *gin.Context, err error) {
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "validation failed",
			"violations": validationErr.Violations,
		})
		return
	}

	var transitionErr *apperrors.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     transitionErr.Error(),
			"from":      transitionErr.From,
			"attempted": transitionErr.Attempted,
		})
		return
	}

	var coverageErr *apperrors.CoverageViolationError
	if errors.As(err, &coverageErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       coverageErr.Error(),
			"location_id": coverageErr.LocationID,
			"reason":      coverageErr.Reason,
		})
		return
	}

	var overlapErr *apperrors.OverlapError
	if errors.As(err, &overlapErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":             overlapErr.Error(),
			"existing_shift_id": overlapErr.ExistingShiftID,
		})
		return
	}

	var statusErr *apperrors.InvalidStatusTransitionError
	if errors.As(err, &statusErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     statusErr.Error(),
			"from":      statusErr.From,
			"attempted": statusErr.Attempted,
		})
		return
	}

	var authzErr *apperrors.AuthorizationError
	if errors.As(err, &authzErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": authzErr.Error()})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidClockType),
		errors.Is(err, apperrors.ErrInvalidShiftType),
		errors.Is(err, apperrors.ErrInvalidShiftStatus),
		errors.Is(err, apperrors.ErrInvalidCoverageMode),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
}
