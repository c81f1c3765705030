package handlers

import (
	"net/http"
	"strconv"
	"time"

	"staffing-backend/internal/database/models"
	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for shift scheduling
type ShiftHandler struct {
	service service.ShiftSchedulerServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(service service.ShiftSchedulerServiceInterface) *ShiftHandler {
	return &ShiftHandler{service: service}
}

// scheduleShiftBody is the JSON shape for POST /shifts. The date travels as
// YYYY-MM-DD rather than a full timestamp.
type scheduleShiftBody struct {
	WorkerID                  uuid.UUID        `json:"worker_id"`
	LocationID                uuid.UUID        `json:"location_id"`
	Date                      string           `json:"date"`
	ScheduledStart            string           `json:"scheduled_start"`
	ScheduledEnd              string           `json:"scheduled_end"`
	ShiftType                 models.ShiftType `json:"shift_type,omitempty"`
	Position                  string           `json:"position"`
	IsSupervisorShift         bool             `json:"is_supervisor_shift,omitempty"`
	RequiresSupervisorPresent bool             `json:"requires_supervisor_present,omitempty"`
	BreakDurationMinutes      int              `json:"break_duration_minutes,omitempty"`
	HourlyRate                *float64         `json:"hourly_rate,omitempty"`
	Notes                     string           `json:"notes,omitempty"`
}

// ScheduleShift handles POST /api/v1/shifts
// @Summary Schedule a new shift
// @Description Validate, price, and persist a shift draft for a worker
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body scheduleShiftBody true "Shift draft"
// @Success 201 {object} service.ScheduleShiftResponse "Successfully scheduled shift"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Worker or location not found"
// @Failure 409 {object} map[string]interface{} "Shift overlaps an existing shift"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) ScheduleShift(c *gin.Context) {
	var body scheduleShiftBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	draft := &service.ShiftDraft{
		WorkerID:                  body.WorkerID,
		LocationID:                body.LocationID,
		Date:                      date,
		ScheduledStart:            body.ScheduledStart,
		ScheduledEnd:              body.ScheduledEnd,
		ShiftType:                 body.ShiftType,
		Position:                  body.Position,
		IsSupervisorShift:         body.IsSupervisorShift,
		RequiresSupervisorPresent: body.RequiresSupervisorPresent,
		BreakDurationMinutes:      body.BreakDurationMinutes,
		HourlyRate:                body.HourlyRate,
		Notes:                     body.Notes,
	}

	result, err := h.service.Schedule(draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetShift handles GET /api/v1/shifts/:id
// @Summary Get shift by ID
// @Description Get a specific shift by its UUID
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 400 {object} map[string]interface{} "Invalid shift ID"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID: invalid UUID format"})
		return
	}

	shift, err := h.service.GetShift(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListShifts handles GET /api/v1/shifts
// @Summary List shifts for a worker
// @Description Get a worker's shifts within a date range, paginated
// @Tags shifts
// @Accept json
// @Produce json
// @Param worker_id query string true "Worker ID (UUID)"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.ShiftListResponse "Successfully retrieved shifts"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	workerID, err := uuid.Parse(c.Query("worker_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker_id: invalid UUID format"})
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	shifts, err := h.service.GetWorkerShifts(workerID, from, to, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// UpdateShiftStatus handles PUT /api/v1/shifts/:id/status
// @Summary Update shift status
// @Description Move a shift along its lifecycle (SCHEDULED, IN_PROGRESS, COMPLETED, NO_SHOW, CANCELLED)
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param status body service.UpdateShiftStatusRequest true "Target status"
// @Success 200 {object} service.ShiftResponse "Successfully updated shift"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Transition not allowed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id}/status [put]
func (h *ShiftHandler) UpdateShiftStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID: invalid UUID format"})
		return
	}

	var req service.UpdateShiftStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.service.Transition(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// parseDateRange reads the from/to query params. On failure it writes the
// 400 response itself and reports false.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date: expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date: expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
