package handlers

import (
	"net/http"
	"time"

	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimeClockHandler handles HTTP requests for the time clock
type TimeClockHandler struct {
	service service.TimeClockServiceInterface
}

// NewTimeClockHandler creates a new time clock handler
func NewTimeClockHandler(service service.TimeClockServiceInterface) *TimeClockHandler {
	return &TimeClockHandler{service: service}
}

// RecordEntry handles POST /api/v1/timeclock/entries
// @Summary Record a clock event
// @Description Append a clock event to a worker's log after transition and coverage checks
// @Tags timeclock
// @Accept json
// @Produce json
// @Param entry body service.RecordEntryRequest true "Clock event"
// @Success 201 {object} service.TimeClockEntryResponse "Successfully recorded entry"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Worker or location not found"
// @Failure 409 {object} map[string]interface{} "Transition not legal or coverage violated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /timeclock/entries [post]
func (h *TimeClockHandler) RecordEntry(c *gin.Context) {
	var req service.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.Record(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetWorkerStatus handles GET /api/v1/workers/:id/status
// @Summary Get a worker's clock status
// @Description Derive the worker's current status from their entry log
// @Tags timeclock
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Success 200 {object} service.WorkerStatusResponse "Derived status"
// @Failure 400 {object} map[string]interface{} "Invalid worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers/{id}/status [get]
func (h *TimeClockHandler) GetWorkerStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	status, err := h.service.CurrentStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetWorkerEntries handles GET /api/v1/workers/:id/entries
// @Summary List a worker's clock entries
// @Description Get a worker's clock entries within a date range, paginated
// @Tags timeclock
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.EntryListResponse "Successfully retrieved entries"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers/{id}/entries [get]
func (h *TimeClockHandler) GetWorkerEntries(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	// Entries carry full timestamps, so the end date covers its whole day.
	to = to.Add(24*time.Hour - time.Second)
	page, pageSize := parsePagination(c)

	entries, err := h.service.GetEntries(id, from, to, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
