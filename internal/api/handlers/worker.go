package handlers

import (
	"net/http"

	"staffing-backend/internal/database/models"
	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkerHandler handles HTTP requests for the worker directory
type WorkerHandler struct {
	service service.WorkerServiceInterface
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(service service.WorkerServiceInterface) *WorkerHandler {
	return &WorkerHandler{service: service}
}

// CreateWorker handles POST /api/v1/workers
// @Summary Create a new worker
// @Description Create a worker directory entry
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body service.CreateWorkerRequest true "Worker data"
// @Success 201 {object} service.WorkerResponse "Successfully created worker"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers [post]
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req service.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	worker, err := h.service.CreateWorker(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// GetWorker handles GET /api/v1/workers/:id
// @Summary Get worker by ID
// @Description Get a specific worker by their UUID
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Success 200 {object} service.WorkerResponse "Successfully retrieved worker"
// @Failure 400 {object} map[string]interface{} "Invalid worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	worker, err := h.service.GetWorker(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// ListWorkers handles GET /api/v1/workers
// @Summary List workers
// @Description Get workers with pagination, optionally filtered by employment status
// @Tags workers
// @Accept json
// @Produce json
// @Param employment_status query string false "Filter by employment status"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.WorkerListResponse "Successfully retrieved workers"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers [get]
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	status := models.EmploymentStatus(c.Query("employment_status"))
	page, pageSize := parsePagination(c)

	workers, err := h.service.ListWorkers(status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workers)
}

// UpdateWorker handles PUT /api/v1/workers/:id
// @Summary Update a worker
// @Description Apply a partial update to a worker directory entry
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Param worker body service.UpdateWorkerRequest true "Fields to update"
// @Success 200 {object} service.WorkerResponse "Successfully updated worker"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	var req service.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	worker, err := h.service.UpdateWorker(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}
