package handlers

import (
	"net/http"

	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocationHandler handles HTTP requests for the location directory
type LocationHandler struct {
	service service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{service: service}
}

// CreateLocation handles POST /api/v1/locations
// @Summary Create a new location
// @Description Create a location with optional coverage thresholds
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse "Successfully created location"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	location, err := h.service.CreateLocation(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

// GetLocation handles GET /api/v1/locations/:id
// @Summary Get location by ID
// @Description Get a specific location by its UUID
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 200 {object} service.LocationResponse "Successfully retrieved location"
// @Failure 400 {object} map[string]interface{} "Invalid location ID"
// @Failure 404 {object} map[string]interface{} "Location not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID: invalid UUID format"})
		return
	}

	location, err := h.service.GetLocation(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// ListLocations handles GET /api/v1/locations
// @Summary List locations
// @Description Get locations with pagination
// @Tags locations
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.LocationListResponse "Successfully retrieved locations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	page, pageSize := parsePagination(c)

	locations, err := h.service.ListLocations(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// UpdateLocation handles PUT /api/v1/locations/:id
// @Summary Update a location
// @Description Apply a partial update to a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Param location body service.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} service.LocationResponse "Successfully updated location"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Location not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID: invalid UUID format"})
		return
	}

	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	location, err := h.service.UpdateLocation(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}
