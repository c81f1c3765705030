package handlers

import (
	"net/http"

	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CoverageHandler handles HTTP requests for coverage analysis
type CoverageHandler struct {
	service service.CoverageServiceInterface
}

// NewCoverageHandler creates a new coverage handler
func NewCoverageHandler(service service.CoverageServiceInterface) *CoverageHandler {
	return &CoverageHandler{service: service}
}

// GetCoverage handles GET /api/v1/coverage
// @Summary Analyze staffing coverage
// @Description Aggregate a location's shifts over a date range into per-day and weekly summaries
// @Tags coverage
// @Accept json
// @Produce json
// @Param location_id query string true "Location ID (UUID)"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param mode query string false "Counting mode: effective (default) or all"
// @Success 200 {object} service.WeekSummary "Coverage summary"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 404 {object} map[string]interface{} "Location not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /coverage [get]
func (h *CoverageHandler) GetCoverage(c *gin.Context) {
	locationID, err := uuid.Parse(c.Query("location_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location_id: invalid UUID format"})
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	mode := service.CoverageMode(c.DefaultQuery("mode", string(service.CoverageModeEffective)))

	summary, err := h.service.AnalyzeLocation(locationID, from, to, mode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
