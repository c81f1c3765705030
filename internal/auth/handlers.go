package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"

	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueKeyHeader carries the shared key kiosk and mobile clients present
// when requesting a worker token.
const IssueKeyHeader = "X-Issue-Key"

// AuthHandler issues tokens for kiosk and mobile clients
type AuthHandler struct {
	service    *AuthService
	workerRepo repository.WorkerRepositoryInterface
	issueKey   string
}

// NewAuthHandler creates a new auth handler. An empty issueKey disables
// the shared-key check.
func NewAuthHandler(service *AuthService, workerRepo repository.WorkerRepositoryInterface, issueKey string) *AuthHandler {
	return &AuthHandler{service: service, workerRepo: workerRepo, issueKey: issueKey}
}

// TokenRequest represents a token issuance request
type TokenRequest struct {
	WorkerID uuid.UUID `json:"worker_id" binding:"required"`
}

// TokenResponse represents an issued token
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /api/v1/auth/token
// @Summary Issue a staff token
// @Description Issue a JWT carrying the worker's capability set
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Worker reference"
// @Param X-Issue-Key header string false "Shared issue key"
// @Success 200 {object} TokenResponse "Issued token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Missing or wrong issue key"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if h.issueKey != "" {
		presented := c.GetHeader(IssueKeyHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(h.issueKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid issue key"})
			return
		}
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	worker, err := h.workerRepo.GetByID(req.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.NewNotFoundError("worker", req.WorkerID).Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load worker", "details": err.Error()})
		return
	}

	token, err := h.service.GenerateJWT(worker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
