package auth

import (
	"fmt"
	"time"

	"staffing-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims for a staff member
type AuthClaims struct {
	WorkerID     uuid.UUID           `json:"worker_id"`
	Email        string              `json:"email"`
	Capabilities []models.Capability `json:"capabilities"`
	jwt.RegisteredClaims
}

// HasCapability reports whether the token grants a capability
func (c *AuthClaims) HasCapability(capability models.Capability) bool {
	for _, granted := range c.Capabilities {
		if granted == capability {
			return true
		}
	}
	return false
}

// AuthService issues and validates staff tokens
type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) *AuthService {
	return &AuthService{
		secret:   []byte(secret),
		tokenTTL: 12 * time.Hour,
	}
}

// GenerateJWT creates a signed token carrying a worker's capability set
func (s *AuthService) GenerateJWT(worker *models.Worker) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		WorkerID:     worker.ID,
		Email:        worker.Email,
		Capabilities: []models.Capability(worker.Capabilities),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "staffing-backend",
			Subject:   worker.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and validates a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
