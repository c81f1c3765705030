package service

import (
	"errors"
	"fmt"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationService handles business logic for the location directory
type LocationService struct {
	locationRepo repository.LocationRepositoryInterface
	validator    *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo repository.LocationRepositoryInterface) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		validator:    validator.New(),
	}
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name                string `json:"name" validate:"required,max=150"`
	Timezone            string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	RequiredCoverage    int    `json:"required_coverage,omitempty" validate:"omitempty,min=0"`
	MaxConcurrentBreaks int    `json:"max_concurrent_breaks,omitempty" validate:"omitempty,min=0"`
}

// UpdateLocationRequest represents the request to update a location
type UpdateLocationRequest struct {
	Timezone            *string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	IsActive            *bool   `json:"is_active,omitempty"`
	RequiredCoverage    *int    `json:"required_coverage,omitempty" validate:"omitempty,min=0"`
	MaxConcurrentBreaks *int    `json:"max_concurrent_breaks,omitempty" validate:"omitempty,min=0"`
}

// LocationResponse represents a location in API responses
type LocationResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Timezone            string    `json:"timezone"`
	IsActive            bool      `json:"is_active"`
	RequiredCoverage    int       `json:"required_coverage"`
	MaxConcurrentBreaks int       `json:"max_concurrent_breaks"`
}

// LocationListResponse represents a paginated list of locations
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// CreateLocation creates a new location. Names are unique; a zero coverage
// threshold defers to the policy file at enforcement time.
func (s *LocationService) CreateLocation(req *CreateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.locationRepo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing location: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError([]apperrors.Violation{{
			Field:    "name",
			Code:     "duplicate",
			Message:  fmt.Sprintf("a location named %s already exists", req.Name),
			Severity: apperrors.SeverityError,
		}})
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	location := &models.Location{
		Name:                req.Name,
		Timezone:            timezone,
		IsActive:            true,
		RequiredCoverage:    req.RequiredCoverage,
		MaxConcurrentBreaks: req.MaxConcurrentBreaks,
	}

	if err := s.locationRepo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return s.toResponse(location), nil
}

// GetLocation retrieves a location by ID
func (s *LocationService) GetLocation(id uuid.UUID) (*LocationResponse, error) {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("location", id)
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return s.toResponse(location), nil
}

// ListLocations retrieves locations with pagination
func (s *LocationService) ListLocations(page, pageSize int) (*LocationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	locations, total, err := s.locationRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]LocationResponse, len(locations))
	for i := range locations {
		responses[i] = *s.toResponse(&locations[i])
	}

	return &LocationListResponse{
		Locations: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateLocation applies a partial update to a location. The name is
// immutable because the coverage policy file keys on it.
func (s *LocationService) UpdateLocation(id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("location", id)
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	if req.Timezone != nil {
		location.Timezone = *req.Timezone
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	if req.RequiredCoverage != nil {
		location.RequiredCoverage = *req.RequiredCoverage
	}
	if req.MaxConcurrentBreaks != nil {
		location.MaxConcurrentBreaks = *req.MaxConcurrentBreaks
	}

	if err := s.locationRepo.Update(location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return s.toResponse(location), nil
}

func (s *LocationService) toResponse(location *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:                  location.ID,
		Name:                location.Name,
		Timezone:            location.Timezone,
		IsActive:            location.IsActive,
		RequiredCoverage:    location.RequiredCoverage,
		MaxConcurrentBreaks: location.MaxConcurrentBreaks,
	}
}
