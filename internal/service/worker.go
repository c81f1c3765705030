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

// WorkerService handles business logic for the worker directory
type WorkerService struct {
	workerRepo repository.WorkerRepositoryInterface
	validator  *validator.Validate
}

// NewWorkerService creates a new worker service
func NewWorkerService(workerRepo repository.WorkerRepositoryInterface) *WorkerService {
	return &WorkerService{
		workerRepo: workerRepo,
		validator:  validator.New(),
	}
}

// CreateWorkerRequest represents the request to create a worker
type CreateWorkerRequest struct {
	FirstName         string              `json:"first_name" validate:"required,max=100"`
	LastName          string              `json:"last_name" validate:"required,max=100"`
	Email             string              `json:"email" validate:"required,email"`
	PhoneNumber       string              `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Capabilities      []models.Capability `json:"capabilities,omitempty"`
	DefaultHourlyRate float64             `json:"default_hourly_rate,omitempty" validate:"omitempty,min=0"`
}

// UpdateWorkerRequest represents the request to update a worker
type UpdateWorkerRequest struct {
	FirstName         *string                  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName          *string                  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	PhoneNumber       *string                  `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	EmploymentStatus  *models.EmploymentStatus `json:"employment_status,omitempty"`
	Capabilities      []models.Capability      `json:"capabilities,omitempty"`
	DefaultHourlyRate *float64                 `json:"default_hourly_rate,omitempty" validate:"omitempty,min=0"`
}

// WorkerResponse represents a worker in API responses
type WorkerResponse struct {
	ID                uuid.UUID               `json:"id"`
	FullName          string                  `json:"full_name"`
	FirstName         string                  `json:"first_name"`
	LastName          string                  `json:"last_name"`
	Email             string                  `json:"email"`
	PhoneNumber       string                  `json:"phone_number,omitempty"`
	EmploymentStatus  models.EmploymentStatus `json:"employment_status"`
	Capabilities      []models.Capability     `json:"capabilities"`
	DefaultHourlyRate float64                 `json:"default_hourly_rate"`
}

// WorkerListResponse represents a paginated list of workers
type WorkerListResponse struct {
	Workers  []WorkerResponse `json:"workers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateWorker creates a new worker. Email must be unique across the
// directory; new workers start ACTIVE.
func (s *WorkerService) CreateWorker(req *CreateWorkerRequest) (*WorkerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	for _, capability := range req.Capabilities {
		if !capability.IsValid() {
			return nil, apperrors.NewValidationError([]apperrors.Violation{{
				Field:    "capabilities",
				Code:     "invalid_enum",
				Message:  fmt.Sprintf("unknown capability %q", capability),
				Severity: apperrors.SeverityError,
			}})
		}
	}

	existing, err := s.workerRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing worker: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidationError([]apperrors.Violation{{
			Field:    "email",
			Code:     "duplicate",
			Message:  fmt.Sprintf("a worker with email %s already exists", req.Email),
			Severity: apperrors.SeverityError,
		}})
	}

	worker := &models.Worker{
		FullName:          req.FirstName + " " + req.LastName,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		EmploymentStatus:  models.EmploymentStatusActive,
		Capabilities:      models.CapabilitySet(req.Capabilities),
		DefaultHourlyRate: req.DefaultHourlyRate,
	}

	if err := s.workerRepo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return s.toResponse(worker), nil
}

// GetWorker retrieves a worker by ID
func (s *WorkerService) GetWorker(id uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.workerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("worker", id)
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return s.toResponse(worker), nil
}

// ListWorkers retrieves workers with pagination, optionally filtered by
// employment status.
func (s *WorkerService) ListWorkers(status models.EmploymentStatus, page, pageSize int) (*WorkerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var workers []models.Worker
	var total int64
	var err error
	if status != "" {
		if !status.IsValid() {
			return nil, apperrors.NewValidationError([]apperrors.Violation{{
				Field:    "employment_status",
				Code:     "invalid_enum",
				Message:  fmt.Sprintf("unknown employment status %q", status),
				Severity: apperrors.SeverityError,
			}})
		}
		workers, total, err = s.workerRepo.GetByEmploymentStatus(status, pageSize, offset)
	} else {
		workers, total, err = s.workerRepo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = *s.toResponse(&workers[i])
	}

	return &WorkerListResponse{
		Workers:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateWorker applies a partial update to a worker
func (s *WorkerService) UpdateWorker(id uuid.UUID, req *UpdateWorkerRequest) (*WorkerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	worker, err := s.workerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("worker", id)
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	if req.FirstName != nil {
		worker.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		worker.LastName = *req.LastName
	}
	if req.FirstName != nil || req.LastName != nil {
		worker.FullName = worker.FirstName + " " + worker.LastName
	}
	if req.PhoneNumber != nil {
		worker.PhoneNumber = *req.PhoneNumber
	}
	if req.EmploymentStatus != nil {
		if !req.EmploymentStatus.IsValid() {
			return nil, apperrors.NewValidationError([]apperrors.Violation{{
				Field:    "employment_status",
				Code:     "invalid_enum",
				Message:  fmt.Sprintf("unknown employment status %q", *req.EmploymentStatus),
				Severity: apperrors.SeverityError,
			}})
		}
		worker.EmploymentStatus = *req.EmploymentStatus
	}
	if req.Capabilities != nil {
		for _, capability := range req.Capabilities {
			if !capability.IsValid() {
				return nil, apperrors.NewValidationError([]apperrors.Violation{{
					Field:    "capabilities",
					Code:     "invalid_enum",
					Message:  fmt.Sprintf("unknown capability %q", capability),
					Severity: apperrors.SeverityError,
				}})
			}
		}
		worker.Capabilities = models.CapabilitySet(req.Capabilities)
	}
	if req.DefaultHourlyRate != nil {
		worker.DefaultHourlyRate = *req.DefaultHourlyRate
	}

	if err := s.workerRepo.Update(worker); err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	return s.toResponse(worker), nil
}

func (s *WorkerService) toResponse(worker *models.Worker) *WorkerResponse {
	capabilities := []models.Capability(worker.Capabilities)
	if capabilities == nil {
		capabilities = []models.Capability{}
	}
	return &WorkerResponse{
		ID:                worker.ID,
		FullName:          worker.FullName,
		FirstName:         worker.FirstName,
		LastName:          worker.LastName,
		Email:             worker.Email,
		PhoneNumber:       worker.PhoneNumber,
		EmploymentStatus:  worker.EmploymentStatus,
		Capabilities:      capabilities,
		DefaultHourlyRate: worker.DefaultHourlyRate,
	}
}
