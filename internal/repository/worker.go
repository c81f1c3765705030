package repository

import (
	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerRepository handles database operations for workers
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create creates a new worker
func (r *WorkerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

// GetByID retrieves a worker by ID
func (r *WorkerRepository) GetByID(id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByEmail retrieves a worker by email
func (r *WorkerRepository) GetByEmail(email string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.First(&worker, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetAll retrieves all workers with pagination
func (r *WorkerRepository) GetAll(limit, offset int) ([]models.Worker, int64, error) {
	var workers []models.Worker
	var total int64

	if err := r.db.Model(&models.Worker{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("full_name ASC").Limit(limit).Offset(offset).Find(&workers).Error
	return workers, total, err
}

// GetByEmploymentStatus retrieves workers filtered by employment status
func (r *WorkerRepository) GetByEmploymentStatus(status models.EmploymentStatus, limit, offset int) ([]models.Worker, int64, error) {
	var workers []models.Worker
	var total int64

	query := r.db.Model(&models.Worker{}).Where("employment_status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name ASC").Limit(limit).Offset(offset).Find(&workers).Error
	return workers, total, err
}

// Update updates a worker
func (r *WorkerRepository) Update(worker *models.Worker) error {
	return r.db.Save(worker).Error
}
