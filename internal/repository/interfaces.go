package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// WorkerRepositoryInterface defines the interface for worker repository operations
type WorkerRepositoryInterface interface {
	Create(worker *models.Worker) error
	GetByID(id uuid.UUID) (*models.Worker, error)
	GetByEmail(email string) (*models.Worker, error)
	GetAll(limit, offset int) ([]models.Worker, int64, error)
	GetByEmploymentStatus(status models.EmploymentStatus, limit, offset int) ([]models.Worker, int64, error)
	Update(worker *models.Worker) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetByName(name string) (*models.Location, error)
	GetAll(limit, offset int) ([]models.Location, int64, error)
	Exists(id uuid.UUID) (bool, error)
	Update(location *models.Location) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	DB() *gorm.DB
	Create(shift *models.Shift) error
	CreateInTx(tx *gorm.DB, shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetActiveByWorkerAndDate(tx *gorm.DB, workerID uuid.UUID, date time.Time) ([]models.Shift, error)
	GetByWorkerAndDateRange(workerID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Shift, int64, error)
	GetByLocationAndDateRange(locationID uuid.UUID, from, to time.Time) ([]models.Shift, error)
	UpdateStatus(id uuid.UUID, status models.ShiftStatus) error
	CountByStatus(locationID uuid.UUID, status models.ShiftStatus) (int64, error)
}

// TimeClockEntryRepositoryInterface defines the interface for entry repository operations
type TimeClockEntryRepositoryInterface interface {
	Append(entry *models.TimeClockEntry) error
	GetByWorker(workerID uuid.UUID) ([]models.TimeClockEntry, error)
	GetByWorkerAndDateRange(workerID uuid.UUID, from, to time.Time, limit, offset int) ([]models.TimeClockEntry, int64, error)
	GetLatestByWorker(workerID uuid.UUID) (*models.TimeClockEntry, error)
	GetLatestPerWorkerAtLocation(locationID uuid.UUID) ([]models.TimeClockEntry, error)
	GetByLocationAndDateRange(locationID uuid.UUID, from, to time.Time) ([]models.TimeClockEntry, error)
}
