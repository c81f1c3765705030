package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// DB exposes the underlying handle for transaction scoping by the scheduler
func (r *ShiftRepository) DB() *gorm.DB {
	return r.db
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// CreateInTx creates a new shift inside an existing transaction
func (r *ShiftRepository) CreateInTx(tx *gorm.DB, shift *models.Shift) error {
	return tx.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetActiveByWorkerAndDate retrieves all non-cancelled shifts for a worker on
// a given date, inside the caller's transaction. Used by the overlap check.
func (r *ShiftRepository) GetActiveByWorkerAndDate(tx *gorm.DB, workerID uuid.UUID, date time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := tx.Where("worker_id = ? AND date = ? AND status != ?", workerID, date, models.ShiftStatusCancelled).
		Find(&shifts).Error
	return shifts, err
}

// GetByWorkerAndDateRange retrieves shifts for a worker within a date range
func (r *ShiftRepository) GetByWorkerAndDateRange(workerID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	query := r.db.Model(&models.Shift{}).Where("worker_id = ? AND date >= ? AND date <= ?", workerID, from, to)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date ASC, scheduled_start ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetByLocationAndDateRange retrieves all shifts at a location within a date
// range, ordered for aggregation.
func (r *ShiftRepository) GetByLocationAndDateRange(locationID uuid.UUID, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("location_id = ? AND date >= ? AND date <= ?", locationID, from, to).
		Order("date ASC, scheduled_start ASC").
		Find(&shifts).Error
	return shifts, err
}

// UpdateStatus updates only the lifecycle status of a shift
func (r *ShiftRepository) UpdateStatus(id uuid.UUID, status models.ShiftStatus) error {
	return r.db.Model(&models.Shift{}).Where("id = ?", id).Update("status", status).Error
}

// CountByStatus counts shifts at a location by lifecycle status
func (r *ShiftRepository) CountByStatus(locationID uuid.UUID, status models.ShiftStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Shift{}).
		Where("location_id = ? AND status = ?", locationID, status).
		Count(&count).Error
	return count, err
}
