package repository

import (
	"errors"
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeClockEntryRepository handles database operations for time clock entries.
// Entries are append-only: there is no update or delete path.
type TimeClockEntryRepository struct {
	db *gorm.DB
}

// NewTimeClockEntryRepository creates a new time clock entry repository
func NewTimeClockEntryRepository(db *gorm.DB) *TimeClockEntryRepository {
	return &TimeClockEntryRepository{db: db}
}

// Append records a new entry
func (r *TimeClockEntryRepository) Append(entry *models.TimeClockEntry) error {
	return r.db.Create(entry).Error
}

// GetByWorker retrieves a worker's full entry log ordered by timestamp,
// ties broken by insertion order.
func (r *TimeClockEntryRepository) GetByWorker(workerID uuid.UUID) ([]models.TimeClockEntry, error) {
	var entries []models.TimeClockEntry
	err := r.db.Where("worker_id = ?", workerID).
		Order("timestamp ASC, seq ASC").
		Find(&entries).Error
	return entries, err
}

// GetByWorkerAndDateRange retrieves a worker's entries within a time range
func (r *TimeClockEntryRepository) GetByWorkerAndDateRange(workerID uuid.UUID, from, to time.Time, limit, offset int) ([]models.TimeClockEntry, int64, error) {
	var entries []models.TimeClockEntry
	var total int64

	query := r.db.Model(&models.TimeClockEntry{}).
		Where("worker_id = ? AND timestamp >= ? AND timestamp <= ?", workerID, from, to)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("timestamp ASC, seq ASC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// GetLatestByWorker retrieves the most recent entry for a worker, or nil if
// the worker has no entries.
func (r *TimeClockEntryRepository) GetLatestByWorker(workerID uuid.UUID) (*models.TimeClockEntry, error) {
	var entry models.TimeClockEntry
	err := r.db.Where("worker_id = ?", workerID).
		Order("timestamp DESC, seq DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetLatestPerWorkerAtLocation retrieves each worker's most recent entry at a
// location. This is the indexed read path for headcount derivation; it never
// consults a cached status column.
func (r *TimeClockEntryRepository) GetLatestPerWorkerAtLocation(locationID uuid.UUID) ([]models.TimeClockEntry, error) {
	var entries []models.TimeClockEntry
	err := r.db.Raw(`
		SELECT DISTINCT ON (worker_id) *
		FROM time_clock_entries
		WHERE location_id = ?
		ORDER BY worker_id, timestamp DESC, seq DESC`, locationID).
		Scan(&entries).Error
	return entries, err
}

// GetByLocationAndDateRange retrieves all entries at a location within a time range
func (r *TimeClockEntryRepository) GetByLocationAndDateRange(locationID uuid.UUID, from, to time.Time) ([]models.TimeClockEntry, error) {
	var entries []models.TimeClockEntry
	err := r.db.Where("location_id = ? AND timestamp >= ? AND timestamp <= ?", locationID, from, to).
		Order("timestamp ASC, seq ASC").
		Find(&entries).Error
	return entries, err
}
