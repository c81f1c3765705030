package repository

import (
	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByName retrieves a location by name
func (r *LocationRepository) GetByName(name string) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetAll retrieves all locations with pagination
func (r *LocationRepository) GetAll(limit, offset int) ([]models.Location, int64, error) {
	var locations []models.Location
	var total int64

	if err := r.db.Model(&models.Location{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&locations).Error
	return locations, total, err
}

// Exists reports whether a location with the given ID exists
func (r *LocationRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Location{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update updates a location
func (r *LocationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}
