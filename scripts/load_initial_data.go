package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database"
	"staffing-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type LocationData struct {
	Name                string `yaml:"name"`
	Timezone            string `yaml:"timezone"`
	IsActive            *bool  `yaml:"is_active,omitempty"`
	RequiredCoverage    int    `yaml:"required_coverage"`
	MaxConcurrentBreaks int    `yaml:"max_concurrent_breaks"`
}

type WorkerData struct {
	FirstName         string   `yaml:"first_name"`
	LastName          string   `yaml:"last_name"`
	Email             string   `yaml:"email"`
	PhoneNumber       string   `yaml:"phone_number,omitempty"`
	EmploymentStatus  string   `yaml:"employment_status"`
	Capabilities      []string `yaml:"capabilities,omitempty"`
	DefaultHourlyRate float64  `yaml:"default_hourly_rate,omitempty"`
}

type ShiftData struct {
	WorkerEmail          string  `yaml:"worker_email"`
	LocationName         string  `yaml:"location_name"`
	Date                 string  `yaml:"date"`
	ScheduledStart       string  `yaml:"scheduled_start"`
	ScheduledEnd         string  `yaml:"scheduled_end"`
	ShiftType            string  `yaml:"shift_type,omitempty"`
	Position             string  `yaml:"position"`
	IsSupervisorShift    bool    `yaml:"is_supervisor_shift,omitempty"`
	BreakDurationMinutes int     `yaml:"break_duration_minutes,omitempty"`
	HourlyRate           float64 `yaml:"hourly_rate,omitempty"`
}

// File structures
type LocationsFile struct {
	Locations []LocationData `yaml:"locations"`
}

type WorkersFile struct {
	Workers []WorkerData `yaml:"workers"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	locations, err := loadLocations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}

	workers, err := loadWorkers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load workers: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	// Create locations first
	locationMap := make(map[string]*models.Location)
	locationCreated := 0
	for _, locationData := range locations {
		location, created, err := createLocation(db, locationData)
		if err != nil {
			return fmt.Errorf("failed to create location %s: %w", locationData.Name, err)
		}
		locationMap[locationData.Name] = location
		if created {
			locationCreated++
		}
	}
	log.Printf("📋 Locations: %d created, %d total", locationCreated, len(locations))

	// Create workers
	workerMap := make(map[string]*models.Worker)
	workerCreated := 0
	for _, workerData := range workers {
		worker, created, err := createWorker(db, workerData)
		if err != nil {
			return fmt.Errorf("failed to create worker %s: %w", workerData.Email, err)
		}
		workerMap[workerData.Email] = worker
		if created {
			workerCreated++
		}
	}
	log.Printf("📋 Workers: %d created, %d total", workerCreated, len(workers))

	// Create shifts last since they reference both
	shiftCreated := 0
	for _, shiftData := range shifts {
		_, created, err := createShift(db, shiftData, workerMap, locationMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create shift for %s on %s: %v", shiftData.WorkerEmail, shiftData.Date, err)
			continue // Continue with other shifts
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", shiftCreated, len(shifts))

	return nil
}

func loadLocations(dataDir string) ([]LocationData, error) {
	var allLocations []LocationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "locations") {
			var file LocationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLocations = append(allLocations, file.Locations...)
		}
		return nil
	})

	return allLocations, err
}

func loadWorkers(dataDir string) ([]WorkerData, error) {
	var allWorkers []WorkerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "workers") {
			var file WorkersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allWorkers = append(allWorkers, file.Workers...)
		}
		return nil
	})

	return allWorkers, err
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	var allShifts []ShiftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shifts") {
			var file ShiftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allShifts = append(allShifts, file.Shifts...)
		}
		return nil
	})

	return allShifts, err
}

func createLocation(db *gorm.DB, locationData LocationData) (*models.Location, bool, error) {
	var location models.Location
	if err := db.Where("name = ?", locationData.Name).First(&location).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			timezone := locationData.Timezone
			if timezone == "" {
				timezone = "UTC"
			}
			isActive := true
			if locationData.IsActive != nil {
				isActive = *locationData.IsActive
			}

			location = models.Location{
				Name:                locationData.Name,
				Timezone:            timezone,
				IsActive:            isActive,
				RequiredCoverage:    locationData.RequiredCoverage,
				MaxConcurrentBreaks: locationData.MaxConcurrentBreaks,
			}

			if err := db.Create(&location).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create location: %w", err)
			}
			return &location, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query location: %w", err)
		}
	}

	return &location, false, nil // created = false (existing)
}

func createWorker(db *gorm.DB, workerData WorkerData) (*models.Worker, bool, error) {
	var worker models.Worker
	if err := db.Where("email = ?", workerData.Email).First(&worker).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.EmploymentStatusActive
			if workerData.EmploymentStatus != "" {
				status = models.EmploymentStatus(workerData.EmploymentStatus)
			}

			capabilities := make(models.CapabilitySet, 0, len(workerData.Capabilities))
			for _, capability := range workerData.Capabilities {
				capabilities = append(capabilities, models.Capability(capability))
			}

			worker = models.Worker{
				FullName:          workerData.FirstName + " " + workerData.LastName,
				FirstName:         workerData.FirstName,
				LastName:          workerData.LastName,
				Email:             workerData.Email,
				PhoneNumber:       workerData.PhoneNumber,
				EmploymentStatus:  status,
				Capabilities:      capabilities,
				DefaultHourlyRate: workerData.DefaultHourlyRate,
			}

			if err := db.Create(&worker).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create worker: %w", err)
			}
			return &worker, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query worker: %w", err)
		}
	}

	return &worker, false, nil // created = false (existing)
}

func createShift(db *gorm.DB, shiftData ShiftData, workerMap map[string]*models.Worker, locationMap map[string]*models.Location) (*models.Shift, bool, error) {
	worker := workerMap[shiftData.WorkerEmail]
	if worker == nil {
		return nil, false, fmt.Errorf("worker %s not found", shiftData.WorkerEmail)
	}
	location := locationMap[shiftData.LocationName]
	if location == nil {
		return nil, false, fmt.Errorf("location %s not found", shiftData.LocationName)
	}

	date, err := time.Parse("2006-01-02", shiftData.Date)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date %q: %w", shiftData.Date, err)
	}

	var shift models.Shift
	err = db.Where("worker_id = ? AND date = ? AND time_range_hash = ?",
		worker.ID, date, models.TimeRangeHash(shiftData.ScheduledStart, shiftData.ScheduledEnd)).
		First(&shift).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			shiftType := models.ShiftTypeRegular
			if shiftData.ShiftType != "" {
				shiftType = models.ShiftType(shiftData.ShiftType)
			}

			shift = models.Shift{
				WorkerID:             worker.ID,
				LocationID:           location.ID,
				Date:                 date,
				ScheduledStart:       shiftData.ScheduledStart,
				ScheduledEnd:         shiftData.ScheduledEnd,
				ShiftType:            shiftType,
				Position:             shiftData.Position,
				IsSupervisorShift:    shiftData.IsSupervisorShift,
				Status:               models.ShiftStatusScheduled,
				BreakDurationMinutes: shiftData.BreakDurationMinutes,
				HourlyRate:           shiftData.HourlyRate,
			}

			if err := db.Create(&shift).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift: %w", err)
			}
			return &shift, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query shift: %w", err)
		}
	}

	return &shift, false, nil // created = false (existing)
}
