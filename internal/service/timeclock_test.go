package service_test

import (
	"sync"
	"testing"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/mocks"
	"staffing-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TimeClockServiceTestSuite defines the test suite for TimeClockService
type TimeClockServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	entryRepo    *mocks.MockTimeClockEntryRepositoryInterface
	workerRepo   *mocks.MockWorkerRepositoryInterface
	locationRepo *mocks.MockLocationRepositoryInterface
	service      *service.TimeClockService

	worker   *models.Worker
	location *models.Location
}

// SetupTest sets up the test suite
func (suite *TimeClockServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.entryRepo = mocks.NewMockTimeClockEntryRepositoryInterface(suite.ctrl)
	suite.workerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.locationRepo = mocks.NewMockLocationRepositoryInterface(suite.ctrl)

	policy := &config.CoveragePolicy{
		Defaults:  config.CoverageThresholds{RequiredCoverage: 1, MaxConcurrentBreaks: 2},
		Locations: map[string]config.CoverageThresholds{},
	}
	suite.service = service.NewTimeClockService(suite.entryRepo, suite.workerRepo, suite.locationRepo, policy)

	suite.worker = &models.Worker{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		FullName:         "Jordan Reyes",
		Email:            "jordan.reyes@test.com",
		EmploymentStatus: models.EmploymentStatusActive,
	}
	suite.location = &models.Location{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Downtown",
		Timezone:  "UTC",
		IsActive:  true,
	}
}

// TearDownTest cleans up after each test
func (suite *TimeClockServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TimeClockServiceTestSuite) entry(clockType models.ClockType, at time.Time) models.TimeClockEntry {
	return models.TimeClockEntry{
		ID:          uuid.New(),
		WorkerID:    suite.worker.ID,
		LocationID:  suite.location.ID,
		ClockType:   clockType,
		Timestamp:   at,
		EntryMethod: models.EntryMethodManual,
	}
}

func (suite *TimeClockServiceTestSuite) expectLookups() {
	suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)
	suite.locationRepo.EXPECT().GetByID(suite.location.ID).Return(suite.location, nil)
}

// TestDeriveStatus tests the fold over an ordered entry log
func (suite *TimeClockServiceTestSuite) TestDeriveStatus() {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		log      []models.ClockType
		expected models.WorkerClockStatus
	}{
		{
			name:     "Empty log",
			log:      nil,
			expected: models.WorkerStatusClockedOut,
		},
		{
			name:     "Clocked in",
			log:      []models.ClockType{models.ClockTypeClockIn},
			expected: models.WorkerStatusClockedIn,
		},
		{
			name:     "On break",
			log:      []models.ClockType{models.ClockTypeClockIn, models.ClockTypeBreakStart},
			expected: models.WorkerStatusOnBreak,
		},
		{
			name:     "Back from break",
			log:      []models.ClockType{models.ClockTypeClockIn, models.ClockTypeBreakStart, models.ClockTypeBreakEnd},
			expected: models.WorkerStatusClockedIn,
		},
		{
			name:     "Full day",
			log:      []models.ClockType{models.ClockTypeClockIn, models.ClockTypeBreakStart, models.ClockTypeBreakEnd, models.ClockTypeClockOut},
			expected: models.WorkerStatusClockedOut,
		},
		{
			name:     "Clock out cuts a break short",
			log:      []models.ClockType{models.ClockTypeClockIn, models.ClockTypeBreakStart, models.ClockTypeClockOut},
			expected: models.WorkerStatusClockedOut,
		},
		{
			name:     "Two full days",
			log:      []models.ClockType{models.ClockTypeClockIn, models.ClockTypeClockOut, models.ClockTypeClockIn, models.ClockTypeClockOut},
			expected: models.WorkerStatusClockedOut,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			entries := make([]models.TimeClockEntry, len(tc.log))
			for i, clockType := range tc.log {
				entries[i] = suite.entry(clockType, base.Add(time.Duration(i)*time.Hour))
			}
			assert.Equal(t, tc.expected, service.DeriveStatus(entries))
		})
	}
}

// TestRecordValidTransitions tests the legal clock actions from each status
func (suite *TimeClockServiceTestSuite) TestRecordValidTransitions() {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		log       []models.ClockType
		clockType models.ClockType
	}{
		{name: "Clock in from out", log: nil, clockType: models.ClockTypeClockIn},
		{name: "Clock out from in", log: []models.ClockType{models.ClockTypeClockIn}, clockType: models.ClockTypeClockOut},
		{name: "Break end from break", log: []models.ClockType{models.ClockTypeClockIn, models.ClockTypeBreakStart}, clockType: models.ClockTypeBreakEnd},
		{name: "Clock out from break", log: []models.ClockType{models.ClockTypeClockIn, models.ClockTypeBreakStart}, clockType: models.ClockTypeClockOut},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			entries := make([]models.TimeClockEntry, len(tc.log))
			for i, clockType := range tc.log {
				entries[i] = suite.entry(clockType, base.Add(time.Duration(i)*time.Hour))
			}

			suite.expectLookups()
			suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(entries, nil)
			suite.entryRepo.EXPECT().Append(gomock.Any()).Return(nil)

			response, err := suite.service.Record(&service.RecordEntryRequest{
				WorkerID:   suite.worker.ID,
				LocationID: suite.location.ID,
				ClockType:  tc.clockType,
				Timestamp:  base.Add(24 * time.Hour),
			})
			assert.NoError(t, err)
			assert.NotNil(t, response)
			assert.Equal(t, tc.clockType, response.ClockType)
			assert.Equal(t, models.EntryMethodManual, response.EntryMethod)
		})
	}
}

// TestRecordInvalidTransitions tests that illegal actions append nothing
func (suite *TimeClockServiceTestSuite) TestRecordInvalidTransitions() {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		log       []models.ClockType
		clockType models.ClockType
	}{
		{name: "Double clock in", log: []models.ClockType{models.ClockTypeClockIn}, clockType: models.ClockTypeClockIn},
		{name: "Clock out while out", log: nil, clockType: models.ClockTypeClockOut},
		{name: "Break start while out", log: nil, clockType: models.ClockTypeBreakStart},
		{name: "Break end while in", log: []models.ClockType{models.ClockTypeClockIn}, clockType: models.ClockTypeBreakEnd},
		{name: "Double break start", log: []models.ClockType{models.ClockTypeClockIn, models.ClockTypeBreakStart}, clockType: models.ClockTypeBreakStart},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			entries := make([]models.TimeClockEntry, len(tc.log))
			for i, clockType := range tc.log {
				entries[i] = suite.entry(clockType, base.Add(time.Duration(i)*time.Hour))
			}

			suite.expectLookups()
			suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(entries, nil)
			// No Append expectation: a rejected action must not touch the log.

			response, err := suite.service.Record(&service.RecordEntryRequest{
				WorkerID:   suite.worker.ID,
				LocationID: suite.location.ID,
				ClockType:  tc.clockType,
				Timestamp:  base.Add(24 * time.Hour),
			})
			assert.Nil(t, response)
			assert.True(t, apperrors.IsInvalidTransition(err))
		})
	}
}

// TestRecordRejectsNonMonotonicTimestamp tests the ordering guard
func (suite *TimeClockServiceTestSuite) TestRecordRejectsNonMonotonicTimestamp() {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	entries := []models.TimeClockEntry{suite.entry(models.ClockTypeClockIn, base)}

	testCases := []struct {
		name      string
		timestamp time.Time
	}{
		{name: "Earlier than latest", timestamp: base.Add(-time.Minute)},
		{name: "Equal to latest", timestamp: base},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.expectLookups()
			suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(entries, nil)

			response, err := suite.service.Record(&service.RecordEntryRequest{
				WorkerID:   suite.worker.ID,
				LocationID: suite.location.ID,
				ClockType:  models.ClockTypeClockOut,
				Timestamp:  tc.timestamp,
			})
			assert.Nil(t, response)
			assert.True(t, apperrors.IsValidation(err))

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "non_monotonic", validationErr.Violations[0].Code)
		})
	}
}

// TestRecordRequestValidation tests request-shape rejections
func (suite *TimeClockServiceTestSuite) TestRecordRequestValidation() {
	suite.T().Run("Invalid clock type", func(t *testing.T) {
		_, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockType("LUNCH"),
			Timestamp:  time.Now(),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidClockType)
	})

	suite.T().Run("Invalid entry method", func(t *testing.T) {
		_, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:    suite.worker.ID,
			LocationID:  suite.location.ID,
			ClockType:   models.ClockTypeClockIn,
			Timestamp:   time.Now(),
			EntryMethod: models.EntryMethod("CARRIER_PIGEON"),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid entry method")
	})

	suite.T().Run("Missing timestamp", func(t *testing.T) {
		_, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeClockIn,
		})
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Unknown worker", func(t *testing.T) {
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeClockIn,
			Timestamp:  time.Now(),
		})
		assert.True(t, apperrors.IsNotFound(err))
	})

	suite.T().Run("Unknown location", func(t *testing.T) {
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)
		suite.locationRepo.EXPECT().GetByID(suite.location.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeClockIn,
			Timestamp:  time.Now(),
		})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

// TestBreakCoverageGuard tests the coverage check that gates BREAK_START
func (suite *TimeClockServiceTestSuite) TestBreakCoverageGuard() {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	myLog := []models.TimeClockEntry{suite.entry(models.ClockTypeClockIn, base)}

	otherWorkerLatest := func(clockTypes ...models.ClockType) []models.TimeClockEntry {
		latest := []models.TimeClockEntry{suite.entry(models.ClockTypeClockIn, base)}
		for _, clockType := range clockTypes {
			entry := suite.entry(clockType, base)
			entry.WorkerID = uuid.New()
			latest = append(latest, entry)
		}
		return latest
	}

	suite.T().Run("Granted when coverage holds", func(t *testing.T) {
		// Two clocked in besides the requester, nobody on break.
		suite.expectLookups()
		suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(myLog, nil)
		suite.entryRepo.EXPECT().GetLatestPerWorkerAtLocation(suite.location.ID).
			Return(otherWorkerLatest(models.ClockTypeClockIn, models.ClockTypeBreakEnd), nil)
		suite.entryRepo.EXPECT().Append(gomock.Any()).Return(nil)

		response, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeBreakStart,
			Timestamp:  base.Add(4 * time.Hour),
		})
		assert.NoError(t, err)
		assert.Equal(t, models.ClockTypeBreakStart, response.ClockType)
	})

	suite.T().Run("Granted when requester clocked in elsewhere", func(t *testing.T) {
		// The requester's clock-in was recorded at another location, so
		// they are absent from this location's latest-entry set. One other
		// clocked-in worker still satisfies the floor of one.
		other := suite.entry(models.ClockTypeClockIn, base)
		other.WorkerID = uuid.New()

		suite.expectLookups()
		suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(myLog, nil)
		suite.entryRepo.EXPECT().GetLatestPerWorkerAtLocation(suite.location.ID).
			Return([]models.TimeClockEntry{other}, nil)
		suite.entryRepo.EXPECT().Append(gomock.Any()).Return(nil)

		response, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeBreakStart,
			Timestamp:  base.Add(4 * time.Hour),
		})
		assert.NoError(t, err)
		assert.Equal(t, models.ClockTypeBreakStart, response.ClockType)
	})

	suite.T().Run("Denied when floor would drop below required", func(t *testing.T) {
		// Requester is the only clocked-in worker.
		suite.expectLookups()
		suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(myLog, nil)
		suite.entryRepo.EXPECT().GetLatestPerWorkerAtLocation(suite.location.ID).
			Return(otherWorkerLatest(), nil)

		response, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeBreakStart,
			Timestamp:  base.Add(4 * time.Hour),
		})
		assert.Nil(t, response)
		assert.True(t, apperrors.IsCoverageViolation(err))
	})

	suite.T().Run("Denied when break slots are full", func(t *testing.T) {
		// Plenty clocked in, but two workers already on break.
		suite.expectLookups()
		suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(myLog, nil)
		suite.entryRepo.EXPECT().GetLatestPerWorkerAtLocation(suite.location.ID).
			Return(otherWorkerLatest(models.ClockTypeClockIn, models.ClockTypeClockIn, models.ClockTypeBreakStart, models.ClockTypeBreakStart), nil)

		response, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeBreakStart,
			Timestamp:  base.Add(4 * time.Hour),
		})
		assert.Nil(t, response)
		assert.True(t, apperrors.IsCoverageViolation(err))
	})

	suite.T().Run("Location row overrides policy thresholds", func(t *testing.T) {
		strict := *suite.location
		strict.RequiredCoverage = 3

		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)
		suite.locationRepo.EXPECT().GetByID(suite.location.ID).Return(&strict, nil)
		suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(myLog, nil)
		// Three clocked in total; leaving two is below the row's floor of three.
		suite.entryRepo.EXPECT().GetLatestPerWorkerAtLocation(suite.location.ID).
			Return(otherWorkerLatest(models.ClockTypeClockIn, models.ClockTypeClockIn), nil)

		response, err := suite.service.Record(&service.RecordEntryRequest{
			WorkerID:   suite.worker.ID,
			LocationID: suite.location.ID,
			ClockType:  models.ClockTypeBreakStart,
			Timestamp:  base.Add(4 * time.Hour),
		})
		assert.Nil(t, response)
		assert.True(t, apperrors.IsCoverageViolation(err))
	})
}

// TestConcurrentRecordsSerialize tests that racing calls for one worker
// serialize, with the loser rejected against the winner's entry
func (suite *TimeClockServiceTestSuite) TestConcurrentRecordsSerialize() {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	var mu sync.Mutex
	var log []models.TimeClockEntry

	suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil).Times(2)
	suite.locationRepo.EXPECT().GetByID(suite.location.ID).Return(suite.location, nil).Times(2)
	suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).DoAndReturn(func(uuid.UUID) ([]models.TimeClockEntry, error) {
		mu.Lock()
		defer mu.Unlock()
		return append([]models.TimeClockEntry{}, log...), nil
	}).Times(2)
	suite.entryRepo.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.TimeClockEntry) error {
		mu.Lock()
		defer mu.Unlock()
		log = append(log, *entry)
		return nil
	}).Times(1)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := suite.service.Record(&service.RecordEntryRequest{
				WorkerID:   suite.worker.ID,
				LocationID: suite.location.ID,
				ClockType:  models.ClockTypeClockIn,
				Timestamp:  base.Add(time.Duration(i) * time.Minute),
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(suite.T(), 1, succeeded)
	assert.Len(suite.T(), log, 1)
}

// TestCurrentStatus tests the derived status read
func (suite *TimeClockServiceTestSuite) TestCurrentStatus() {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	suite.T().Run("Derives from log", func(t *testing.T) {
		entries := []models.TimeClockEntry{
			suite.entry(models.ClockTypeClockIn, base),
			suite.entry(models.ClockTypeBreakStart, base.Add(4*time.Hour)),
		}
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)
		suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(entries, nil)

		response, err := suite.service.CurrentStatus(suite.worker.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.WorkerStatusOnBreak, response.Status)
		assert.Equal(t, suite.worker.ID, response.WorkerID)
	})

	suite.T().Run("Empty log means clocked out", func(t *testing.T) {
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)
		suite.entryRepo.EXPECT().GetByWorker(suite.worker.ID).Return(nil, nil)

		response, err := suite.service.CurrentStatus(suite.worker.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.WorkerStatusClockedOut, response.Status)
	})

	suite.T().Run("Unknown worker", func(t *testing.T) {
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(nil, gorm.ErrRecordNotFound)

		response, err := suite.service.CurrentStatus(suite.worker.ID)
		assert.Nil(t, response)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

// TestGetEntries tests the paginated entry listing
func (suite *TimeClockServiceTestSuite) TestGetEntries() {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	from := base
	to := base.AddDate(0, 0, 7)

	suite.T().Run("Returns page with totals", func(t *testing.T) {
		entries := []models.TimeClockEntry{
			suite.entry(models.ClockTypeClockIn, base.Add(8*time.Hour)),
			suite.entry(models.ClockTypeClockOut, base.Add(16*time.Hour)),
		}
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)
		suite.entryRepo.EXPECT().GetByWorkerAndDateRange(suite.worker.ID, from, to, 20, 0).Return(entries, int64(2), nil)

		response, err := suite.service.GetEntries(suite.worker.ID, from, to, 1, 20)
		assert.NoError(t, err)
		assert.Len(t, response.Entries, 2)
		assert.Equal(t, int64(2), response.Total)
		assert.Equal(t, 1, response.Page)
	})

	suite.T().Run("Clamps pagination", func(t *testing.T) {
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)
		suite.entryRepo.EXPECT().GetByWorkerAndDateRange(suite.worker.ID, from, to, 20, 0).Return(nil, int64(0), nil)

		response, err := suite.service.GetEntries(suite.worker.ID, from, to, 0, 500)
		assert.NoError(t, err)
		assert.Equal(t, 1, response.Page)
		assert.Equal(t, 20, response.PageSize)
	})

	suite.T().Run("Inverted range", func(t *testing.T) {
		suite.workerRepo.EXPECT().GetByID(suite.worker.ID).Return(suite.worker, nil)

		response, err := suite.service.GetEntries(suite.worker.ID, to, from, 1, 20)
		assert.Nil(t, response)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
	})
}

// TestTimeClockServiceTestSuite runs the test suite
func TestTimeClockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeClockServiceTestSuite))
}
