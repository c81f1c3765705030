//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"staffing-backend/internal/database/models"
	"staffing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TimeClockEntryRepositoryTestSuite tests the TimeClockEntryRepository
type TimeClockEntryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TimeClockEntryRepository
	workerRepo    *WorkerRepository
	locationRepo  *LocationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TimeClockEntryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTimeClockEntryRepository(suite.baseTestSuite.DB)
	suite.workerRepo = NewWorkerRepository(suite.baseTestSuite.DB)
	suite.locationRepo = NewLocationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TimeClockEntryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TimeClockEntryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TimeClockEntryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createReferences persists a worker and location for entries to point at
func (suite *TimeClockEntryRepositoryTestSuite) createReferences() (*models.Worker, *models.Location) {
	worker := suite.factories.Worker.Create()
	suite.NoError(suite.workerRepo.Create(worker))
	location := suite.factories.Location.Create()
	suite.NoError(suite.locationRepo.Create(location))
	return worker, location
}

// appendAt records an entry at the given offset from a fixed base time
func (suite *TimeClockEntryRepositoryTestSuite) appendAt(worker *models.Worker, location *models.Location, clockType models.ClockType, at time.Time) *models.TimeClockEntry {
	entry := suite.factories.TimeClockEntry.ForWorkerAtLocation(worker.ID, location.ID)
	entry.ClockType = clockType
	entry.Timestamp = at
	suite.NoError(suite.repo.Append(entry))
	return entry
}

// TestAppend tests recording a new entry
func (suite *TimeClockEntryRepositoryTestSuite) TestAppend() {
	worker, location := suite.createReferences()
	entry := suite.factories.TimeClockEntry.ForWorkerAtLocation(worker.ID, location.ID)

	err := suite.repo.Append(entry)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, entry.ID)
	suite.NotZero(entry.Seq)
}

// TestGetByWorker tests that the log comes back in timestamp order
func (suite *TimeClockEntryRepositoryTestSuite) TestGetByWorker() {
	worker, location := suite.createReferences()
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	// Insert out of chronological order
	suite.appendAt(worker, location, models.ClockTypeBreakStart, base.Add(2*time.Hour))
	suite.appendAt(worker, location, models.ClockTypeClockIn, base)
	suite.appendAt(worker, location, models.ClockTypeBreakEnd, base.Add(3*time.Hour))

	entries, err := suite.repo.GetByWorker(worker.ID)

	suite.NoError(err)
	suite.Len(entries, 3)
	suite.Equal(models.ClockTypeClockIn, entries[0].ClockType)
	suite.Equal(models.ClockTypeBreakStart, entries[1].ClockType)
	suite.Equal(models.ClockTypeBreakEnd, entries[2].ClockType)
}

// TestGetByWorkerTieBreak tests that equal timestamps keep insertion order
func (suite *TimeClockEntryRepositoryTestSuite) TestGetByWorkerTieBreak() {
	worker, location := suite.createReferences()
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	first := suite.appendAt(worker, location, models.ClockTypeClockIn, at)
	second := suite.appendAt(worker, location, models.ClockTypeBreakStart, at)

	entries, err := suite.repo.GetByWorker(worker.ID)

	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(first.ID, entries[0].ID)
	suite.Equal(second.ID, entries[1].ID)
}

// TestGetByWorkerAndDateRange tests the windowed, paginated read
func (suite *TimeClockEntryRepositoryTestSuite) TestGetByWorkerAndDateRange() {
	worker, location := suite.createReferences()
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		clockType := models.ClockTypeClockIn
		if i%2 == 1 {
			clockType = models.ClockTypeClockOut
		}
		suite.appendAt(worker, location, clockType, base.AddDate(0, 0, i))
	}

	entries, total, err := suite.repo.GetByWorkerAndDateRange(worker.ID, base, base.AddDate(0, 0, 2), 10, 0)
	suite.NoError(err)
	suite.Len(entries, 3)
	suite.Equal(int64(3), total)

	entries, total, err = suite.repo.GetByWorkerAndDateRange(worker.ID, base, base.AddDate(0, 0, 3), 2, 2)
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(int64(4), total)
}

// TestGetLatestByWorker tests retrieving the most recent entry
func (suite *TimeClockEntryRepositoryTestSuite) TestGetLatestByWorker() {
	worker, location := suite.createReferences()
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	suite.appendAt(worker, location, models.ClockTypeClockIn, base)
	latest := suite.appendAt(worker, location, models.ClockTypeBreakStart, base.Add(2*time.Hour))

	entry, err := suite.repo.GetLatestByWorker(worker.ID)

	suite.NoError(err)
	suite.NotNil(entry)
	suite.Equal(latest.ID, entry.ID)
}

// TestGetLatestByWorkerEmpty tests that an empty log yields nil, not an error
func (suite *TimeClockEntryRepositoryTestSuite) TestGetLatestByWorkerEmpty() {
	entry, err := suite.repo.GetLatestByWorker(uuid.New())

	suite.NoError(err)
	suite.Nil(entry)
}

// TestGetLatestPerWorkerAtLocation tests the headcount derivation read
func (suite *TimeClockEntryRepositoryTestSuite) TestGetLatestPerWorkerAtLocation() {
	worker1, location := suite.createReferences()
	worker2 := suite.factories.Worker.Create()
	suite.NoError(suite.workerRepo.Create(worker2))
	otherLocation := suite.factories.Location.Create()
	suite.NoError(suite.locationRepo.Create(otherLocation))

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	suite.appendAt(worker1, location, models.ClockTypeClockIn, base)
	suite.appendAt(worker1, location, models.ClockTypeBreakStart, base.Add(2*time.Hour))
	suite.appendAt(worker2, location, models.ClockTypeClockIn, base.Add(time.Hour))

	// Entries at another location must not leak into the result
	suite.appendAt(worker2, otherLocation, models.ClockTypeClockOut, base.Add(5*time.Hour))

	entries, err := suite.repo.GetLatestPerWorkerAtLocation(location.ID)

	suite.NoError(err)
	suite.Len(entries, 2)

	byWorker := make(map[uuid.UUID]models.ClockType, len(entries))
	for _, e := range entries {
		byWorker[e.WorkerID] = e.ClockType
	}
	suite.Equal(models.ClockTypeBreakStart, byWorker[worker1.ID])
	suite.Equal(models.ClockTypeClockIn, byWorker[worker2.ID])
}

// TestGetByLocationAndDateRange tests the location-wide window read
func (suite *TimeClockEntryRepositoryTestSuite) TestGetByLocationAndDateRange() {
	worker, location := suite.createReferences()
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	inside := suite.appendAt(worker, location, models.ClockTypeClockIn, base)
	suite.appendAt(worker, location, models.ClockTypeClockOut, base.AddDate(0, 0, 3))

	entries, err := suite.repo.GetByLocationAndDateRange(location.ID, base, base.AddDate(0, 0, 1))

	suite.NoError(err)
	suite.Len(entries, 1)
	suite.Equal(inside.ID, entries[0].ID)
}

// Run the test suite
func TestTimeClockEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TimeClockEntryRepositoryTestSuite))
}
