//go:build integration
// +build integration

package repository

import (
	"testing"

	"staffing-backend/internal/database/models"
	"staffing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkerRepositoryTestSuite tests the WorkerRepository
type WorkerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new worker
func (suite *WorkerRepositoryTestSuite) TestCreate() {
	worker := suite.factories.Worker.Create()

	err := suite.repo.Create(worker)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, worker.ID)
	suite.NotZero(worker.CreatedAt)
	suite.NotZero(worker.UpdatedAt)
}

// TestCreateDuplicateEmail tests that the email unique index holds
func (suite *WorkerRepositoryTestSuite) TestCreateDuplicateEmail() {
	worker1 := suite.factories.Worker.WithEmail("same@example.com")
	err := suite.repo.Create(worker1)
	suite.NoError(err)

	worker2 := suite.factories.Worker.WithEmail("same@example.com")
	worker2.FullName = "Different Name"
	worker2.FirstName = "Different"
	worker2.LastName = "Name"

	err = suite.repo.Create(worker2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a worker by ID
func (suite *WorkerRepositoryTestSuite) TestGetByID() {
	worker := suite.factories.Worker.WithCapabilities(
		models.CapabilityRecordTimeClock,
		models.CapabilityManageSchedule,
	)
	err := suite.repo.Create(worker)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(worker.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(worker.ID, retrieved.ID)
	suite.Equal(worker.Email, retrieved.Email)
	suite.Equal(worker.FullName, retrieved.FullName)
	suite.Equal(models.EmploymentStatusActive, retrieved.EmploymentStatus)
	// Capability set round-trips through the JSONB column
	suite.Len(retrieved.Capabilities, 2)
	suite.Contains(retrieved.Capabilities, models.CapabilityManageSchedule)
}

// TestGetByIDNotFound tests retrieving a non-existent worker
func (suite *WorkerRepositoryTestSuite) TestGetByIDNotFound() {
	worker, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(worker)
}

// TestGetByEmail tests retrieving a worker by email
func (suite *WorkerRepositoryTestSuite) TestGetByEmail() {
	worker := suite.factories.Worker.WithEmail("findme@example.com")
	err := suite.repo.Create(worker)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByEmail("findme@example.com")

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(worker.ID, retrieved.ID)
}

// TestGetByEmailNotFound tests retrieving a non-existent email
func (suite *WorkerRepositoryTestSuite) TestGetByEmailNotFound() {
	worker, err := suite.repo.GetByEmail("nobody@example.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(worker)
}

// TestGetAll tests listing workers with pagination
func (suite *WorkerRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 5; i++ {
		worker := suite.factories.Worker.Create()
		err := suite.repo.Create(worker)
		suite.NoError(err)
	}

	workers, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(workers, 2)
	suite.Equal(int64(5), total)

	workers, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(workers, 1)
	suite.Equal(int64(5), total)
}

// TestGetByEmploymentStatus tests filtering workers by status
func (suite *WorkerRepositoryTestSuite) TestGetByEmploymentStatus() {
	active1 := suite.factories.Worker.WithEmploymentStatus(models.EmploymentStatusActive)
	suite.NoError(suite.repo.Create(active1))
	active2 := suite.factories.Worker.WithEmploymentStatus(models.EmploymentStatusActive)
	suite.NoError(suite.repo.Create(active2))
	onLeave := suite.factories.Worker.WithEmploymentStatus(models.EmploymentStatusOnLeave)
	suite.NoError(suite.repo.Create(onLeave))

	workers, total, err := suite.repo.GetByEmploymentStatus(models.EmploymentStatusOnLeave, 10, 0)

	suite.NoError(err)
	suite.Len(workers, 1)
	suite.Equal(int64(1), total)
	suite.Equal(onLeave.ID, workers[0].ID)
}

// TestUpdate tests updating a worker
func (suite *WorkerRepositoryTestSuite) TestUpdate() {
	worker := suite.factories.Worker.Create()
	err := suite.repo.Create(worker)
	suite.NoError(err)

	worker.FirstName = "Updated"
	worker.LastName = "Name"
	worker.FullName = "Updated Name"
	worker.EmploymentStatus = models.EmploymentStatusOnLeave
	worker.DefaultHourlyRate = 21.00

	err = suite.repo.Update(worker)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(worker.ID)
	suite.NoError(err)
	suite.Equal("Updated Name", updated.FullName)
	suite.Equal(models.EmploymentStatusOnLeave, updated.EmploymentStatus)
	suite.Equal(21.00, updated.DefaultHourlyRate)
	suite.True(updated.UpdatedAt.After(updated.CreatedAt))
}

// Run the test suite
func TestWorkerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerRepositoryTestSuite))
}
