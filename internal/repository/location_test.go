//go:build integration
// +build integration

package repository

import (
	"testing"

	"staffing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LocationRepositoryTestSuite tests the LocationRepository
type LocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LocationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLocationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new location
func (suite *LocationRepositoryTestSuite) TestCreate() {
	location := suite.factories.Location.Create()

	err := suite.repo.Create(location)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, location.ID)
	suite.NotZero(location.CreatedAt)
}

// TestCreateDuplicateName tests that the name unique index holds
func (suite *LocationRepositoryTestSuite) TestCreateDuplicateName() {
	location1 := suite.factories.Location.WithName("Downtown")
	err := suite.repo.Create(location1)
	suite.NoError(err)

	location2 := suite.factories.Location.WithName("Downtown")
	err = suite.repo.Create(location2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a location by ID
func (suite *LocationRepositoryTestSuite) TestGetByID() {
	location := suite.factories.Location.WithCoverage(3, 1)
	err := suite.repo.Create(location)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(location.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(location.ID, retrieved.ID)
	suite.Equal(location.Name, retrieved.Name)
	suite.Equal(3, retrieved.RequiredCoverage)
	suite.Equal(1, retrieved.MaxConcurrentBreaks)
	suite.True(retrieved.IsActive)
}

// TestGetByIDNotFound tests retrieving a non-existent location
func (suite *LocationRepositoryTestSuite) TestGetByIDNotFound() {
	location, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(location)
}

// TestGetByName tests retrieving a location by name
func (suite *LocationRepositoryTestSuite) TestGetByName() {
	location := suite.factories.Location.WithName("Harborview")
	err := suite.repo.Create(location)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByName("Harborview")

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(location.ID, retrieved.ID)
}

// TestGetAll tests listing locations with pagination
func (suite *LocationRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 4; i++ {
		location := suite.factories.Location.Create()
		err := suite.repo.Create(location)
		suite.NoError(err)
	}

	locations, total, err := suite.repo.GetAll(3, 0)
	suite.NoError(err)
	suite.Len(locations, 3)
	suite.Equal(int64(4), total)

	locations, total, err = suite.repo.GetAll(3, 3)
	suite.NoError(err)
	suite.Len(locations, 1)
	suite.Equal(int64(4), total)
}

// TestExists tests the existence probe
func (suite *LocationRepositoryTestSuite) TestExists() {
	location := suite.factories.Location.Create()
	err := suite.repo.Create(location)
	suite.NoError(err)

	exists, err := suite.repo.Exists(location.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// TestUpdate tests updating a location
func (suite *LocationRepositoryTestSuite) TestUpdate() {
	location := suite.factories.Location.Create()
	err := suite.repo.Create(location)
	suite.NoError(err)

	location.IsActive = false
	location.RequiredCoverage = 2

	err = suite.repo.Update(location)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(location.ID)
	suite.NoError(err)
	suite.False(updated.IsActive)
	suite.Equal(2, updated.RequiredCoverage)
}

// Run the test suite
func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}
