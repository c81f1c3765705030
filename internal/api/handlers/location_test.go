package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/mocks"
	"staffing-backend/internal/service"
	"staffing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LocationHandlerTestSuite defines the test suite for LocationHandler
type LocationHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockLocationService *mocks.MockLocationServiceInterface
	handler             *LocationHandler
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LocationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLocationService = mocks.NewMockLocationServiceInterface(suite.ctrl)

	suite.handler = NewLocationHandler(suite.mockLocationService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	locations := v1.Group("/locations")
	{
		locations.POST("", suite.handler.CreateLocation)
		locations.GET("", suite.handler.ListLocations)
		locations.GET("/:id", suite.handler.GetLocation)
		locations.PUT("/:id", suite.handler.UpdateLocation)
	}
}

// TearDownTest cleans up after each test
func (suite *LocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLocation tests creating a location
func (suite *LocationHandlerTestSuite) TestCreateLocation() {
	locationID := uuid.New()
	expectedResponse := &service.LocationResponse{
		ID:                  locationID,
		Name:                "Downtown",
		Timezone:            "America/New_York",
		IsActive:            true,
		RequiredCoverage:    2,
		MaxConcurrentBreaks: 1,
	}

	suite.mockLocationService.EXPECT().
		CreateLocation(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/locations", map[string]interface{}{
		"name":                  "Downtown",
		"timezone":              "America/New_York",
		"required_coverage":     2,
		"max_concurrent_breaks": 1,
	})

	var response service.LocationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), locationID, response.ID)
	assert.Equal(suite.T(), 2, response.RequiredCoverage)
}

// TestCreateLocationDuplicateName tests the validation payload on 400
func (suite *LocationHandlerTestSuite) TestCreateLocationDuplicateName() {
	suite.mockLocationService.EXPECT().
		CreateLocation(gomock.Any()).
		Return(nil, apperrors.NewValidationError([]apperrors.Violation{{
			Field:    "name",
			Code:     "duplicate",
			Message:  "a location named Downtown already exists",
			Severity: apperrors.SeverityError,
		}})).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/locations", map[string]interface{}{
		"name": "Downtown",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "validation failed", response["error"])
}

// TestGetLocation tests retrieving a location
func (suite *LocationHandlerTestSuite) TestGetLocation() {
	locationID := uuid.New()
	expectedResponse := &service.LocationResponse{ID: locationID, Name: "Downtown", IsActive: true}

	suite.mockLocationService.EXPECT().
		GetLocation(locationID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/locations/%s", locationID), nil)

	var response service.LocationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), locationID, response.ID)
}

// TestGetLocationNotFound tests the 404 mapping
func (suite *LocationHandlerTestSuite) TestGetLocationNotFound() {
	locationID := uuid.New()
	suite.mockLocationService.EXPECT().
		GetLocation(locationID).
		Return(nil, apperrors.NewNotFoundError("location", locationID)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/locations/%s", locationID), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestGetLocationInvalidID tests rejection of a malformed UUID
func (suite *LocationHandlerTestSuite) TestGetLocationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/locations/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid location ID")
}

// TestListLocations tests the paginated listing
func (suite *LocationHandlerTestSuite) TestListLocations() {
	expectedResponse := &service.LocationListResponse{
		Locations: []service.LocationResponse{{ID: uuid.New()}, {ID: uuid.New()}},
		Total:     2,
		Page:      1,
		PageSize:  20,
	}

	suite.mockLocationService.EXPECT().
		ListLocations(1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/locations", nil)

	var response service.LocationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Locations, 2)
}

// TestUpdateLocation tests the partial update endpoint
func (suite *LocationHandlerTestSuite) TestUpdateLocation() {
	locationID := uuid.New()
	expectedResponse := &service.LocationResponse{ID: locationID, Name: "Downtown", IsActive: false}

	suite.mockLocationService.EXPECT().
		UpdateLocation(locationID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/locations/%s", locationID),
		map[string]interface{}{"is_active": false})

	var response service.LocationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.False(suite.T(), response.IsActive)
}

// TestLocationHandlerTestSuite runs the test suite
func TestLocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}
