package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/mocks"
	"staffing-backend/internal/service"
	"staffing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkerHandlerTestSuite defines the test suite for WorkerHandler
type WorkerHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockWorkerService *mocks.MockWorkerServiceInterface
	handler           *WorkerHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *WorkerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkerService = mocks.NewMockWorkerServiceInterface(suite.ctrl)

	suite.handler = NewWorkerHandler(suite.mockWorkerService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	workers := v1.Group("/workers")
	{
		workers.POST("", suite.handler.CreateWorker)
		workers.GET("", suite.handler.ListWorkers)
		workers.GET("/:id", suite.handler.GetWorker)
		workers.PUT("/:id", suite.handler.UpdateWorker)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateWorker tests creating a worker
func (suite *WorkerHandlerTestSuite) TestCreateWorker() {
	workerID := uuid.New()
	expectedResponse := &service.WorkerResponse{
		ID:               workerID,
		FullName:         "Jordan Reyes",
		FirstName:        "Jordan",
		LastName:         "Reyes",
		Email:            "jordan.reyes@test.com",
		EmploymentStatus: models.EmploymentStatusActive,
		Capabilities:     []models.Capability{models.CapabilityRecordTimeClock},
	}

	suite.mockWorkerService.EXPECT().
		CreateWorker(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/workers", map[string]interface{}{
		"first_name":   "Jordan",
		"last_name":    "Reyes",
		"email":        "jordan.reyes@test.com",
		"capabilities": []string{"RECORD_TIME_CLOCK"},
	})

	var response service.WorkerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), workerID, response.ID)
	assert.Equal(suite.T(), models.EmploymentStatusActive, response.EmploymentStatus)
}

// TestCreateWorkerDuplicateEmail tests the validation payload on 400
func (suite *WorkerHandlerTestSuite) TestCreateWorkerDuplicateEmail() {
	suite.mockWorkerService.EXPECT().
		CreateWorker(gomock.Any()).
		Return(nil, apperrors.NewValidationError([]apperrors.Violation{{
			Field:    "email",
			Code:     "duplicate",
			Message:  "a worker with email jordan.reyes@test.com already exists",
			Severity: apperrors.SeverityError,
		}})).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/workers", map[string]interface{}{
		"first_name": "Jordan",
		"last_name":  "Reyes",
		"email":      "jordan.reyes@test.com",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "validation failed", response["error"])
}

// TestGetWorker tests retrieving a worker
func (suite *WorkerHandlerTestSuite) TestGetWorker() {
	workerID := uuid.New()
	expectedResponse := &service.WorkerResponse{ID: workerID, FullName: "Jordan Reyes"}

	suite.mockWorkerService.EXPECT().
		GetWorker(workerID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/workers/%s", workerID), nil)

	var response service.WorkerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), workerID, response.ID)
}

// TestGetWorkerNotFound tests the 404 mapping
func (suite *WorkerHandlerTestSuite) TestGetWorkerNotFound() {
	workerID := uuid.New()
	suite.mockWorkerService.EXPECT().
		GetWorker(workerID).
		Return(nil, apperrors.NewNotFoundError("worker", workerID)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/workers/%s", workerID), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestGetWorkerInvalidID tests UUID validation on the path parameter
func (suite *WorkerHandlerTestSuite) TestGetWorkerInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/workers/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid worker ID")
}

// TestListWorkers tests the paginated listing
func (suite *WorkerHandlerTestSuite) TestListWorkers() {
	expectedResponse := &service.WorkerListResponse{
		Workers:  []service.WorkerResponse{{ID: uuid.New()}, {ID: uuid.New()}},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}

	suite.mockWorkerService.EXPECT().
		ListWorkers(models.EmploymentStatus(""), 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/workers", nil)

	var response service.WorkerListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Workers, 2)
}

// TestListWorkersFiltered tests the status filter query parameter
func (suite *WorkerHandlerTestSuite) TestListWorkersFiltered() {
	expectedResponse := &service.WorkerListResponse{Workers: []service.WorkerResponse{}, Page: 2, PageSize: 10}

	suite.mockWorkerService.EXPECT().
		ListWorkers(models.EmploymentStatusOnLeave, 2, 10).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/workers?employment_status=ON_LEAVE&page=2&page_size=10", nil)

	var response service.WorkerListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Page)
}

// TestUpdateWorker tests the partial update endpoint
func (suite *WorkerHandlerTestSuite) TestUpdateWorker() {
	workerID := uuid.New()
	expectedResponse := &service.WorkerResponse{
		ID:               workerID,
		FullName:         "Jordan Reyes",
		EmploymentStatus: models.EmploymentStatusOnLeave,
	}

	suite.mockWorkerService.EXPECT().
		UpdateWorker(workerID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/workers/%s", workerID),
		map[string]interface{}{"employment_status": "ON_LEAVE"})

	var response service.WorkerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), models.EmploymentStatusOnLeave, response.EmploymentStatus)
}

// TestWorkerHandlerTestSuite runs the test suite
func TestWorkerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerHandlerTestSuite))
}
