package handlers

import (
	"net/http"
	"testing"
	"time"

	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/mocks"
	"trainit-backend/internal/service"
	"trainit-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlanStepHandlerTestSuite defines the test suite for PlanStepHandler
type PlanStepHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStepService *mocks.MockPlanStepServiceInterface
	handler         *PlanStepHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PlanStepHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStepService = mocks.NewMockPlanStepServiceInterface(suite.ctrl)
	suite.handler = NewPlanStepHandler(suite.mockStepService)
	suite.httpSuite = newAuthenticatedHTTPSuite()

	steps := suite.httpSuite.Router.Group("/steps")
	{
		steps.PUT("/:id", suite.handler.UpdateStep)
		steps.DELETE("/:id", suite.handler.DeleteStep)
		steps.POST("/:id/complete", suite.handler.CompleteStep)
		steps.POST("/:id/notes", suite.handler.AddNote)
		steps.GET("/:id/notes", suite.handler.ListNotes)
		steps.PUT("/notes/:id", suite.handler.UpdateNote)
		steps.DELETE("/notes/:id", suite.handler.DeleteNote)
	}
}

// TearDownTest cleans up after each test
func (suite *PlanStepHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestStepRoutes covers the status codes of every step and note route
func (suite *PlanStepHandlerTestSuite) TestStepRoutes() {
	timestamp := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	note := &service.StepSessionNoteResponse{ID: 40, StepID: 30, Timestamp: timestamp}

	testCases := []testutils.HTTPTestCase{
		{
			Name:    "update step",
			Request: testutils.MockHTTPRequest{Method: "PUT", URL: "/steps/30", Body: map[string]interface{}{"order": 2}},
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusOK,
				Body:   map[string]interface{}{"id": 30, "name": "Fade the lure", "description": nil, "order": 2, "estimated_sessions": nil, "is_complete": false},
			},
			Setup: func() {
				suite.mockStepService.EXPECT().Update(testUserID, uint(30), gomock.Any()).
					Return(&service.PlanStepResponse{ID: 30, Name: "Fade the lure", Order: 2}, nil)
			},
		},
		{
			Name:             "complete step",
			Request:          testutils.MockHTTPRequest{Method: "POST", URL: "/steps/30/complete"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
			Setup: func() {
				suite.mockStepService.EXPECT().MarkComplete(testUserID, uint(30)).
					Return(&service.PlanStepResponse{ID: 30, IsComplete: true}, nil)
			},
		},
		{
			Name:             "complete foreign step",
			Request:          testutils.MockHTTPRequest{Method: "POST", URL: "/steps/31/complete"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound, Body: map[string]interface{}{"error": "Step not found or not in your organization"}},
			Setup: func() {
				suite.mockStepService.EXPECT().MarkComplete(testUserID, uint(31)).Return(nil, apperrors.ErrStepNotFound)
			},
		},
		{
			Name:             "delete step",
			Request:          testutils.MockHTTPRequest{Method: "DELETE", URL: "/steps/30"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNoContent},
			Setup: func() {
				suite.mockStepService.EXPECT().Delete(testUserID, uint(30)).Return(nil)
			},
		},
		{
			Name:             "add note",
			Request:          testutils.MockHTTPRequest{Method: "POST", URL: "/steps/30/notes", Body: map[string]interface{}{"note": "Good focus", "session_count": 2}},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusCreated},
			Setup: func() {
				suite.mockStepService.EXPECT().AddNote(testUserID, uint(30), gomock.Any()).Return(note, nil)
			},
		},
		{
			Name:             "list notes of foreign step",
			Request:          testutils.MockHTTPRequest{Method: "GET", URL: "/steps/31/notes"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound},
			Setup: func() {
				suite.mockStepService.EXPECT().ListNotes(testUserID, uint(31)).Return(nil, apperrors.ErrStepNotFound)
			},
		},
		{
			Name:             "update note",
			Request:          testutils.MockHTTPRequest{Method: "PUT", URL: "/steps/notes/40", Body: map[string]interface{}{"session_count": 3}},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
			Setup: func() {
				suite.mockStepService.EXPECT().UpdateNote(testUserID, uint(40), gomock.Any()).Return(note, nil)
			},
		},
		{
			Name:             "delete foreign note",
			Request:          testutils.MockHTTPRequest{Method: "DELETE", URL: "/steps/notes/41"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound, Body: map[string]interface{}{"error": "Session note not found or not in your organization"}},
			Setup: func() {
				suite.mockStepService.EXPECT().DeleteNote(testUserID, uint(41)).Return(apperrors.ErrSessionNoteNotFound)
			},
		},
		{
			Name:             "malformed note id",
			Request:          testutils.MockHTTPRequest{Method: "DELETE", URL: "/steps/notes/abc"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest, Body: map[string]interface{}{"error": "Invalid note ID"}},
		},
	}

	suite.httpSuite.RunHTTPTestCases(suite.T(), testCases)
}

// TestListNotes tests that notes keep the service order
func (suite *PlanStepHandlerTestSuite) TestListNotes() {
	first := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	suite.mockStepService.EXPECT().ListNotes(testUserID, uint(30)).Return([]service.StepSessionNoteResponse{
		{ID: 40, StepID: 30, Timestamp: first},
		{ID: 41, StepID: 30, Timestamp: first.Add(time.Hour)},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/steps/30/notes", nil)

	var notes []service.StepSessionNoteResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &notes)
	assert.Equal(suite.T(), []uint{40, 41}, []uint{notes[0].ID, notes[1].ID})
}

// TestPlanStepHandlerTestSuite runs the test suite
func TestPlanStepHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlanStepHandlerTestSuite))
}
