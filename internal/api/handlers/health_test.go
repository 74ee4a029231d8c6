package handlers

import (
	"net/http"
	"testing"

	"trainit-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	handler := NewHealthHandler(base.DB)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/", Root)
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	recorder := httpSuite.MakeRequest("GET", "/", nil)
	testutils.AssertSuccessResponse(t, recorder, http.StatusOK)
	assert.JSONEq(t, `{"message":"Welcome to TrainIt API - Animal Training Plan Tracker"}`, recorder.Body.String())

	var health HealthResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health", nil), http.StatusOK, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Services["database"])

	var ready ReadinessResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health/ready", nil), http.StatusOK, &ready)
	assert.True(t, ready.Ready)

	var live map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health/live", nil), http.StatusOK, &live)
	require.Contains(t, live, "alive")
	assert.Equal(t, true, live["alive"])
}
