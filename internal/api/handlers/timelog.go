package handlers

import (
	"net/http"

	"trainit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TimeLogHandler handles HTTP requests for training time logs
type TimeLogHandler struct {
	service service.TimeLogServiceInterface
}

// NewTimeLogHandler creates a new time log handler
func NewTimeLogHandler(service service.TimeLogServiceInterface) *TimeLogHandler {
	return &TimeLogHandler{service: service}
}

// CreateLog handles POST /plans/log
// @Summary Log training time
// @Description Record a training session for the caller, optionally against an animal of the caller's organization
// @Tags timelogs
// @Accept json
// @Produce json
// @Param log body service.CreateTimeLogRequest true "Time log"
// @Success 201 {object} service.TimeLogResponse "Successfully logged time"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Animal not found or not in your organization"
// @Security BearerAuth
// @Router /plans/log [post]
func (h *TimeLogHandler) CreateLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateTimeLogRequest
	if !bindJSON(c, &req) {
		return
	}

	log, err := h.service.Create(userID, &req)
	if err != nil {
		respondError(c, err, "create time log")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// ListLogs handles GET /plans/logs
// @Summary List time logs
// @Description List the caller's own time logs, newest first
// @Tags timelogs
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Number of items to return (1-100)" default(10)
// @Success 200 {array} service.TimeLogResponse "Time logs"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Security BearerAuth
// @Router /plans/logs [get]
func (h *TimeLogHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skip, limit, ok := pagination(c, service.DefaultTimeLogLimit)
	if !ok {
		return
	}

	logs, err := h.service.List(userID, skip, limit)
	if err != nil {
		respondError(c, err, "list time logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// Stats handles GET /plans/stats
// @Summary Training time statistics
// @Description Session count, total time and time logged in the last 7 days for the caller
// @Tags timelogs
// @Produce json
// @Success 200 {object} service.TimeLogStatsResponse "Statistics"
// @Security BearerAuth
// @Router /plans/stats [get]
func (h *TimeLogHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(userID)
	if err != nil {
		respondError(c, err, "get time log stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
