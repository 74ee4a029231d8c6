package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"trainit-backend/internal/auth"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Animal not found or not in your organization"`
	Details string `json:"details,omitempty" example:"validation error: name - is required"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Animal deleted successfully"`
}

// respondError maps a service error to its HTTP status and body.
// action completes "Failed to ..." for unexpected errors.
func respondError(c *gin.Context, err error, action string) {
	var notFound *apperrors.NotFoundError
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMessage(notFound.Entity)})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Errorf("Failed to %s", action)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action, Details: err.Error()})
	}
}

func notFoundMessage(entity string) string {
	if entity == "" {
		return "Not found"
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " not found or not in your organization"
}

// bindJSON decodes the request body into req, answering 400 on malformed input
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return false
	}
	return true
}

// pathID parses the positive integer path parameter name
func pathID(c *gin.Context, name, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + entity + " ID"})
		return 0, false
	}
	return uint(id), true
}

// pagination reads skip and limit query parameters, answering 400 when they are not integers
func pagination(c *gin.Context, defaultLimit int) (int, int, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidPaginationParams.Error(), Details: "skip must be an integer"})
		return 0, 0, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidPaginationParams.Error(), Details: "limit must be an integer"})
		return 0, 0, false
	}
	return skip, limit, true
}

// currentUserID returns the authenticated caller, answering 401 when the auth middleware did not run
func currentUserID(c *gin.Context) (uint, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
		return 0, false
	}
	return userID, true
}
