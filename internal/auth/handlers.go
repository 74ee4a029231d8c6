package auth

import (
	"errors"
	"net/http"

	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles user registration
// @Summary Register a user
// @Description Create a user account inside the named organization. The organization is created on first use.
// @Tags authentication
// @Accept json
// @Produce json
// @Param user body SignupRequest true "Signup data"
// @Success 201 {object} UserResponse "User created"
// @Failure 400 {object} map[string]interface{} "Invalid request body or email already registered"
// @Failure 409 {object} map[string]interface{} "Organization created concurrently, retry"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Signup(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			logger.FromGinContext(c).WithError(err).Warn("Signup lost an organization race")
			c.JSON(http.StatusConflict, gin.H{"error": "Organization is being created, please retry"})
			return
		}
		logger.FromGinContext(c).WithError(err).Error("Signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "details": err.Error()})
		return
	}

	logger.FromGinContext(c).WithFields(map[string]interface{}{
		"user_id":         user.ID,
		"organization_id": user.OrganizationID,
	}).Info("User registered")
	c.JSON(http.StatusCreated, user)
}

// Login handles credential exchange for an access token
// @Summary Log in
// @Description Exchange email and password for a bearer access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} Token "Access token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Incorrect email or password"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.service.Login(&req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
			return
		}
		logger.FromGinContext(c).WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me returns the authenticated user
// @Summary Current user
// @Description Get the authenticated user and its organization
// @Tags authentication
// @Produce json
// @Success 200 {object} UserResponse "Authenticated user"
// @Failure 401 {object} map[string]interface{} "Could not validate credentials"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := GetCurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": credentialsError})
		return
	}

	c.JSON(http.StatusOK, ToUserResponse(user))
}
