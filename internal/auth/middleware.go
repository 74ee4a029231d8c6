package auth

import (
	"net/http"
	"strings"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const credentialsError = "Could not validate credentials"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token, re-loads its user and sets the user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.FromGinContext(c).WithError(apperrors.ErrMissingToken).Debug("Rejected request")
			unauthorized(c)
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			logger.FromGinContext(c).WithError(apperrors.ErrInvalidToken).Debug("Rejected authorization header")
			unauthorized(c)
			return
		}

		user, claims, err := m.service.Authenticate(strings.TrimSpace(tokenString))
		if err != nil {
			if apperrors.IsAuthentication(err) {
				logger.FromGinContext(c).WithError(err).Debug("Rejected bearer token")
			} else {
				logger.FromGinContext(c).WithError(err).Error("Failed to authenticate bearer token")
			}
			unauthorized(c)
			return
		}

		// Set user context
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("organization_id", user.OrganizationID)
		c.Set("current_user", user)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": credentialsError})
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetOrganizationID is a helper function to extract the caller's organization ID from context
func GetOrganizationID(c *gin.Context) (uint, bool) {
	orgID, exists := c.Get("organization_id")
	if !exists {
		return 0, false
	}

	id, ok := orgID.(uint)
	return id, ok
}

// GetCurrentUser is a helper function to extract the authenticated user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}

	u, ok := user.(*models.User)
	return u, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
