package auth

import (
	"errors"
	"fmt"
	"time"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthService provides authentication functionality
type AuthService struct {
	config   *AuthConfig
	userRepo repository.UserRepositoryInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID         uint   `json:"user_id" example:"1"`
	Email          string `json:"email" example:"trainer@example.com"`
	OrganizationID uint   `json:"organization_id" example:"1"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SignupRequest represents the request to register a user
type SignupRequest struct {
	Email            string `json:"email" binding:"required,email" example:"trainer@example.com"`
	Password         string `json:"password" binding:"required,max=72" example:"s3cret-pass"`
	OrganizationName string `json:"organization_name" binding:"required" example:"Happy Paws Rescue"`
}

// LoginRequest represents the request to obtain an access token
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"trainer@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// Token is the response of a successful login
type Token struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

// OrganizationResponse represents an organization embedded in a user response
type OrganizationResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             uint                  `json:"id"`
	Email          string                `json:"email"`
	OrganizationID uint                  `json:"organization_id"`
	Organization   *OrganizationResponse `json:"organization"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		userRepo: userRepo,
	}, nil
}

// Signup registers a user inside the named organization, creating the organization on first use
func (s *AuthService) Signup(req *SignupRequest) (*UserResponse, error) {
	_, err := s.userRepo.GetByEmail(req.Email)
	if err == nil {
		return nil, apperrors.ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          req.Email,
		HashedPassword: hash,
	}
	if err := s.userRepo.CreateWithOrganization(user, req.OrganizationName); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOrganizationExists):
			return nil, err
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// The organization insert skips name conflicts, so this is users.email
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return ToUserResponse(user), nil
}

// Login verifies the credentials and issues an access token.
// An unknown email and a wrong password fail the same way.
func (s *AuthService) Login(req *LoginRequest) (*Token, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !VerifyPassword(user.HashedPassword, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &Token{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:         user.ID,
		Email:          user.Email,
		OrganizationID: user.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithExpirationRequired(), jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// CurrentUser loads the user named by a token subject, with its organization
func (s *AuthService) CurrentUser(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Authenticate validates a bearer token and resolves the user it was issued to
func (s *AuthService) Authenticate(tokenString string) (*models.User, *AuthClaims, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	user, err := s.CurrentUser(claims.Subject)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, apperrors.ErrInvalidToken
		}
		return nil, nil, err
	}

	return user, claims, nil
}

// ToUserResponse converts a user, with its organization when loaded, to its API shape
func ToUserResponse(user *models.User) *UserResponse {
	response := &UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		OrganizationID: user.OrganizationID,
	}
	if user.Organization != nil {
		response.Organization = &OrganizationResponse{
			ID:          user.Organization.ID,
			Name:        user.Organization.Name,
			Description: user.Organization.Description,
			CreatedAt:   user.Organization.CreatedAt,
		}
	}
	return response
}
