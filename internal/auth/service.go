package auth

import (
	"errors"
	"fmt"
	"time"

	"smart-erd-backend/internal/config"
	"smart-erd-backend/internal/database/models"
	apperrors "smart-erd-backend/internal/errors"
	"smart-erd-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService provides signup, login and token handling. Tokens are signed
// HS256 bearer tokens whose subject is the user's login id.
type AuthService struct {
	config    *config.Config
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Name                 string `json:"name,omitempty" example:"Jane Doe"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SignupRequest represents the request to register a new user
type SignupRequest struct {
	LoginID  string `json:"login_id" validate:"required,min=2,max=50" example:"hong"`
	Password string `json:"password" validate:"required,min=8,max=100" example:"password123"`
	Name     string `json:"name" validate:"required,min=1,max=50" example:"Jane Doe"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required,max=50" example:"hong"`
	Password string `json:"password" validate:"required,max=100" example:"password123"`
}

// AuthResponse represents the response for signup and login
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
	LoginID     string `json:"login_id" example:"hong"`
	Name        string `json:"name" example:"Jane Doe"`
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AuthService {
	return &AuthService{
		config:    cfg,
		userRepo:  userRepo,
		validator: validator,
	}
}

// Signup registers a new user and returns a fresh token
func (s *AuthService) Signup(req *SignupRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	exists, err := s.userRepo.ExistsByLoginID(req.LoginID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing login id: %w", err)
	}
	if exists {
		return nil, apperrors.ErrLoginIDExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		LoginID:  req.LoginID,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.userRepo.Create(user); err != nil {
		// Racing signup for the same login id loses on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLoginIDExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenResponse(user)
}

// Login verifies credentials and returns a fresh token. The same error is
// returned for an unknown login id and a wrong password.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	user, err := s.userRepo.GetByLoginID(req.LoginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

// GenerateToken creates a signed JWT for the given user
func (s *AuthService) GenerateToken(loginID, name string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   loginID,
			Issuer:    s.config.JWTIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken validates and parses a JWT, returning its claims
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) tokenResponse(user *models.User) (*AuthResponse, error) {
	token, err := s.GenerateToken(user.LoginID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.JWTExpiry.Seconds()),
		LoginID:     user.LoginID,
		Name:        user.Name,
	}, nil
}

// toValidationError converts the first validator violation into an app-level
// ValidationError so the boundary layer can map it to a 400.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewValidationError(verrs[0].Field(), verrs[0].Tag())
	}
	return apperrors.NewValidationError("", err.Error())
}
