package auth

import (
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenPurpose scopes a JWT to one use. Session tokens never pass as reset
// tokens and vice versa.
type TokenPurpose string

const (
	PurposeSession TokenPurpose = "session"
	PurposeVerify  TokenPurpose = "verify"
	PurposeReset   TokenPurpose = "reset"
)

// Claims are the JWT claims carried by every token the service issues
type Claims struct {
	UserID  string       `json:"user_id"`
	Email   string       `json:"email"`
	IsStaff bool         `json:"is_staff"`
	Purpose TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// AuthService issues and validates the platform's tokens and password hashes
type AuthService struct {
	config   *AuthConfig
	userRepo repository.UserRepositoryInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) *AuthService {
	return &AuthService{config: config, userRepo: userRepo}
}

// Login checks the credentials and returns a session token for the user.
// Accounts whose email is not confirmed cannot log in.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if err := CheckPassword(user.Password, password); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrAccountNotActive
	}

	token, err := s.GenerateToken(user, PurposeSession, time.Duration(s.config.SessionTokenTTL)*time.Minute)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	return token, user, nil
}

// GenerateToken issues a purpose-scoped JWT for the user
func (s *AuthService) GenerateToken(user *models.User, purpose TokenPurpose, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  user.ID.String(),
		Email:   user.Email,
		IsStaff: user.IsStaff,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// VerifyTokenTTL returns the configured lifetime of email verification tokens
func (s *AuthService) VerifyTokenTTL() time.Duration {
	return time.Duration(s.config.VerifyTokenTTL) * time.Minute
}

// ResetTokenTTL returns the configured lifetime of password reset tokens
func (s *AuthService) ResetTokenTTL() time.Duration {
	return time.Duration(s.config.ResetTokenTTL) * time.Minute
}

// ValidateToken parses a token and checks its signature, expiry and purpose
func (s *AuthService) ValidateToken(tokenString string, purpose TokenPurpose) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Purpose != purpose {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// UserFromClaims loads the user record the claims refer to
func (s *AuthService) UserFromClaims(claims *Claims) (*models.User, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plaintext candidate
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
