package service

import (
	"context"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mail"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for participant accounts: registration,
// profile updates gated by per-field deadlines, and the email verification
// and password reset flows.
type UserService struct {
	db          *gorm.DB
	validator   *validator.Validate
	authService *auth.AuthService
	mailer      mail.MailerInterface
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, validator *validator.Validate, authService *auth.AuthService, mailer mail.MailerInterface) *UserService {
	return &UserService{
		db:          db,
		validator:   validator,
		authService: authService,
		mailer:      mailer,
	}
}

// CreateUserRequest represents the request to register a user
type CreateUserRequest struct {
	FirstName       string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string   `json:"last_name" validate:"required,min=1,max=100"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	Phone           string   `json:"phone" validate:"max=20"`
	DiscordID       string   `json:"discord_id" validate:"max=100"`
	Form            string   `json:"form" validate:"max=100"`
	TshirtSize      string   `json:"tshirt_size"`
	FoodPreferences string   `json:"food_preferences" validate:"max=500"`
	Allergies       string   `json:"allergies" validate:"max=500"`
	Avatar          string   `json:"avatar" validate:"max=400"`
	Technologies    []string `json:"technologies"`
}

// UpdateUserRequest represents the request to update a user.
// Nil fields are left unchanged. An empty Password keeps the current one.
type UpdateUserRequest struct {
	FirstName       *string   `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName        *string   `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email           *string   `json:"email" validate:"omitempty,email"`
	Password        *string   `json:"password"`
	Phone           *string   `json:"phone" validate:"omitempty,max=20"`
	DiscordID       *string   `json:"discord_id" validate:"omitempty,max=100"`
	Form            *string   `json:"form" validate:"omitempty,max=100"`
	TshirtSize      *string   `json:"tshirt_size"`
	FoodPreferences *string   `json:"food_preferences" validate:"omitempty,max=500"`
	Allergies       *string   `json:"allergies" validate:"omitempty,max=500"`
	Avatar          *string   `json:"avatar" validate:"omitempty,max=400"`
	Technologies    *[]string `json:"technologies"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	DiscordID       string     `json:"discord_id"`
	Form            string     `json:"form"`
	TshirtSize      string     `json:"tshirt_size"`
	FoodPreferences string     `json:"food_preferences"`
	Allergies       string     `json:"allergies"`
	Avatar          string     `json:"avatar"`
	IsOnline        bool       `json:"is_online"`
	IsActive        bool       `json:"is_active"`
	IsStaff         bool       `json:"is_staff"`
	IsCaptain       bool       `json:"is_captain"`
	TeamID          *uuid.UUID `json:"team_id,omitempty"`
	Technologies    []string   `json:"technologies"`
	CreatedAt       string     `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Register creates an inactive account and emails a verification link.
// Deadline-gated fields cannot be supplied once their deadline has passed.
func (s *UserService) Register(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if req.TshirtSize != "" && !models.TshirtSize(req.TshirtSize).IsValid() {
		return nil, &apperrors.ValidationError{Field: "tshirt_size", Message: "invalid tshirt size"}
	}

	if err := s.checkCreateDeadlines(createFieldValues(req)); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)

		if existing, err := userRepo.GetByEmail(req.Email); err == nil && existing != nil {
			return apperrors.ErrUserExists
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		technologies, err := resolveTechnologies(tx, req.Technologies)
		if err != nil {
			return err
		}

		user = &models.User{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Password:        hash,
			Phone:           req.Phone,
			DiscordID:       req.DiscordID,
			Form:            req.Form,
			TshirtSize:      models.TshirtSize(req.TshirtSize),
			FoodPreferences: req.FoodPreferences,
			Allergies:       req.Allergies,
			Avatar:          req.Avatar,
			Technologies:    technologies,
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}

	s.sendVerification(user)
	return toUserResponse(user), nil
}

// Update applies a partial profile update. Only the user themself or staff
// may do it. A field whose editing deadline has passed may still be sent as
// long as the value is unchanged.
func (s *UserService) Update(actorID uuid.UUID, userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if req.TshirtSize != nil && *req.TshirtSize != "" && !models.TshirtSize(*req.TshirtSize).IsValid() {
		return nil, &apperrors.ValidationError{Field: "tshirt_size", Message: "invalid tshirt size"}
	}

	var result *UserResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)

		actor, err := userRepo.GetByID(actorID)
		if err != nil {
			return apperrors.ErrUserNotFound
		}
		if actor.ID != userID && !actor.IsStaff {
			return apperrors.ErrNotResourceOwner
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			return apperrors.ErrUserNotFound
		}

		if err := s.checkUpdateDeadlines(tx, user, req); err != nil {
			return err
		}

		emailChanged := false
		if req.Email != nil && *req.Email != user.Email {
			if existing, err := userRepo.GetByEmail(*req.Email); err == nil && existing != nil {
				return apperrors.ErrUserExists
			}
			user.Email = *req.Email
			user.IsActive = false
			emailChanged = true
		}
		if req.Password != nil && *req.Password != "" {
			if len(*req.Password) < 8 {
				return &apperrors.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
			}
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.Password = hash
		}
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.Phone != nil {
			user.Phone = *req.Phone
		}
		if req.DiscordID != nil {
			user.DiscordID = *req.DiscordID
		}
		if req.Form != nil {
			user.Form = *req.Form
		}
		if req.TshirtSize != nil {
			user.TshirtSize = models.TshirtSize(*req.TshirtSize)
		}
		if req.FoodPreferences != nil {
			user.FoodPreferences = *req.FoodPreferences
		}
		if req.Allergies != nil {
			user.Allergies = *req.Allergies
		}
		if req.Avatar != nil {
			user.Avatar = *req.Avatar
		}
		if req.Technologies != nil {
			technologies, err := resolveTechnologies(tx, *req.Technologies)
			if err != nil {
				return err
			}
			if err := tx.Model(user).Association("Technologies").Replace(technologies); err != nil {
				return err
			}
		}

		if err := userRepo.Update(user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if emailChanged {
			s.sendVerification(user)
		}
		result = toUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := repository.NewUserRepository(s.db).GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List retrieves users with pagination
func (s *UserService) List(page, pageSize int) (*UserListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPagination
	}

	users, total, err := repository.NewUserRepository(s.db).GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes an account. Only the user themself or staff may do it.
func (s *UserService) Delete(actorID uuid.UUID, userID uuid.UUID) error {
	userRepo := repository.NewUserRepository(s.db)

	actor, err := userRepo.GetByID(actorID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if actor.ID != userID && !actor.IsStaff {
		return apperrors.ErrNotResourceOwner
	}
	if _, err := userRepo.GetByID(userID); err != nil {
		return apperrors.ErrUserNotFound
	}
	return userRepo.Delete(userID)
}

// ConfirmEmail activates the account referenced by a verification token
func (s *UserService) ConfirmEmail(token string) error {
	claims, err := s.authService.ValidateToken(token, auth.PurposeVerify)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	userRepo := repository.NewUserRepository(s.db)
	user, err := userRepo.GetByID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	user.IsActive = true
	return userRepo.Update(user)
}

// ForgottenPassword emails a password reset link to the given address
func (s *UserService) ForgottenPassword(ctx context.Context, email string) error {
	user, err := repository.NewUserRepository(s.db).GetByEmail(email)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	token, err := s.authService.GenerateToken(user, auth.PurposeReset, s.authService.ResetTokenTTL())
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	return s.mailer.SendPasswordReset(ctx, user, token)
}

// ChangePassword sets a new password for the account referenced by a reset token
func (s *UserService) ChangePassword(token string, newPassword string) error {
	if token == "" || newPassword == "" {
		return apperrors.ErrMissingResetToken
	}
	if len(newPassword) < 8 {
		return &apperrors.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}

	claims, err := s.authService.ValidateToken(token, auth.PurposeReset)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	userRepo := repository.NewUserRepository(s.db)
	user, err := userRepo.GetByID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hash
	return userRepo.Update(user)
}

// sendVerification emails a confirmation link in the background. A delivery
// failure is logged by the mailer and must not fail the originating request.
func (s *UserService) sendVerification(user *models.User) {
	token, err := s.authService.GenerateToken(user, auth.PurposeVerify, s.authService.VerifyTokenTTL())
	if err != nil {
		return
	}
	go func() {
		_ = s.mailer.SendVerification(context.Background(), user, token)
	}()
}

// checkCreateDeadlines rejects registration fields whose deadline has passed
func (s *UserService) checkCreateDeadlines(values map[string]string) error {
	deadlines, err := repository.NewEditDeadlineRepository(s.db).GetAll()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, deadline := range deadlines {
		value, ok := values[deadline.Field]
		if !ok || value == "" {
			continue
		}
		if deadline.Passed(now) {
			return apperrors.RegistrationClosedError(deadline.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// checkUpdateDeadlines rejects changes to fields whose deadline has passed.
// Sending the stored value back is always accepted.
func (s *UserService) checkUpdateDeadlines(tx *gorm.DB, user *models.User, req *UpdateUserRequest) error {
	deadlines, err := repository.NewEditDeadlineRepository(tx).GetAll()
	if err != nil {
		return err
	}

	requested := updateFieldValues(req)
	current := userFieldValues(user)

	now := time.Now()
	for _, deadline := range deadlines {
		newValue, ok := requested[deadline.Field]
		if !ok {
			continue
		}
		if newValue == current[deadline.Field] {
			continue
		}
		if deadline.Passed(now) {
			return apperrors.FieldFrozenError(deadline.Field, deadline.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// createFieldValues maps deadline field names to submitted registration values
func createFieldValues(req *CreateUserRequest) map[string]string {
	return map[string]string{
		"first_name":       req.FirstName,
		"last_name":        req.LastName,
		"email":            req.Email,
		"phone":            req.Phone,
		"discord_id":       req.DiscordID,
		"form":             req.Form,
		"tshirt_size":      req.TshirtSize,
		"food_preferences": req.FoodPreferences,
		"allergies":        req.Allergies,
		"avatar":           req.Avatar,
	}
}

// updateFieldValues maps deadline field names to the values present in an
// update request. Absent fields are omitted.
func updateFieldValues(req *UpdateUserRequest) map[string]string {
	values := make(map[string]string)
	set := func(field string, value *string) {
		if value != nil {
			values[field] = *value
		}
	}
	set("first_name", req.FirstName)
	set("last_name", req.LastName)
	set("email", req.Email)
	set("phone", req.Phone)
	set("discord_id", req.DiscordID)
	set("form", req.Form)
	set("tshirt_size", req.TshirtSize)
	set("food_preferences", req.FoodPreferences)
	set("allergies", req.Allergies)
	set("avatar", req.Avatar)
	return values
}

func userFieldValues(user *models.User) map[string]string {
	return map[string]string{
		"first_name":       user.FirstName,
		"last_name":        user.LastName,
		"email":            user.Email,
		"phone":            user.Phone,
		"discord_id":       user.DiscordID,
		"form":             user.Form,
		"tshirt_size":      string(user.TshirtSize),
		"food_preferences": user.FoodPreferences,
		"allergies":        user.Allergies,
		"avatar":           user.Avatar,
	}
}

func toUserResponse(user *models.User) *UserResponse {
	technologies := make([]string, 0, len(user.Technologies))
	for _, technology := range user.Technologies {
		technologies = append(technologies, technology.Name)
	}

	return &UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Phone:           user.Phone,
		DiscordID:       user.DiscordID,
		Form:            user.Form,
		TshirtSize:      string(user.TshirtSize),
		FoodPreferences: user.FoodPreferences,
		Allergies:       user.Allergies,
		Avatar:          user.Avatar,
		IsOnline:        user.IsOnline,
		IsActive:        user.IsActive,
		IsStaff:         user.IsStaff,
		IsCaptain:       user.IsCaptain,
		TeamID:          user.TeamID,
		Technologies:    technologies,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}
