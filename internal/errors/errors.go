package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a specific field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrTechnologyNotFound = &NotFoundError{Entity: "technology"}
	ErrMentorNotFound     = &NotFoundError{Entity: "mentor"}
	ErrSettingNotFound    = &NotFoundError{Entity: "setting"}
	ErrDeadlineNotFound   = &NotFoundError{Entity: "edit deadline"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Team Rule Errors
var (
	ErrTooManyMembers     = &ValidationError{Field: "members", Message: "reached maximum users in team limit"}
	ErrDuplicateMember    = &ValidationError{Field: "members", Message: "members list contains the same user twice"}
	ErrUserAlreadyInTeam  = &ValidationError{Field: "members", Message: "one of the users already has a team"}
	ErrCaptainNotInTeam   = &ValidationError{Field: "captain", Message: "new captain must be a member of the team"}
	ErrInvalidGithubLink  = &ValidationError{Field: "github_link", Message: "must match github.com/<owner>/<repo>"}
	ErrGithubRepoNotFound = &ValidationError{Field: "github_link", Message: "repository does not exist on GitHub"}
	ErrUserNotInTeam      = &ValidationError{Field: "members", Message: "user does not belong to a team"}
	ErrInvalidPagination  = &ValidationError{Field: "pagination", Message: "invalid pagination parameters"}
	ErrMissingResetToken  = &ValidationError{Field: "token", Message: "reset token and new password are required"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrAccountNotActive   = &AuthenticationError{Message: "account email is not confirmed"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Authorization Errors
var (
	ErrNotResourceOwner = &AuthorizationError{Message: "only the account owner may modify this resource"}
	ErrNotTeamCaptain   = &AuthorizationError{Message: "only the team captain may modify the team"}
	ErrAlreadyHasTeam   = &AuthorizationError{Message: "user already belongs to a team"}
	ErrEditWindowClosed = &AuthorizationError{Message: "team edit window has closed"}
)

// TeamNotEditableError reports a structural team edit attempted after the
// team_editable deadline, naming the deadline like the validation layer does.
func TeamNotEditableError(deadline string) *ValidationError {
	return &ValidationError{Field: "team", Message: fmt.Sprintf("team is not editable after %s", deadline)}
}

// FieldFrozenError reports an attempted change to a field whose edit
// deadline has passed.
func FieldFrozenError(field, deadline string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s was editable until %s", field, deadline)}
}

// RegistrationClosedError reports a creation attempt after the field's
// deadline, where no stored value exists to compare against.
func RegistrationClosedError(deadline string) *ValidationError {
	return &ValidationError{Field: "registration", Message: fmt.Sprintf("users not creatable after %s", deadline)}
}

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}
