package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "mentor"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("loading: %w", ErrTeamNotFound)))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.True(t, errors.Is(err1, ErrUserExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "is required"}
		assert.Equal(t, "validation error: email - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "payload malformed"}
		assert.Equal(t, "validation error: payload malformed", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrTooManyMembers))
		assert.True(t, IsValidation(ErrUserNotInTeam))
		assert.False(t, IsValidation(ErrInvalidCredentials))
	})
}

func TestDeadlineErrors(t *testing.T) {
	t.Run("FieldFrozenError", func(t *testing.T) {
		err := FieldFrozenError("tshirt_size", "2026-08-01")
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "tshirt_size was editable until 2026-08-01")
	})

	t.Run("RegistrationClosedError", func(t *testing.T) {
		err := RegistrationClosedError("2026-08-01")
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "users not creatable after 2026-08-01")
	})

	t.Run("TeamNotEditableError", func(t *testing.T) {
		err := TeamNotEditableError("2026-10-01")
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "not editable after 2026-10-01")
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrNotTeamCaptain))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotTeamCaptain))
		assert.True(t, IsAuthorization(ErrEditWindowClosed))
		assert.False(t, IsAuthorization(ErrAccountNotActive))
	})

	t.Run("wrapped errors keep their class", func(t *testing.T) {
		wrapped := fmt.Errorf("login: %w", ErrAccountNotActive)
		assert.True(t, IsAuthentication(wrapped))
		assert.True(t, errors.Is(wrapped, ErrAccountNotActive))
	})
}
