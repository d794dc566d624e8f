package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service operations
type TeamServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	List(page, pageSize int) (*TeamListResponse, error)
	Delete(actorID uuid.UUID, teamID uuid.UUID) error
	ChangeCaptain(actorID uuid.UUID, teamID uuid.UUID, newCaptainID uuid.UUID) error
	RemoveMember(actorID uuid.UUID, userID uuid.UUID) error
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Register(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	Update(actorID uuid.UUID, userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(page, pageSize int) (*UserListResponse, error)
	Delete(actorID uuid.UUID, userID uuid.UUID) error
	ConfirmEmail(token string) error
	ForgottenPassword(ctx context.Context, email string) error
	ChangePassword(token string, newPassword string) error
}

// MentorServiceInterface defines the interface for mentor service operations
type MentorServiceInterface interface {
	GetByID(id uuid.UUID) (*MentorResponse, error)
	List(page, pageSize int) (*MentorListResponse, error)
}

// TechnologyServiceInterface defines the interface for technology service operations
type TechnologyServiceInterface interface {
	GetByID(id uuid.UUID) (*TechnologyResponse, error)
	List() ([]TechnologyResponse, error)
}

// GitHubServiceInterface defines the interface for repository link checks
type GitHubServiceInterface interface {
	Enabled() bool
	RepoExists(ctx context.Context, owner, repo string) (bool, error)
}
