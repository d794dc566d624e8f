package repository

import (
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	AssignTeam(userIDs []uuid.UUID, teamID uuid.UUID) error
	RemoveFromTeam(userID uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	CountConfirmed() (int64, error)
	NextQueued(now time.Time) (*models.Team, error)
}

// TechnologyRepositoryInterface defines the interface for technology repository operations
type TechnologyRepositoryInterface interface {
	Create(technology *models.Technology) error
	GetByID(id uuid.UUID) (*models.Technology, error)
	GetByNames(names []string) ([]models.Technology, error)
	GetAll() ([]models.Technology, error)
}

// MentorRepositoryInterface defines the interface for mentor repository operations
type MentorRepositoryInterface interface {
	Create(mentor *models.Mentor) error
	GetByID(id uuid.UUID) (*models.Mentor, error)
	GetAll(limit, offset int) ([]models.Mentor, int64, error)
}

// SettingRepositoryInterface defines the interface for event setting lookups
type SettingRepositoryInterface interface {
	GetValue(name string) (int, error)
	GetAll() ([]models.Setting, error)
	Upsert(name string, value int) error
}

// EditDeadlineRepositoryInterface defines the interface for edit deadline lookups
type EditDeadlineRepositoryInterface interface {
	GetByField(field string) (*models.EditDeadline, error)
	GetAll() ([]models.EditDeadline, error)
	Upsert(field string, date time.Time) error
}

// AuditLogRepositoryInterface defines the interface for audit log writes
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error)
}
