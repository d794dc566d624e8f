package testutils

import (
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct {
	counter int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	f.counter++
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:  "Test",
		LastName:   fmt.Sprintf("User%d", f.counter),
		Email:      fmt.Sprintf("user%d@example.com", f.counter),
		Password:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // bcrypt of "password"
		Form:       "CS-2",
		TshirtSize: models.TshirtSizeM,
		IsActive:   true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithTeam puts the user on the given team
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// Captain creates a user flagged as captain of the given team
func (f *UserFactory) Captain(teamID uuid.UUID) *models.User {
	user := f.WithTeam(teamID)
	user.IsCaptain = true
	return user
}

// Staff creates a staff user
func (f *UserFactory) Staff() *models.User {
	user := f.Create()
	user.IsStaff = true
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	counter int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values and a unique name
func (f *TeamFactory) Create() *models.Team {
	f.counter++
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       fmt.Sprintf("Test Team %d", f.counter),
		GithubLink: fmt.Sprintf("https://github.com/test/team%d", f.counter),
	}
}

// Confirmed creates a team holding a confirmed slot
func (f *TeamFactory) Confirmed() *models.Team {
	team := f.Create()
	team.Confirmed = true
	return team
}

// Queued creates a team waiting for a slot since the given time
func (f *TeamFactory) Queued(since time.Time) *models.Team {
	team := f.Create()
	team.Ready = &since
	return team
}

// TechnologyFactory provides methods to create test Technology data
type TechnologyFactory struct {
	counter int
}

// NewTechnologyFactory creates a new TechnologyFactory
func NewTechnologyFactory() *TechnologyFactory {
	return &TechnologyFactory{}
}

// Create creates a test Technology with a unique name
func (f *TechnologyFactory) Create() *models.Technology {
	f.counter++
	return &models.Technology{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Technology %d", f.counter),
	}
}

// WithName sets a custom name for the technology
func (f *TechnologyFactory) WithName(name string) *models.Technology {
	technology := f.Create()
	technology.Name = name
	return technology
}

// MentorFactory provides methods to create test Mentor data
type MentorFactory struct {
	counter int
}

// NewMentorFactory creates a new MentorFactory
func NewMentorFactory() *MentorFactory {
	return &MentorFactory{}
}

// Create creates a test Mentor with default values and a unique email
func (f *MentorFactory) Create() *models.Mentor {
	f.counter++
	return &models.Mentor{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:     fmt.Sprintf("Mentor %d", f.counter),
		Email:        fmt.Sprintf("mentor%d@example.com", f.counter),
		Organization: "Test Organization",
		Position:     "Engineer",
		TshirtSize:   models.TshirtSizeL,
	}
}

// SettingsFixture returns the three team-size settings with the given values
func SettingsFixture(minUsers, maxUsers, maxTeams int) []models.Setting {
	return []models.Setting{
		{Name: models.SettingMinUsersInTeam, Value: minUsers},
		{Name: models.SettingMaxUsersInTeam, Value: maxUsers},
		{Name: models.SettingMaxTeams, Value: maxTeams},
	}
}

// DeadlineFixture returns an edit deadline for the given field
func DeadlineFixture(field string, date time.Time) models.EditDeadline {
	return models.EditDeadline{Field: field, Date: date}
}
