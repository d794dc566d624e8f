package models

import (
	"github.com/google/uuid"
)

// TshirtSize represents the t-shirt sizes offered at the event
type TshirtSize string

const (
	TshirtSizeS   TshirtSize = "s"
	TshirtSizeM   TshirtSize = "m"
	TshirtSizeL   TshirtSize = "l"
	TshirtSizeXL  TshirtSize = "xl"
	TshirtSizeXXL TshirtSize = "xxl"
)

// IsValid checks if the TshirtSize is valid
func (s TshirtSize) IsValid() bool {
	switch s {
	case TshirtSizeS, TshirtSizeM, TshirtSizeL, TshirtSizeXL, TshirtSizeXXL:
		return true
	}
	return false
}

// User represents a registered participant.
// A user belongs to at most one team (TeamID nullable); IsCaptain is true
// only while the user captains that team.
type User struct {
	BaseModel
	TeamID          *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	FirstName       string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName        string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password        string     `json:"-" gorm:"not null;size:255"`
	Phone           string     `json:"phone" gorm:"size:20" validate:"max=20"`
	DiscordID       string     `json:"discord_id" gorm:"size:50" validate:"max=50"`
	Form            string     `json:"form" gorm:"size:10" validate:"max=10"` // class, e.g. "11g"
	TshirtSize      TshirtSize `json:"tshirt_size" gorm:"type:varchar(5)"`
	FoodPreferences string     `json:"food_preferences" gorm:"size:200" validate:"max=200"`
	Allergies       string     `json:"allergies" gorm:"size:200" validate:"max=200"`
	Avatar          string     `json:"avatar" gorm:"size:400" validate:"omitempty,url,max=400"`
	IsOnline        bool       `json:"is_online" gorm:"default:false"`
	IsActive        bool       `json:"is_active" gorm:"default:false"` // false until email is confirmed
	IsStaff         bool       `json:"is_staff" gorm:"default:false"`
	IsCaptain       bool       `json:"is_captain" gorm:"default:false"`

	// Relationships
	Team         *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Technologies []Technology `json:"technologies,omitempty" gorm:"many2many:user_technologies"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
