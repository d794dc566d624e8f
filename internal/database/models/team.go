package models

import (
	"time"
)

// Team represents a hackathon team.
//
// Confirmed teams occupy one of a limited number of slots (the max_teams
// setting). A confirmable team that finds no free slot is queued: Ready
// holds the enqueue time and is cleared on promotion.
type Team struct {
	BaseModel
	Name               string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	GithubLink         string     `json:"github_link" gorm:"not null;size:400" validate:"required,max=400"`
	ProjectName        string     `json:"project_name" gorm:"size:100" validate:"max=100"`
	ProjectDescription string     `json:"project_description" gorm:"size:1000" validate:"max=1000"`
	IsFull             bool       `json:"is_full" gorm:"default:false"`
	Confirmed          bool       `json:"confirmed" gorm:"default:false"`
	Ready              *time.Time `json:"ready,omitempty" gorm:"index"`

	// Relationships
	Members      []User       `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Technologies []Technology `json:"technologies,omitempty" gorm:"many2many:team_technologies"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
