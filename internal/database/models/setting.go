package models

// Setting names used by the registration rules. The values are runtime data
// read at validation time, not compiled-in constants.
const (
	SettingMinUsersInTeam = "min_users_in_team"
	SettingMaxUsersInTeam = "max_users_in_team"
	SettingMaxTeams       = "max_teams"
)

// Setting is a named small-integer constant configuring the event
type Setting struct {
	BaseModel
	Name  string `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Value int    `json:"value" gorm:"not null"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
