package models

import (
	"time"
)

// EditDeadlineTeamEditable is the reserved deadline field gating structural
// team edits (membership changes, deletion).
const EditDeadlineTeamEditable = "team_editable"

// EditDeadline maps a field name to the last date on which that field may be
// changed. Submissions that leave the stored value unchanged always pass.
type EditDeadline struct {
	BaseModel
	Field string    `json:"field" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Date  time.Time `json:"date" gorm:"not null;type:date"`
}

// TableName returns the table name for EditDeadline
func (EditDeadline) TableName() string {
	return "edit_deadlines"
}

// Passed reports whether the deadline lies strictly before the given day
func (d *EditDeadline) Passed(today time.Time) bool {
	y1, m1, d1 := d.Date.Date()
	y2, m2, d2 := today.Date()
	deadline := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	day := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return deadline.Before(day)
}
