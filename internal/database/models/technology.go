package models

// Technology is a name-keyed tag shared by users, teams and mentors
type Technology struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
}

// TableName returns the table name for Technology
func (Technology) TableName() string {
	return "technologies"
}
