package models

// Mentor is a read-mostly entity listing the people available to help teams.
// Mentors never interact with team or user invariants.
type Mentor struct {
	BaseModel
	FullName       string     `json:"full_name" gorm:"not null;size:50" validate:"required,max=50"`
	Email          string     `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Phone          string     `json:"phone" gorm:"size:15" validate:"max=15"`
	ProfilePicture string     `json:"profile_picture" gorm:"size:400" validate:"omitempty,url,max=400"`
	Organization   string     `json:"organization" gorm:"size:100" validate:"max=100"`
	Position       string     `json:"position" gorm:"size:100" validate:"max=100"`
	WasMentor      bool       `json:"was_mentor" gorm:"default:false"`
	SchoolYear     *int16     `json:"school_year,omitempty"` // graduation year for alumni, nil otherwise
	Availability   string     `json:"availability" gorm:"type:text"`
	TshirtSize     TshirtSize `json:"tshirt_size" gorm:"type:varchar(5)"`
	Agreed         string     `json:"-" gorm:"type:text"`
	Experience     string     `json:"-" gorm:"type:text"`

	// Relationships
	Technologies []Technology `json:"technologies,omitempty" gorm:"many2many:mentor_technologies"`
}

// TableName returns the table name for Mentor
func (Mentor) TableName() string {
	return "mentors"
}
