package service

import (
	"fmt"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MentorService exposes the mentor directory. Mentors are loaded by the seed
// script, so the API surface is read-only.
type MentorService struct {
	db *gorm.DB
}

// NewMentorService creates a new mentor service
func NewMentorService(db *gorm.DB) *MentorService {
	return &MentorService{db: db}
}

// MentorResponse represents the response for mentor operations
type MentorResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ProfilePicture string    `json:"profile_picture"`
	Organization   string    `json:"organization"`
	Position       string    `json:"position"`
	WasMentor      bool      `json:"was_mentor"`
	SchoolYear     *int16    `json:"school_year,omitempty"`
	Availability   string    `json:"availability"`
	TshirtSize     string    `json:"tshirt_size"`
	Technologies   []string  `json:"technologies"`
}

// MentorListResponse represents a paginated list of mentors
type MentorListResponse struct {
	Mentors  []MentorResponse `json:"mentors"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// GetByID retrieves a mentor by ID
func (s *MentorService) GetByID(id uuid.UUID) (*MentorResponse, error) {
	mentor, err := repository.NewMentorRepository(s.db).GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMentorNotFound
	}
	return toMentorResponse(mentor), nil
}

// List retrieves mentors with pagination
func (s *MentorService) List(page, pageSize int) (*MentorListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPagination
	}

	mentors, total, err := repository.NewMentorRepository(s.db).GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}

	responses := make([]MentorResponse, 0, len(mentors))
	for i := range mentors {
		responses = append(responses, *toMentorResponse(&mentors[i]))
	}

	return &MentorListResponse{
		Mentors:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toMentorResponse(mentor *models.Mentor) *MentorResponse {
	technologies := make([]string, 0, len(mentor.Technologies))
	for _, technology := range mentor.Technologies {
		technologies = append(technologies, technology.Name)
	}

	return &MentorResponse{
		ID:             mentor.ID,
		FullName:       mentor.FullName,
		Email:          mentor.Email,
		Phone:          mentor.Phone,
		ProfilePicture: mentor.ProfilePicture,
		Organization:   mentor.Organization,
		Position:       mentor.Position,
		WasMentor:      mentor.WasMentor,
		SchoolYear:     mentor.SchoolYear,
		Availability:   mentor.Availability,
		TshirtSize:     string(mentor.TshirtSize),
		Technologies:   technologies,
	}
}
