package service

import (
	"fmt"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnologyService exposes the technology catalog used by user, team and
// mentor profiles. The catalog is loaded by the seed script.
type TechnologyService struct {
	db *gorm.DB
}

// NewTechnologyService creates a new technology service
func NewTechnologyService(db *gorm.DB) *TechnologyService {
	return &TechnologyService{db: db}
}

// TechnologyResponse represents the response for technology operations
type TechnologyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// GetByID retrieves a technology by ID
func (s *TechnologyService) GetByID(id uuid.UUID) (*TechnologyResponse, error) {
	technology, err := repository.NewTechnologyRepository(s.db).GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTechnologyNotFound
	}
	return toTechnologyResponse(technology), nil
}

// List retrieves all technologies
func (s *TechnologyService) List() ([]TechnologyResponse, error) {
	technologies, err := repository.NewTechnologyRepository(s.db).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}

	responses := make([]TechnologyResponse, 0, len(technologies))
	for i := range technologies {
		responses = append(responses, *toTechnologyResponse(&technologies[i]))
	}
	return responses, nil
}

func toTechnologyResponse(technology *models.Technology) *TechnologyResponse {
	return &TechnologyResponse{
		ID:   technology.ID,
		Name: technology.Name,
	}
}
