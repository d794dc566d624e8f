package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnologyRepository handles database operations for technologies
type TechnologyRepository struct {
	db *gorm.DB
}

// NewTechnologyRepository creates a new technology repository
func NewTechnologyRepository(db *gorm.DB) *TechnologyRepository {
	return &TechnologyRepository{db: db}
}

// Create creates a new technology
func (r *TechnologyRepository) Create(technology *models.Technology) error {
	return r.db.Create(technology).Error
}

// GetByID retrieves a technology by ID
func (r *TechnologyRepository) GetByID(id uuid.UUID) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// GetByNames retrieves all technologies matching the given names
func (r *TechnologyRepository) GetByNames(names []string) ([]models.Technology, error) {
	var technologies []models.Technology
	err := r.db.Where("name IN ?", names).Find(&technologies).Error
	if err != nil {
		return nil, err
	}
	return technologies, nil
}

// GetAll retrieves all technologies
func (r *TechnologyRepository) GetAll() ([]models.Technology, error) {
	var technologies []models.Technology
	err := r.db.Order("name ASC").Find(&technologies).Error
	if err != nil {
		return nil, err
	}
	return technologies, nil
}
