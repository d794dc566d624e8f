package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MentorRepository handles database operations for mentors
type MentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

// Create creates a new mentor
func (r *MentorRepository) Create(mentor *models.Mentor) error {
	return r.db.Create(mentor).Error
}

// GetByID retrieves a mentor by ID with technologies preloaded
func (r *MentorRepository) GetByID(id uuid.UUID) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.Preload("Technologies").First(&mentor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// GetAll retrieves all mentors with pagination
func (r *MentorRepository) GetAll(limit, offset int) ([]models.Mentor, int64, error) {
	var mentors []models.Mentor
	var total int64

	if err := r.db.Model(&models.Mentor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Technologies").
		Limit(limit).Offset(offset).
		Order("full_name ASC").
		Find(&mentors).Error
	if err != nil {
		return nil, 0, err
	}

	return mentors, total, nil
}
