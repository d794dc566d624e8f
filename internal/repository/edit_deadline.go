package repository

import (
	"errors"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EditDeadlineRepository handles lookups of per-field edit deadlines
type EditDeadlineRepository struct {
	db *gorm.DB
}

// NewEditDeadlineRepository creates a new edit deadline repository
func NewEditDeadlineRepository(db *gorm.DB) *EditDeadlineRepository {
	return &EditDeadlineRepository{db: db}
}

// GetByField returns the deadline record for a field name
func (r *EditDeadlineRepository) GetByField(field string) (*models.EditDeadline, error) {
	var deadline models.EditDeadline
	err := r.db.First(&deadline, "field = ?", field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeadlineNotFound
		}
		return nil, err
	}
	return &deadline, nil
}

// GetAll retrieves all deadline records
func (r *EditDeadlineRepository) GetAll() ([]models.EditDeadline, error) {
	var deadlines []models.EditDeadline
	err := r.db.Find(&deadlines).Error
	if err != nil {
		return nil, err
	}
	return deadlines, nil
}

// Upsert creates or replaces the deadline for a field
func (r *EditDeadlineRepository) Upsert(field string, date time.Time) error {
	deadline := models.EditDeadline{Field: field, Date: date}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "field"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "updated_at"}),
	}).Create(&deadline).Error
}
