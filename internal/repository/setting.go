package repository

import (
	"errors"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository handles lookups of named small-integer event settings
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetValue returns the value of a named setting
func (r *SettingRepository) GetValue(name string) (int, error) {
	var setting models.Setting
	err := r.db.First(&setting, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrSettingNotFound
		}
		return 0, err
	}
	return setting.Value, nil
}

// GetAll retrieves all settings
func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Order("name ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert creates or replaces a named setting
func (r *SettingRepository) Upsert(name string, value int) error {
	setting := models.Setting{Name: name, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
