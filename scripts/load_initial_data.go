package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Simple structures that directly match the seed file schema
type SettingData struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

type EditDeadlineData struct {
	Field string `yaml:"field"`
	Date  string `yaml:"date"`
}

type MentorData struct {
	FullName     string   `yaml:"full_name"`
	Email        string   `yaml:"email"`
	Phone        string   `yaml:"phone,omitempty"`
	Organization string   `yaml:"organization,omitempty"`
	Position     string   `yaml:"position,omitempty"`
	WasMentor    bool     `yaml:"was_mentor"`
	SchoolYear   *int16   `yaml:"school_year,omitempty"`
	Availability string   `yaml:"availability,omitempty"`
	TshirtSize   string   `yaml:"tshirt_size,omitempty"`
	Agreed       string   `yaml:"agreed,omitempty"`
	Technologies []string `yaml:"technologies,omitempty"`
}

type InitialData struct {
	Settings      []SettingData      `yaml:"settings"`
	EditDeadlines []EditDeadlineData `yaml:"edit_deadlines"`
	Technologies  []string           `yaml:"technologies"`
	Mentors       []MentorData       `yaml:"mentors"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	path := "data/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := loadDataFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	if err := seed(db, data); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}
	log.Println("Initial data loaded")
}

func loadDataFile(path string) (*InitialData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data InitialData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return &data, nil
}

func seed(db *gorm.DB, data *InitialData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, setting := range data.Settings {
			record := models.Setting{Name: setting.Name, Value: setting.Value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&record).Error; err != nil {
				return fmt.Errorf("setting %s: %w", setting.Name, err)
			}
		}

		for _, deadline := range data.EditDeadlines {
			date, err := time.Parse("2006-01-02", deadline.Date)
			if err != nil {
				return fmt.Errorf("deadline %s: %w", deadline.Field, err)
			}
			record := models.EditDeadline{Field: deadline.Field, Date: date}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "field"}},
				DoUpdates: clause.AssignmentColumns([]string{"date"}),
			}).Create(&record).Error; err != nil {
				return fmt.Errorf("deadline %s: %w", deadline.Field, err)
			}
		}

		for _, name := range data.Technologies {
			record := models.Technology{Name: name}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
				return fmt.Errorf("technology %s: %w", name, err)
			}
		}

		for _, mentor := range data.Mentors {
			var count int64
			if err := tx.Model(&models.Mentor{}).Where("email = ?", mentor.Email).Count(&count).Error; err != nil {
				return fmt.Errorf("mentor %s: %w", mentor.Email, err)
			}
			if count > 0 {
				continue
			}

			technologies, err := findTechnologies(tx, mentor.Technologies)
			if err != nil {
				return fmt.Errorf("mentor %s: %w", mentor.Email, err)
			}
			record := models.Mentor{
				FullName:     mentor.FullName,
				Email:        mentor.Email,
				Phone:        mentor.Phone,
				Organization: mentor.Organization,
				Position:     mentor.Position,
				WasMentor:    mentor.WasMentor,
				SchoolYear:   mentor.SchoolYear,
				Availability: mentor.Availability,
				TshirtSize:   models.TshirtSize(mentor.TshirtSize),
				Agreed:       mentor.Agreed,
				Technologies: technologies,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("mentor %s: %w", mentor.Email, err)
			}
		}
		return nil
	})
}

func findTechnologies(tx *gorm.DB, names []string) ([]models.Technology, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var technologies []models.Technology
	if err := tx.Where("name IN ?", names).Find(&technologies).Error; err != nil {
		return nil, err
	}
	if len(technologies) != len(names) {
		return nil, fmt.Errorf("unknown technology in %v", names)
	}
	return technologies, nil
}
