package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of team create/update actions
type AuditLog struct {
	BaseModel
	UserID uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Action json.RawMessage `json:"action" gorm:"type:jsonb"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
