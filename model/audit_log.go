package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records a successful GraphQL mutation
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Operation string         `gorm:"type:varchar(100);not null" json:"operation"` // e.g., "createGrant"
	Resource  string         `gorm:"type:varchar(100);not null" json:"resource"`  // e.g., "grants"
	Variables datatypes.JSON `json:"variables"`
	IPAddress string         `gorm:"type:varchar(45)" json:"ipAddress"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
