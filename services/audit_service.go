package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/vee-grants/vee-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService records mutations and prunes old records
type AuditService struct {
	db *gorm.DB
}

// NewAuditService creates a new audit service
func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// AuditEntry describes one successful mutation.
type AuditEntry struct {
	UserID    uuid.UUID
	Operation string
	Resource  string
	Variables map[string]interface{}
	IPAddress string
}

func (s *AuditService) Record(ctx context.Context, entry AuditEntry) error {
	variables, err := json.Marshal(entry.Variables)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Create(&model.AuditLog{
		UserID:    entry.UserID,
		Operation: entry.Operation,
		Resource:  entry.Resource,
		Variables: datatypes.JSON(variables),
		IPAddress: entry.IPAddress,
	}).Error
}

// PurgeBefore deletes records created before cutoff and reports how many were removed.
func (s *AuditService) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.AuditLog{})
	return result.RowsAffected, result.Error
}
