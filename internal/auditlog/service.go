package auditlog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/sharath018/event-management-backend/internal/models"
)

type Service interface {
	LogAction(ctx context.Context, userID, eventID, action string, details map[string]interface{}, ip, status string) error
	GetAuditLogs(ctx context.Context, filter Filter) ([]models.AuditLog, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// LogAction creates a new audit log entry
func (s *service) LogAction(ctx context.Context, userID, eventID, action string, details map[string]interface{}, ip, status string) error {
	if details == nil {
		details = make(map[string]interface{})
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &models.AuditLog{
		UserID:    userID,
		EventID:   eventID,
		Action:    action,
		Details:   datatypes.JSON(detailsJSON),
		IPAddress: ip,
		Status:    status,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("⚠️ Failed to write audit log %s: %v", action, err)
		return err
	}
	return nil
}

// GetAuditLogs lists entries newest first.
func (s *service) GetAuditLogs(ctx context.Context, filter Filter) ([]models.AuditLog, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	return s.repo.List(ctx, filter)
}
