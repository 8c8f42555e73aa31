package auditlog

import (
	"context"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filter Filter) ([]models.AuditLog, error)
}

type repository struct {
	store database.Store
}

func NewRepository(store database.Store) Repository {
	return &repository{store: store}
}

// Create inserts a new audit log entry in its own transaction, so failures
// are recorded even when the audited operation rolled back.
func (r *repository) Create(ctx context.Context, log *models.AuditLog) error {
	return r.store.Update(ctx, func(tx database.Tx) error {
		return tx.CreateAuditLog(ctx, log)
	})
}

func (r *repository) List(ctx context.Context, filter Filter) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.store.View(ctx, func(tx database.Tx) error {
		var err error
		logs, err = tx.ListAuditLogs(ctx, filter)
		return err
	})
	return logs, err
}
