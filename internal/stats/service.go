package stats

import (
	"context"
	"time"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/models"
)

type Service struct {
	Store database.Store
	Now   func() time.Time
}

func NewService(store database.Store) *Service {
	return &Service{Store: store, Now: time.Now}
}

// Get returns dashboard totals. Events dated today or later count as upcoming.
func (s *Service) Get(ctx context.Context) (models.Stats, error) {
	today := s.Now().Format(models.DateLayout)

	var out models.Stats
	err := s.Store.View(ctx, func(tx database.Tx) error {
		var err error
		out, err = tx.EventStats(ctx, today)
		return err
	})
	if err != nil {
		return models.Stats{}, apperr.Internal("Failed to fetch stats", err)
	}
	return out, nil
}
