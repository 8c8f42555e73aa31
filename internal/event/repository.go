package event

import (
	"context"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/models"
)

type Repository struct {
	Store database.Store
}

func NewRepository(store database.Store) *Repository {
	return &Repository{Store: store}
}

// withConfirmedCount fills the computed confirmedCount field.
func withConfirmedCount(ctx context.Context, tx database.Tx, e *models.Event) error {
	n, err := tx.CountRegistrations(ctx, e.ID, models.StatusConfirmed)
	if err != nil {
		return err
	}
	e.ConfirmedCount = n
	return nil
}

// ===========================
// 📄 List Events
func (r *Repository) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.Store.View(ctx, func(tx database.Tx) error {
		var err error
		if events, err = tx.ListEvents(ctx); err != nil {
			return err
		}
		for i := range events {
			if err := withConfirmedCount(ctx, tx, &events[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return events, err
}

// ===========================
// 🔍 Get Event By ID
func (r *Repository) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	var e *models.Event
	err := r.Store.View(ctx, func(tx database.Tx) error {
		var err error
		if e, err = tx.GetEvent(ctx, id); err != nil {
			return err
		}
		return withConfirmedCount(ctx, tx, e)
	})
	return e, err
}

// ===========================
// 🎯 Create Event
func (r *Repository) CreateEvent(ctx context.Context, e *models.Event) error {
	return r.Store.Update(ctx, func(tx database.Tx) error {
		return tx.CreateEvent(ctx, e)
	})
}

// ===========================
// 🛠 Update Event
// apply mutates the stored event in place; the result carries its
// confirmed count.
func (r *Repository) UpdateEvent(ctx context.Context, id string, apply func(e *models.Event)) (*models.Event, error) {
	var e *models.Event
	err := r.Store.Update(ctx, func(tx database.Tx) error {
		var err error
		if e, err = tx.LockEvent(ctx, id); err != nil {
			return err
		}
		apply(e)
		if err := tx.SaveEvent(ctx, e); err != nil {
			return err
		}
		return withConfirmedCount(ctx, tx, e)
	})
	return e, err
}

// ===========================
// 🗑 Delete Event
func (r *Repository) DeleteEvent(ctx context.Context, id string) (*models.Event, error) {
	var e *models.Event
	err := r.Store.Update(ctx, func(tx database.Tx) error {
		var err error
		if e, err = tx.LockEvent(ctx, id); err != nil {
			return err
		}
		return tx.DeleteEvent(ctx, id)
	})
	return e, err
}
