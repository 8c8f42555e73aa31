package auth

import (
	"context"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type repository struct {
	store database.Store
}

func NewRepository(store database.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, user *models.User) error {
	return r.store.Update(ctx, func(tx database.Tx) error {
		return tx.CreateUser(ctx, user)
	})
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User
	err := r.store.View(ctx, func(tx database.Tx) error {
		var err error
		user, err = tx.FindUserByEmail(ctx, email)
		return err
	})
	return user, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	err := r.store.View(ctx, func(tx database.Tx) error {
		var err error
		user, err = tx.GetUser(ctx, id)
		return err
	})
	return user, err
}
