package database

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/internal/models"
)

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher func(password string) (string, error)

// Seed creates the default admin account if it does not exist yet and,
// when enabled, a couple of sample events.
func Seed(ctx context.Context, store Store, cfg *config.Config, hash PasswordHasher) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	err := store.Update(ctx, func(tx Tx) error {
		if _, err := tx.FindUserByEmail(ctx, email); err == nil {
			return nil
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}

		hashed, err := hash(cfg.AdminPassword)
		if err != nil {
			return err
		}
		admin := &models.User{
			ID:           uuid.NewString(),
			Name:         "Administrator",
			Email:        email,
			PasswordHash: hashed,
			Role:         models.RoleAdmin,
			CreatedAt:    time.Now().UTC(),
		}
		if err := tx.CreateUser(ctx, admin); err != nil {
			return err
		}
		log.Printf("✅ Default admin created: %s", email)
		return nil
	})
	if err != nil {
		return err
	}

	if !cfg.SeedSampleEvents {
		return nil
	}
	return seedSampleEvents(ctx, store)
}

func seedSampleEvents(ctx context.Context, store Store) error {
	return store.Update(ctx, func(tx Tx) error {
		existing, err := tx.ListEvents(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		now := time.Now().UTC()
		samples := []models.Event{
			{
				Name:        "Tech Hackathon",
				Description: "Join us for a 24-hour coding marathon where you can build innovative solutions and win exciting prizes!",
				Date:        now.AddDate(0, 0, 30).Format(models.DateLayout),
				Capacity:    100,
			},
			{
				Name:        "AI/ML Workshop",
				Description: "Learn the fundamentals of Machine Learning and build your first AI model in this hands-on workshop.",
				Date:        now.AddDate(0, 0, 35).Format(models.DateLayout),
				Capacity:    50,
			},
		}
		for i := range samples {
			samples[i].ID = uuid.NewString()
			samples[i].CreatedAt = now
			if err := tx.CreateEvent(ctx, &samples[i]); err != nil {
				return err
			}
		}
		log.Printf("🌱 Seeded %d sample events", len(samples))
		return nil
	})
}
