package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/internal/models"
)

func seedEvent(t *testing.T, s Store, id string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Update(ctx, func(tx Tx) error {
		return tx.CreateEvent(ctx, &models.Event{ID: id, Name: "Go Meetup", Date: "2030-01-01", Capacity: 2})
	}))
}

func TestMemoryStore_DeleteEventCascades(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seedEvent(t, s, "e1")
	seedEvent(t, s, "e2")

	require.NoError(t, s.Update(ctx, func(tx Tx) error {
		for _, r := range []models.Registration{
			{ID: "r1", EventID: "e1", Email: "a@x.io", Status: models.StatusConfirmed},
			{ID: "r2", EventID: "e2", Email: "a@x.io", Status: models.StatusConfirmed},
		} {
			r := r
			if err := tx.CreateRegistration(ctx, &r); err != nil {
				return err
			}
		}
		return tx.CreateAnnouncement(ctx, &models.Announcement{ID: "a1", EventID: "e1", Message: "hello"})
	}))

	require.NoError(t, s.Update(ctx, func(tx Tx) error { return tx.DeleteEvent(ctx, "e1") }))

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		_, err := tx.GetEvent(ctx, "e1")
		assert.ErrorIs(t, err, ErrNotFound)

		regs, err := tx.ListRegistrations(ctx, "e1")
		require.NoError(t, err)
		assert.Empty(t, regs)

		anns, err := tx.ListAnnouncements(ctx, "e1")
		require.NoError(t, err)
		assert.Empty(t, anns)

		other, err := tx.ListRegistrations(ctx, "e2")
		require.NoError(t, err)
		assert.Len(t, other, 1)
		return nil
	}))
}

func TestMemoryStore_UpdateRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	boom := errors.New("boom")

	err := s.Update(ctx, func(tx Tx) error {
		if err := tx.CreateEvent(ctx, &models.Event{ID: "e1"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		events, err := tx.ListEvents(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
		return nil
	}))
}

func TestMemoryStore_ViewIsReadOnly(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.View(ctx, func(tx Tx) error {
		return tx.CreateEvent(ctx, &models.Event{ID: "e1"})
	})
	assert.ErrorIs(t, err, errReadOnly)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seedEvent(t, s, "e1")

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		e, err := tx.GetEvent(ctx, "e1")
		require.NoError(t, err)
		e.Name = "mutated"
		return nil
	}))

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		e, err := tx.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "Go Meetup", e.Name)
		return nil
	}))
}

func TestMemoryStore_EmailLookupsIgnoreCase(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seedEvent(t, s, "e1")

	require.NoError(t, s.Update(ctx, func(tx Tx) error {
		if err := tx.CreateUser(ctx, &models.User{ID: "u1", Email: "ada@example.com"}); err != nil {
			return err
		}
		return tx.CreateRegistration(ctx, &models.Registration{ID: "r1", EventID: "e1", Email: "ada@example.com"})
	}))

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		u, err := tx.FindUserByEmail(ctx, " ADA@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)

		r, err := tx.FindRegistrationByEmail(ctx, "e1", "Ada@EXAMPLE.com")
		require.NoError(t, err)
		assert.Equal(t, "r1", r.ID)
		return nil
	}))

	err := s.Update(ctx, func(tx Tx) error {
		return tx.CreateRegistration(ctx, &models.Registration{ID: "r2", EventID: "e1", Email: "ADA@example.com"})
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryStore_StatsAndCounts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Update(ctx, func(tx Tx) error {
		for _, e := range []models.Event{
			{ID: "past", Date: "2020-01-01"},
			{ID: "today", Date: "2026-10-17"},
			{ID: "future", Date: "2027-03-01"},
		} {
			e := e
			if err := tx.CreateEvent(ctx, &e); err != nil {
				return err
			}
		}
		for _, r := range []models.Registration{
			{ID: "r1", EventID: "future", Email: "a@x.io", Status: models.StatusConfirmed},
			{ID: "r2", EventID: "future", Email: "b@x.io", Status: models.StatusPending},
		} {
			r := r
			if err := tx.CreateRegistration(ctx, &r); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		stats, err := tx.EventStats(ctx, "2026-10-17")
		require.NoError(t, err)
		assert.Equal(t, models.Stats{TotalEvents: 3, TotalRegistrations: 2, UpcomingEvents: 2}, stats)

		n, err := tx.CountRegistrations(ctx, "future", models.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = tx.CountRegistrations(ctx, "future", "")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		return nil
	}))
}

func TestMemoryStore_AuditLogsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Update(ctx, func(tx Tx) error {
		for _, a := range []string{"EVENT_CREATED", "EVENT_UPDATED", "EVENT_DELETED"} {
			if err := tx.CreateAuditLog(ctx, &models.AuditLog{Action: a, EventID: "e1", Status: "success"}); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		logs, err := tx.ListAuditLogs(ctx, models.AuditLogFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "EVENT_DELETED", logs[0].Action)
		assert.Equal(t, uint(3), logs[0].ID)

		logs, err = tx.ListAuditLogs(ctx, models.AuditLogFilter{Action: "updated"})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "EVENT_UPDATED", logs[0].Action)
		return nil
	}))
}

func TestSeed_CreatesAdminOnce(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	cfg := config.Defaults()
	cfg.SeedSampleEvents = true
	hash := func(p string) (string, error) { return "hashed:" + p, nil }

	require.NoError(t, Seed(ctx, s, cfg, hash))
	require.NoError(t, Seed(ctx, s, cfg, hash))

	require.NoError(t, s.View(ctx, func(tx Tx) error {
		u, err := tx.FindUserByEmail(ctx, "admin@local")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, u.Role)
		assert.Equal(t, "hashed:admin123", u.PasswordHash)

		events, err := tx.ListEvents(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 2)
		today := time.Now().UTC().Format(models.DateLayout)
		for _, e := range events {
			assert.Greater(t, e.Date, today)
		}
		return nil
	}))
}
