package registration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/models"
)

func newTestService(t require.TestingT) (*Service, database.Store) {
	store := database.NewMemoryStore()
	audit := auditlog.NewService(auditlog.NewRepository(store))
	return NewService(store, audit, metrics.New()), store
}

func createEvent(t require.TestingT, store database.Store, id string, capacity int) {
	ctx := context.Background()
	require.NoError(t, store.Update(ctx, func(tx database.Tx) error {
		return tx.CreateEvent(ctx, &models.Event{
			ID: id, Name: "Go Meetup", Description: "Lightning talks", Date: "2030-01-01",
			Capacity: capacity, CreatedAt: time.Now(),
		})
	}))
}

func participant(email string) *RegisterRequest {
	return &RegisterRequest{Name: "Ada Lovelace", Email: email, Phone: "(555) 123-4567"}
}

func confirmedCount(t require.TestingT, store database.Store, eventID string) int {
	ctx := context.Background()
	var n int
	require.NoError(t, store.View(ctx, func(tx database.Tx) error {
		var err error
		n, err = tx.CountRegistrations(ctx, eventID, models.StatusConfirmed)
		return err
	}))
	return n
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 10)

	reg, err := svc.Register(ctx, "e1", &RegisterRequest{Name: " Ada ", Email: " Ada@Example.COM ", Phone: " 555-123-4567 "}, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, reg.Status)
	assert.Equal(t, "ada@example.com", reg.Email)
	assert.Equal(t, "Ada", reg.Name)
	assert.Equal(t, "555-123-4567", reg.Phone)
	assert.Equal(t, "u1", reg.UserID)
	assert.Nil(t, reg.UpdatedAt)
}

func TestRegister_Validation(t *testing.T) {
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 10)

	_, err := svc.Register(context.Background(), "e1", &RegisterRequest{Name: "A", Email: "nope", Phone: "123"}, "")
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, map[string]string{
		"name":  "Name must be at least 2 characters",
		"email": "Please enter a valid email address",
		"phone": "Please enter a valid 10-digit phone number",
	}, apperr.As(err).Fields)
}

func TestRegister_UnknownEvent(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "missing", participant("a@x.io"), "")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "Event not found", err.Error())
}

func TestRegister_DuplicateIgnoresCase(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 10)

	first, err := svc.Register(ctx, "e1", participant("ada@example.com"), "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "e1", participant("ADA@Example.com"), "")
	require.ErrorIs(t, err, apperr.ErrConflict)
	ae := apperr.As(err)
	assert.Equal(t, "You are already registered for this event", ae.Message)
	existing, ok := ae.Data.(*models.Registration)
	require.True(t, ok)
	assert.Equal(t, first.ID, existing.ID)
}

// Capacity 1: A registers, B is turned away, A is rejected, B gets in, and
// A can no longer be confirmed.
func TestCapacityOneScenario(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 1)

	a, err := svc.Register(ctx, "e1", participant("a@x.io"), "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "e1", participant("b@x.io"), "")
	require.ErrorIs(t, err, apperr.ErrCapacityExceeded)
	assert.Equal(t, "Event is at full capacity", err.Error())

	rejected, err := svc.SetStatus(ctx, a.ID, models.StatusRejected, "admin", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.NotNil(t, rejected.UpdatedAt)

	_, err = svc.Register(ctx, "e1", participant("b@x.io"), "")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, a.ID, models.StatusConfirmed, "admin", "")
	require.ErrorIs(t, err, apperr.ErrCapacityExceeded)
	assert.Equal(t, "Cannot confirm - event is at capacity", err.Error())

	assert.Equal(t, 1, confirmedCount(t, store, "e1"))
}

func TestSetStatus_InvalidStatusNeverMutates(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 5)

	reg, err := svc.Register(ctx, "e1", participant("a@x.io"), "")
	require.NoError(t, err)

	for _, status := range []string{"", "CONFIRMED", "cancelled", "waitlisted"} {
		_, err := svc.SetStatus(ctx, reg.ID, status, "admin", "")
		require.ErrorIs(t, err, apperr.ErrInvalidStatus)
		assert.Equal(t, "Invalid status. Must be confirmed, pending, or rejected", err.Error())
	}

	_, err = svc.SetStatus(ctx, "missing", "bogus", "admin", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidStatus)

	require.NoError(t, store.View(ctx, func(tx database.Tx) error {
		stored, err := tx.GetRegistration(ctx, reg.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, stored.Status)
		assert.Nil(t, stored.UpdatedAt)
		return nil
	}))
}

func TestSetStatus_PermissiveTransitions(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 5)

	reg, err := svc.Register(ctx, "e1", participant("a@x.io"), "")
	require.NoError(t, err)

	for _, status := range []string{models.StatusPending, models.StatusRejected, models.StatusPending, models.StatusConfirmed, models.StatusConfirmed} {
		got, err := svc.SetStatus(ctx, reg.ID, status, "admin", "")
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	_, err = svc.SetStatus(ctx, "missing", models.StatusPending, "admin", "")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "Registration not found", err.Error())
}

func TestCancelOwn(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 5)

	reg, err := svc.Register(ctx, "e1", participant("ada@example.com"), "")
	require.NoError(t, err)

	_, err = svc.CancelOwn(ctx, reg.ID, nil, "")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	stranger := &models.User{ID: "u2", Email: "bob@example.com", Role: models.RoleParticipant}
	_, err = svc.CancelOwn(ctx, reg.ID, stranger, "")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Equal(t, 1, confirmedCount(t, store, "e1"))

	owner := &models.User{ID: "u1", Email: "Ada@Example.com", Role: models.RoleParticipant}
	got, err := svc.CancelOwn(ctx, reg.ID, owner, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.Equal(t, 0, confirmedCount(t, store, "e1"))
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 5)

	_, err := svc.Check(ctx, "e1", " ")
	require.ErrorIs(t, err, apperr.ErrBadRequest)
	assert.Equal(t, "Email parameter is required", err.Error())

	got, err := svc.Check(ctx, "e1", "ada@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	reg, err := svc.Register(ctx, "e1", participant("ada@example.com"), "")
	require.NoError(t, err)

	got, err = svc.Check(ctx, "e1", "ADA@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, reg.ID, got.ID)
}

func TestListByEvent(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	createEvent(t, store, "e1", 5)
	createEvent(t, store, "e2", 5)

	_, err := svc.Register(ctx, "e1", participant("a@x.io"), "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "e2", participant("a@x.io"), "")
	require.NoError(t, err)

	regs, err := svc.ListByEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, regs, 1)

	_, err = svc.ListByEvent(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRegister_ConcurrentNeverExceedsCapacity(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	const capacity = 7
	createEvent(t, store, "e1", capacity)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		full      int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Register(ctx, "e1", participant(fmt.Sprintf("user%d@x.io", i)), "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case apperr.As(err).Kind == apperr.KindCapacityExceeded:
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, 50-capacity, full)
	assert.Equal(t, capacity, confirmedCount(t, store, "e1"))
}

// Any interleaving of registrations and status changes keeps the confirmed
// count within capacity.
func TestCapacityInvariant_Property(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		ctx := context.Background()
		svc, store := newTestService(r)
		capacity := rapid.IntRange(1, 5).Draw(r, "capacity")
		createEvent(r, store, "e1", capacity)

		var ids []string
		steps := rapid.IntRange(1, 40).Draw(r, "steps")
		for i := 0; i < steps; i++ {
			if len(ids) == 0 || rapid.Bool().Draw(r, "register") {
				email := rapid.StringMatching(`[a-e]{1,2}@x\.io`).Draw(r, "email")
				if reg, err := svc.Register(ctx, "e1", participant(email), ""); err == nil {
					ids = append(ids, reg.ID)
				}
			} else {
				id := rapid.SampledFrom(ids).Draw(r, "id")
				status := rapid.SampledFrom([]string{"confirmed", "pending", "rejected", "bogus"}).Draw(r, "status")
				_, _ = svc.SetStatus(ctx, id, status, "admin", "")
			}

			if n := confirmedCount(r, store, "e1"); n > capacity {
				r.Fatalf("confirmed %d exceeds capacity %d", n, capacity)
			}
		}
	})
}
