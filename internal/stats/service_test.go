package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/models"
)

func seeded(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	store := database.NewMemoryStore()
	require.NoError(t, store.Update(ctx, func(tx database.Tx) error {
		for _, e := range []models.Event{
			{ID: "past", Name: "Past", Date: "2026-01-01", Capacity: 5},
			{ID: "today", Name: "Today", Date: "2026-02-10", Capacity: 5},
			{ID: "later", Name: "Later", Date: "2026-06-01", Capacity: 5},
		} {
			e := e
			if err := tx.CreateEvent(ctx, &e); err != nil {
				return err
			}
		}
		if err := tx.CreateRegistration(ctx, &models.Registration{ID: "r1", EventID: "today", Email: "a@x.io", Status: models.StatusConfirmed}); err != nil {
			return err
		}
		if err := tx.CreateRegistration(ctx, &models.Registration{ID: "r2", EventID: "later", Email: "b@x.io", Status: models.StatusPending}); err != nil {
			return err
		}
		return tx.CreateAnnouncement(ctx, &models.Announcement{ID: "a1", EventID: "today", Message: "hi"})
	}))
	svc := NewService(store)
	svc.Now = func() time.Time { return time.Date(2026, 2, 10, 18, 30, 0, 0, time.UTC) }
	return svc
}

func TestGet(t *testing.T) {
	st, err := seeded(t).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Stats{
		TotalEvents:        3,
		TotalRegistrations: 2,
		TotalAnnouncements: 1,
		UpcomingEvents:     2,
	}, st)
}

func TestGet_Empty(t *testing.T) {
	st, err := NewService(database.NewMemoryStore()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Stats{}, st)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stats", NewHandler(seeded(t)).GetStats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool         `json:"success"`
		Data    models.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.UpcomingEvents)
}

func TestGet_TodayBoundary(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	require.NoError(t, store.Update(ctx, func(tx database.Tx) error {
		if err := tx.CreateEvent(ctx, &models.Event{ID: "yesterday", Name: "Yesterday", Date: "2026-02-09", Capacity: 5}); err != nil {
			return err
		}
		return tx.CreateEvent(ctx, &models.Event{ID: "today", Name: "Today", Date: "2026-02-10", Capacity: 5})
	}))

	for _, now := range []time.Time{
		time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 23, 59, 59, 0, time.UTC),
	} {
		svc := NewService(store)
		svc.Now = func() time.Time { return now }
		st, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, st.UpcomingEvents, "at %s an event dated today is still upcoming", now)
	}

	svc := NewService(store)
	svc.Now = func() time.Time { return time.Date(2026, 2, 11, 0, 0, 1, 0, time.UTC) }
	st, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.UpcomingEvents)
}

type brokenStore struct{ database.Store }

func (brokenStore) View(context.Context, func(database.Tx) error) error {
	return errors.New("connection reset")
}

func TestGet_StoreFailure(t *testing.T) {
	_, err := NewService(brokenStore{}).Get(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInternal))
	assert.Equal(t, "Failed to fetch stats", err.Error())

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.EqualError(t, ae.Err, "connection reset")
}
