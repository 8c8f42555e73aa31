package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/models"
	"github.com/sharath018/event-management-backend/internal/validation"
)

// Service wraps business logic for events
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
	Now      func() time.Time
}

// NewService initializes a new Service with audit logging
func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{
		Repo:     r,
		AuditSvc: auditSvc,
		Now:      time.Now,
	}
}

var errEventNotFound = apperr.NotFound("Event not found")

func notFoundOr(err error, msg string) error {
	if errors.Is(err, database.ErrNotFound) {
		return errEventNotFound
	}
	return apperr.Internal(msg, err)
}

// ===========================
// 📄 List Events
func (s *Service) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.Repo.ListEvents(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch events", err)
	}
	return events, nil
}

// ===========================
// 🔍 Get Event
func (s *Service) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	e, err := s.Repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Failed to fetch event")
	}
	return e, nil
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, req *EventRequest, userID, ip string) (*models.Event, error) {
	in := req.input()
	if errs := validation.Event(in, s.Now()); errs != nil {
		s.audit(ctx, userID, "", auditlog.ActionEventCreated, map[string]interface{}{
			"name":  in.Name,
			"error": "validation failed",
		}, ip, auditlog.StatusFailure)
		return nil, apperr.Validation(errs)
	}

	e := &models.Event{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		Capacity:    in.Capacity,
		CreatedBy:   userID,
		CreatedAt:   s.Now().UTC(),
	}
	if err := s.Repo.CreateEvent(ctx, e); err != nil {
		s.audit(ctx, userID, e.ID, auditlog.ActionEventCreated, map[string]interface{}{
			"name":  e.Name,
			"error": err.Error(),
		}, ip, auditlog.StatusFailure)
		return nil, apperr.Internal("Failed to create event", err)
	}

	s.audit(ctx, userID, e.ID, auditlog.ActionEventCreated, map[string]interface{}{
		"name":     e.Name,
		"date":     e.Date,
		"capacity": e.Capacity,
	}, ip, auditlog.StatusSuccess)
	return e, nil
}

// ===========================
// 🛠 Update Event
// Capacity is not checked against the current confirmed count.
func (s *Service) UpdateEvent(ctx context.Context, id string, req *EventRequest, userID, ip string) (*models.Event, error) {
	in := req.input()
	if errs := validation.Event(in, s.Now()); errs != nil {
		s.audit(ctx, userID, id, auditlog.ActionEventUpdated, map[string]interface{}{
			"error": "validation failed",
		}, ip, auditlog.StatusFailure)
		return nil, apperr.Validation(errs)
	}

	now := s.Now().UTC()
	e, err := s.Repo.UpdateEvent(ctx, id, func(e *models.Event) {
		e.Name = strings.TrimSpace(in.Name)
		e.Description = strings.TrimSpace(in.Description)
		e.Date = in.Date
		e.Capacity = in.Capacity
		e.UpdatedAt = &now
	})
	if err != nil {
		s.audit(ctx, userID, id, auditlog.ActionEventUpdated, map[string]interface{}{
			"error": err.Error(),
		}, ip, auditlog.StatusFailure)
		return nil, notFoundOr(err, "Failed to update event")
	}

	s.audit(ctx, userID, id, auditlog.ActionEventUpdated, map[string]interface{}{
		"name":     e.Name,
		"date":     e.Date,
		"capacity": e.Capacity,
	}, ip, auditlog.StatusSuccess)
	return e, nil
}

// ===========================
// 🗑 Delete Event
// Registrations and announcements of the event go with it.
func (s *Service) DeleteEvent(ctx context.Context, id, userID, ip string) error {
	e, err := s.Repo.DeleteEvent(ctx, id)
	if err != nil {
		s.audit(ctx, userID, id, auditlog.ActionEventDeleted, map[string]interface{}{
			"error": err.Error(),
		}, ip, auditlog.StatusFailure)
		return notFoundOr(err, "Failed to delete event")
	}

	s.audit(ctx, userID, id, auditlog.ActionEventDeleted, map[string]interface{}{
		"name": e.Name,
	}, ip, auditlog.StatusSuccess)
	return nil
}

func (s *Service) audit(ctx context.Context, userID, eventID, action string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc == nil {
		return
	}
	_ = s.AuditSvc.LogAction(ctx, userID, eventID, action, details, ip, status)
}
