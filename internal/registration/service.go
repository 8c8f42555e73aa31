// Package registration is the registration engine: it admits participants
// to events without ever letting the confirmed count exceed capacity, and
// moves registrations between confirmed, pending and rejected.
package registration

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/models"
	"github.com/sharath018/event-management-backend/internal/validation"
)

type Service struct {
	Store    database.Store
	AuditSvc auditlog.Service
	Metrics  *metrics.Metrics
	Now      func() time.Time
}

func NewService(store database.Store, auditSvc auditlog.Service, m *metrics.Metrics) *Service {
	return &Service{Store: store, AuditSvc: auditSvc, Metrics: m, Now: time.Now}
}

// ===========================
// 🎟 Register
// Register admits a participant as confirmed. Checks run in order: payload,
// event existence, duplicate email, capacity. All of them and the insert
// happen in one store transaction.
func (s *Service) Register(ctx context.Context, eventID string, req *RegisterRequest, userID string) (*models.Registration, error) {
	in := req.input()
	if errs := validation.Registration(in); errs != nil {
		s.Metrics.Registration(metrics.OutcomeInvalid)
		return nil, apperr.Validation(errs)
	}

	reg := &models.Registration{
		ID:           uuid.NewString(),
		EventID:      eventID,
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Email:        validation.NormalizeEmail(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Status:       models.StatusConfirmed,
		RegisteredAt: s.Now().UTC(),
	}

	err := s.Store.Update(ctx, func(tx database.Tx) error {
		event, err := tx.LockEvent(ctx, eventID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return apperr.NotFound(msgEventNotFound)
			}
			return err
		}

		existing, err := tx.FindRegistrationByEmail(ctx, eventID, reg.Email)
		switch {
		case err == nil:
			return apperr.Conflict(msgAlreadyRegistered, existing)
		case !errors.Is(err, database.ErrNotFound):
			return err
		}

		confirmed, err := tx.CountRegistrations(ctx, eventID, models.StatusConfirmed)
		if err != nil {
			return err
		}
		if confirmed >= event.Capacity {
			return apperr.CapacityExceeded(msgEventFull)
		}

		return tx.CreateRegistration(ctx, reg)
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			err = apperr.Conflict(msgAlreadyRegistered, nil)
		}
		s.Metrics.Registration(outcomeOf(err))
		return nil, wrapInternal(err, "Failed to register")
	}

	s.Metrics.Registration(metrics.OutcomeSuccess)
	return reg, nil
}

// ===========================
// 🔁 Set Status
// SetStatus moves a registration to status. Transitions between any two
// states are allowed; moving into confirmed re-checks capacity. An invalid
// status never touches the stored record.
func (s *Service) SetStatus(ctx context.Context, id, status, actorID, ip string) (*models.Registration, error) {
	reg, err := s.setStatus(ctx, id, status, nil)
	s.auditStatus(ctx, auditlog.ActionRegistrationStatus, actorID, reg, id, status, ip, err)
	return reg, err
}

// ===========================
// ❌ Cancel Own
// CancelOwn rejects a registration on behalf of its registrant. Admins may
// cancel any registration; everybody else only the ones made with their
// own email.
func (s *Service) CancelOwn(ctx context.Context, id string, actor *models.User, ip string) (*models.Registration, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}

	owns := func(reg *models.Registration) error {
		if actor.IsAdmin() || strings.EqualFold(reg.Email, strings.TrimSpace(actor.Email)) {
			return nil
		}
		return apperr.Forbidden(msgNotOwner)
	}

	reg, err := s.setStatus(ctx, id, models.StatusRejected, owns)
	s.auditStatus(ctx, auditlog.ActionRegistrationCancelled, actor.ID, reg, id, models.StatusRejected, ip, err)
	return reg, err
}

func (s *Service) setStatus(ctx context.Context, id, status string, authorize func(*models.Registration) error) (*models.Registration, error) {
	if !models.ValidStatus(status) {
		return nil, apperr.InvalidStatus(msgInvalidStatus)
	}

	var reg *models.Registration
	err := s.Store.Update(ctx, func(tx database.Tx) error {
		var err error
		reg, err = tx.GetRegistration(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return apperr.NotFound(msgRegistrationNotFound)
			}
			return err
		}

		if authorize != nil {
			if err := authorize(reg); err != nil {
				return err
			}
		}

		if status == models.StatusConfirmed && reg.Status != models.StatusConfirmed {
			event, err := tx.LockEvent(ctx, reg.EventID)
			if err != nil {
				if errors.Is(err, database.ErrNotFound) {
					return apperr.NotFound(msgEventNotFound)
				}
				return err
			}
			confirmed, err := tx.CountRegistrations(ctx, reg.EventID, models.StatusConfirmed)
			if err != nil {
				return err
			}
			if confirmed >= event.Capacity {
				return apperr.CapacityExceeded(msgConfirmAtCapacity)
			}
		}

		now := s.Now().UTC()
		reg.Status = status
		reg.UpdatedAt = &now
		return tx.SaveRegistration(ctx, reg)
	})
	if err != nil {
		return nil, wrapInternal(err, "Failed to update status")
	}

	s.Metrics.StatusChange(status)
	return reg, nil
}

// ===========================
// 🔍 Check
// Check returns the registration for email at the event, or nil.
func (s *Service) Check(ctx context.Context, eventID, email string) (*models.Registration, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperr.BadRequest(msgEmailRequired)
	}

	var reg *models.Registration
	err := s.Store.View(ctx, func(tx database.Tx) error {
		r, err := tx.FindRegistrationByEmail(ctx, eventID, email)
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}
		reg = r
		return err
	})
	if err != nil {
		return nil, apperr.Internal("Failed to check registration", err)
	}
	return reg, nil
}

// ===========================
// 📄 List By Event
func (s *Service) ListByEvent(ctx context.Context, eventID string) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.Store.View(ctx, func(tx database.Tx) error {
		if _, err := tx.GetEvent(ctx, eventID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return apperr.NotFound(msgEventNotFound)
			}
			return err
		}
		var err error
		regs, err = tx.ListRegistrations(ctx, eventID)
		return err
	})
	if err != nil {
		return nil, wrapInternal(err, "Failed to fetch registrations")
	}
	return regs, nil
}

func (s *Service) auditStatus(ctx context.Context, action, actorID string, reg *models.Registration, id, status, ip string, err error) {
	if s.AuditSvc == nil {
		return
	}
	details := map[string]interface{}{"registration_id": id, "status": status}
	eventID := ""
	if reg != nil {
		eventID = reg.EventID
		details["email"] = reg.Email
	}
	result := auditlog.StatusSuccess
	if err != nil {
		result = auditlog.StatusFailure
		details["error"] = err.Error()
	}
	_ = s.AuditSvc.LogAction(ctx, actorID, eventID, action, details, ip, result)
}

// wrapInternal keeps classified errors and hides everything else behind a
// generic message.
func wrapInternal(err error, msg string) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae
	}
	return apperr.Internal(msg, err)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperr.ErrConflict):
		return metrics.OutcomeDuplicate
	case errors.Is(err, apperr.ErrCapacityExceeded):
		return metrics.OutcomeFull
	case errors.Is(err, apperr.ErrNotFound):
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}
