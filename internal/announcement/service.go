package announcement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/models"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/internal/validation"
)

type Service struct {
	Store      database.Store
	Dispatcher notification.Dispatcher
	AuditSvc   auditlog.Service
	Now        func() time.Time
}

func NewService(store database.Store, dispatcher notification.Dispatcher, auditSvc auditlog.Service) *Service {
	return &Service{Store: store, Dispatcher: dispatcher, AuditSvc: auditSvc, Now: time.Now}
}

// Result is a stored announcement together with the number of
// registrations it was addressed to.
type Result struct {
	Announcement *models.Announcement
	Recipients   int
}

// SummaryMessage is the human-readable outcome returned to the sender.
func (r *Result) SummaryMessage() string {
	return fmt.Sprintf("Announcement sent to %d participant(s)", r.Recipients)
}

// ===========================
// 📄 List Announcements
func (s *Service) List(ctx context.Context, eventID string) ([]models.Announcement, error) {
	var anns []models.Announcement
	err := s.Store.View(ctx, func(tx database.Tx) error {
		if _, err := tx.GetEvent(ctx, eventID); err != nil {
			return err
		}
		var err error
		anns, err = tx.ListAnnouncements(ctx, eventID)
		return err
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, apperr.NotFound("Event not found")
		}
		return nil, apperr.Internal("Failed to fetch announcements", err)
	}
	return anns, nil
}

// ===========================
// 📣 Create Announcement
// Create stores the announcement and hands it to the dispatcher addressed
// to every registration of the event, whatever its status.
func (s *Service) Create(ctx context.Context, eventID, message, userID, ip string) (*Result, error) {
	if errs := validation.Announcement(message); errs != nil {
		return nil, apperr.Validation(errs)
	}

	ann := &models.Announcement{
		ID:      uuid.NewString(),
		EventID: eventID,
		Message: strings.TrimSpace(message),
		SentBy:  userID,
		SentAt:  s.Now().UTC(),
	}

	var (
		event      *models.Event
		recipients []string
	)
	err := s.Store.Update(ctx, func(tx database.Tx) error {
		var err error
		if event, err = tx.GetEvent(ctx, eventID); err != nil {
			return err
		}
		regs, err := tx.ListRegistrations(ctx, eventID)
		if err != nil {
			return err
		}
		recipients = make([]string, 0, len(regs))
		for _, r := range regs {
			recipients = append(recipients, r.Email)
		}
		return tx.CreateAnnouncement(ctx, ann)
	})
	if err != nil {
		s.audit(ctx, userID, eventID, map[string]interface{}{"error": err.Error()}, ip, auditlog.StatusFailure)
		if errors.Is(err, database.ErrNotFound) {
			return nil, apperr.NotFound("Event not found")
		}
		return nil, apperr.Internal("Failed to send announcement", err)
	}

	if s.Dispatcher != nil && len(recipients) > 0 {
		msg := notification.Message{
			EventID:        event.ID,
			EventName:      event.Name,
			AnnouncementID: ann.ID,
			Text:           ann.Message,
			Recipients:     recipients,
			SentAt:         ann.SentAt,
		}
		if err := s.Dispatcher.Dispatch(ctx, msg); err != nil {
			log.Printf("⚠️ Announcement %s stored but not dispatched: %v", ann.ID, err)
		}
	}

	s.audit(ctx, userID, eventID, map[string]interface{}{
		"announcement_id": ann.ID,
		"recipients":      len(recipients),
	}, ip, auditlog.StatusSuccess)
	return &Result{Announcement: ann, Recipients: len(recipients)}, nil
}

func (s *Service) audit(ctx context.Context, userID, eventID string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc == nil {
		return
	}
	_ = s.AuditSvc.LogAction(ctx, userID, eventID, auditlog.ActionAnnouncementSent, details, ip, status)
}
