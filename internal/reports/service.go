package reports

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auditlog"
)

// File is a rendered export ready to be streamed to the client.
type File struct {
	Data        []byte
	Filename    string
	ContentType string
}

type Service struct {
	Store    database.Store
	Exporter ReportExporter
	AuditSvc auditlog.Service
	Now      func() time.Time
}

func NewService(store database.Store, auditSvc auditlog.Service) *Service {
	return &Service{
		Store:    store,
		Exporter: NewReportExporter(),
		AuditSvc: auditSvc,
		Now:      time.Now,
	}
}

// ParticipantsReport loads the event and its registrations in one read.
func (s *Service) ParticipantsReport(ctx context.Context, eventID string) (*ParticipantReport, error) {
	report := &ParticipantReport{GeneratedAt: s.Now()}
	err := s.Store.View(ctx, func(tx database.Tx) error {
		ev, err := tx.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}
		regs, err := tx.ListRegistrations(ctx, eventID)
		if err != nil {
			return err
		}
		report.Event = *ev
		report.Registrations = regs
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, apperr.NotFound("Event not found")
		}
		return nil, apperr.Internal("Failed to download participants", err)
	}
	return report, nil
}

// DownloadParticipants renders the participants list of an event in the requested format.
func (s *Service) DownloadParticipants(ctx context.Context, eventID, format, userID, ip string) (*File, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != FormatExcel && format != "xlsx" && format != FormatPDF {
		return nil, apperr.BadRequest("Unsupported format: " + format)
	}

	report, err := s.ParticipantsReport(ctx, eventID)
	if err != nil {
		return nil, err
	}

	data, name, mime, err := s.Exporter.Export(format, *report)
	if err != nil {
		s.audit(ctx, userID, eventID, format, 0, ip, auditlog.StatusFailure)
		return nil, apperr.Internal("Failed to render participants", err)
	}

	s.audit(ctx, userID, eventID, format, len(report.Registrations), ip, auditlog.StatusSuccess)
	return &File{Data: data, Filename: name, ContentType: mime}, nil
}

func (s *Service) audit(ctx context.Context, userID, eventID, format string, rows int, ip, status string) {
	if s.AuditSvc == nil {
		return
	}
	if format == "" {
		format = FormatExcel
	}
	details := map[string]interface{}{"format": format, "participants": rows}
	if err := s.AuditSvc.LogAction(ctx, userID, eventID, auditlog.ActionParticipantsDownloaded, details, ip, status); err != nil {
		log.Printf("⚠️ audit %s: %v", auditlog.ActionParticipantsDownloaded, err)
	}
}
