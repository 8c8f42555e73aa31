// Package database is the persistence boundary. Services reach storage only
// through Store.View and Store.Update, so the process-local memory store and
// the GORM store are interchangeable.
package database

import (
	"context"
	"errors"

	"github.com/sharath018/event-management-backend/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness rule.
var ErrDuplicate = errors.New("duplicate record")

// Store hands out transactional views of the collections.
type Store interface {
	// View runs fn with read access.
	View(ctx context.Context, fn func(tx Tx) error) error
	// Update runs fn as one atomic read-modify-write. If fn returns an
	// error, none of its writes are kept.
	Update(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}

// Tx is the capability set available inside View and Update.
type Tx interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	// LockEvent is GetEvent that additionally holds the event row until the
	// surrounding Update finishes.
	LockEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, e *models.Event) error
	SaveEvent(ctx context.Context, e *models.Event) error
	// DeleteEvent removes the event with its registrations and announcements.
	DeleteEvent(ctx context.Context, id string) error
	EventStats(ctx context.Context, today string) (models.Stats, error)

	ListRegistrations(ctx context.Context, eventID string) ([]models.Registration, error)
	GetRegistration(ctx context.Context, id string) (*models.Registration, error)
	// FindRegistrationByEmail matches email case-insensitively.
	FindRegistrationByEmail(ctx context.Context, eventID, email string) (*models.Registration, error)
	CountRegistrations(ctx context.Context, eventID, status string) (int, error)
	CreateRegistration(ctx context.Context, r *models.Registration) error
	SaveRegistration(ctx context.Context, r *models.Registration) error

	ListAnnouncements(ctx context.Context, eventID string) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error

	GetUser(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
	ListAuditLogs(ctx context.Context, filter models.AuditLogFilter) ([]models.AuditLog, error)
}
