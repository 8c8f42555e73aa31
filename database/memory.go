package database

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sharath018/event-management-backend/internal/models"
)

var errReadOnly = errors.New("write attempted inside a read-only view")

// MemoryStore keeps every collection in process memory. A single RWMutex is
// the serialization point: Update holds the write lock for the whole
// read-modify-write, so check-then-act sequences cannot interleave.
type MemoryStore struct {
	mu   sync.RWMutex
	data *memData
}

type memData struct {
	events        []models.Event
	registrations []models.Registration
	announcements []models.Announcement
	users         []models.User
	auditLogs     []models.AuditLog
	nextAuditID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: &memData{nextAuditID: 1}}
}

func (s *MemoryStore) View(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&memTx{d: s.data})
}

// Update works on a copy of the collections and publishes it only when fn
// succeeds.
func (s *MemoryStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(&memTx{d: work, writable: true}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func (d *memData) clone() *memData {
	return &memData{
		events:        append([]models.Event(nil), d.events...),
		registrations: append([]models.Registration(nil), d.registrations...),
		announcements: append([]models.Announcement(nil), d.announcements...),
		users:         append([]models.User(nil), d.users...),
		auditLogs:     append([]models.AuditLog(nil), d.auditLogs...),
		nextAuditID:   d.nextAuditID,
	}
}

type memTx struct {
	d        *memData
	writable bool
}

func (t *memTx) checkWrite() error {
	if !t.writable {
		return errReadOnly
	}
	return nil
}

// ===========================
// 🎯 Events

func (t *memTx) ListEvents(ctx context.Context) ([]models.Event, error) {
	return append([]models.Event{}, t.d.events...), nil
}

func (t *memTx) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	for i := range t.d.events {
		if t.d.events[i].ID == id {
			e := t.d.events[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (t *memTx) LockEvent(ctx context.Context, id string) (*models.Event, error) {
	return t.GetEvent(ctx, id)
}

func (t *memTx) CreateEvent(ctx context.Context, e *models.Event) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	for i := range t.d.events {
		if t.d.events[i].ID == e.ID {
			return ErrDuplicate
		}
	}
	t.d.events = append(t.d.events, *e)
	return nil
}

func (t *memTx) SaveEvent(ctx context.Context, e *models.Event) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	for i := range t.d.events {
		if t.d.events[i].ID == e.ID {
			t.d.events[i] = *e
			return nil
		}
	}
	return ErrNotFound
}

func (t *memTx) DeleteEvent(ctx context.Context, id string) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	idx := -1
	for i := range t.d.events {
		if t.d.events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	t.d.events = append(t.d.events[:idx:idx], t.d.events[idx+1:]...)

	regs := t.d.registrations[:0:0]
	for _, r := range t.d.registrations {
		if r.EventID != id {
			regs = append(regs, r)
		}
	}
	t.d.registrations = regs

	anns := t.d.announcements[:0:0]
	for _, a := range t.d.announcements {
		if a.EventID != id {
			anns = append(anns, a)
		}
	}
	t.d.announcements = anns
	return nil
}

func (t *memTx) EventStats(ctx context.Context, today string) (models.Stats, error) {
	stats := models.Stats{
		TotalEvents:        len(t.d.events),
		TotalRegistrations: len(t.d.registrations),
		TotalAnnouncements: len(t.d.announcements),
	}
	for _, e := range t.d.events {
		if e.Date >= today {
			stats.UpcomingEvents++
		}
	}
	return stats, nil
}

// ===========================
// 🎟 Registrations

func (t *memTx) ListRegistrations(ctx context.Context, eventID string) ([]models.Registration, error) {
	out := []models.Registration{}
	for _, r := range t.d.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (t *memTx) GetRegistration(ctx context.Context, id string) (*models.Registration, error) {
	for i := range t.d.registrations {
		if t.d.registrations[i].ID == id {
			r := t.d.registrations[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (t *memTx) FindRegistrationByEmail(ctx context.Context, eventID, email string) (*models.Registration, error) {
	email = strings.TrimSpace(email)
	for i := range t.d.registrations {
		r := t.d.registrations[i]
		if r.EventID == eventID && strings.EqualFold(r.Email, email) {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (t *memTx) CountRegistrations(ctx context.Context, eventID, status string) (int, error) {
	n := 0
	for _, r := range t.d.registrations {
		if r.EventID == eventID && (status == "" || r.Status == status) {
			n++
		}
	}
	return n, nil
}

func (t *memTx) CreateRegistration(ctx context.Context, r *models.Registration) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	for _, existing := range t.d.registrations {
		if existing.ID == r.ID ||
			(existing.EventID == r.EventID && strings.EqualFold(existing.Email, r.Email)) {
			return ErrDuplicate
		}
	}
	t.d.registrations = append(t.d.registrations, *r)
	return nil
}

func (t *memTx) SaveRegistration(ctx context.Context, r *models.Registration) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	for i := range t.d.registrations {
		if t.d.registrations[i].ID == r.ID {
			t.d.registrations[i] = *r
			return nil
		}
	}
	return ErrNotFound
}

// ===========================
// 📣 Announcements

func (t *memTx) ListAnnouncements(ctx context.Context, eventID string) ([]models.Announcement, error) {
	out := []models.Announcement{}
	for _, a := range t.d.announcements {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (t *memTx) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	t.d.announcements = append(t.d.announcements, *a)
	return nil
}

// ===========================
// 👤 Users

func (t *memTx) GetUser(ctx context.Context, id string) (*models.User, error) {
	for i := range t.d.users {
		if t.d.users[i].ID == id {
			u := t.d.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (t *memTx) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	for i := range t.d.users {
		if strings.EqualFold(t.d.users[i].Email, email) {
			u := t.d.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (t *memTx) CreateUser(ctx context.Context, u *models.User) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	for _, existing := range t.d.users {
		if existing.ID == u.ID || strings.EqualFold(existing.Email, u.Email) {
			return ErrDuplicate
		}
	}
	t.d.users = append(t.d.users, *u)
	return nil
}

// ===========================
// 📝 Audit logs

func (t *memTx) CreateAuditLog(ctx context.Context, l *models.AuditLog) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	l.ID = t.d.nextAuditID
	t.d.nextAuditID++
	t.d.auditLogs = append(t.d.auditLogs, *l)
	return nil
}

func (t *memTx) ListAuditLogs(ctx context.Context, filter models.AuditLogFilter) ([]models.AuditLog, error) {
	out := []models.AuditLog{}
	for i := len(t.d.auditLogs) - 1; i >= 0; i-- {
		l := t.d.auditLogs[i]
		if filter.EventID != "" && l.EventID != filter.EventID {
			continue
		}
		if filter.Action != "" && !strings.Contains(strings.ToUpper(l.Action), strings.ToUpper(filter.Action)) {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}
