package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sharath018/event-management-backend/internal/models"
)

// GormStore persists the collections through GORM.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) View(ctx context.Context, fn func(tx Tx) error) error {
	return fn(&gormTx{db: s.DB.WithContext(ctx)})
}

func (s *GormStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx, locking: true})
	})
}

func (s *GormStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates every table the store needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Event{},
		&models.Registration{},
		&models.Announcement{},
		&models.User{},
		&models.AuditLog{},
	)
}

type gormTx struct {
	db      *gorm.DB
	locking bool
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ===========================
// 🎯 Events

func (t *gormTx) ListEvents(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	err := t.db.Order("created_at ASC").Find(&events).Error
	return events, translate(err)
}

func (t *gormTx) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var e models.Event
	if err := t.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (t *gormTx) LockEvent(ctx context.Context, id string) (*models.Event, error) {
	if !t.locking {
		return t.GetEvent(ctx, id)
	}
	var e models.Event
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (t *gormTx) CreateEvent(ctx context.Context, e *models.Event) error {
	return translate(t.db.Create(e).Error)
}

func (t *gormTx) SaveEvent(ctx context.Context, e *models.Event) error {
	return affected(t.db.Model(&models.Event{}).Where("id = ?", e.ID).Updates(map[string]any{
		"name":        e.Name,
		"description": e.Description,
		"date":        e.Date,
		"capacity":    e.Capacity,
		"updated_at":  e.UpdatedAt,
	}))
}

func (t *gormTx) DeleteEvent(ctx context.Context, id string) error {
	if err := t.db.Where("event_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
		return translate(err)
	}
	if err := t.db.Where("event_id = ?", id).Delete(&models.Announcement{}).Error; err != nil {
		return translate(err)
	}
	return affected(t.db.Where("id = ?", id).Delete(&models.Event{}))
}

func (t *gormTx) EventStats(ctx context.Context, today string) (models.Stats, error) {
	var events, regs, anns, upcoming int64
	if err := t.db.Model(&models.Event{}).Count(&events).Error; err != nil {
		return models.Stats{}, err
	}
	if err := t.db.Model(&models.Registration{}).Count(&regs).Error; err != nil {
		return models.Stats{}, err
	}
	if err := t.db.Model(&models.Announcement{}).Count(&anns).Error; err != nil {
		return models.Stats{}, err
	}
	if err := t.db.Model(&models.Event{}).Where("date >= ?", today).Count(&upcoming).Error; err != nil {
		return models.Stats{}, err
	}
	return models.Stats{
		TotalEvents:        int(events),
		TotalRegistrations: int(regs),
		TotalAnnouncements: int(anns),
		UpcomingEvents:     int(upcoming),
	}, nil
}

// ===========================
// 🎟 Registrations

func (t *gormTx) ListRegistrations(ctx context.Context, eventID string) ([]models.Registration, error) {
	regs := []models.Registration{}
	err := t.db.Where("event_id = ?", eventID).Order("registered_at ASC").Find(&regs).Error
	return regs, translate(err)
}

func (t *gormTx) GetRegistration(ctx context.Context, id string) (*models.Registration, error) {
	var r models.Registration
	if err := t.db.Where("id = ?", id).First(&r).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (t *gormTx) FindRegistrationByEmail(ctx context.Context, eventID, email string) (*models.Registration, error) {
	var r models.Registration
	err := t.db.Where("event_id = ? AND LOWER(email) = ?", eventID, strings.ToLower(strings.TrimSpace(email))).
		First(&r).Error
	if err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (t *gormTx) CountRegistrations(ctx context.Context, eventID, status string) (int, error) {
	var count int64
	q := t.db.Model(&models.Registration{}).Where("event_id = ?", eventID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return int(count), translate(err)
}

func (t *gormTx) CreateRegistration(ctx context.Context, r *models.Registration) error {
	return translate(t.db.Create(r).Error)
}

func (t *gormTx) SaveRegistration(ctx context.Context, r *models.Registration) error {
	return affected(t.db.Model(&models.Registration{}).Where("id = ?", r.ID).Updates(map[string]any{
		"status":     r.Status,
		"updated_at": r.UpdatedAt,
	}))
}

// ===========================
// 📣 Announcements

func (t *gormTx) ListAnnouncements(ctx context.Context, eventID string) ([]models.Announcement, error) {
	anns := []models.Announcement{}
	err := t.db.Where("event_id = ?", eventID).Order("sent_at ASC").Find(&anns).Error
	return anns, translate(err)
}

func (t *gormTx) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	return translate(t.db.Create(a).Error)
}

// ===========================
// 👤 Users

func (t *gormTx) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := t.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (t *gormTx) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := t.db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (t *gormTx) CreateUser(ctx context.Context, u *models.User) error {
	return translate(t.db.Create(u).Error)
}

// ===========================
// 📝 Audit logs

func (t *gormTx) CreateAuditLog(ctx context.Context, l *models.AuditLog) error {
	return translate(t.db.Create(l).Error)
}

func (t *gormTx) ListAuditLogs(ctx context.Context, filter models.AuditLogFilter) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	q := t.db.Model(&models.AuditLog{})
	if filter.EventID != "" {
		q = q.Where("event_id = ?", filter.EventID)
	}
	if filter.Action != "" {
		q = q.Where("action ILIKE ?", "%"+filter.Action+"%")
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	err := q.Order("created_at DESC").Order("id DESC").Find(&logs).Error
	return logs, translate(err)
}
