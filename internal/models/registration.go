package models

import "time"

// Registration lifecycle states.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusRejected  = "rejected"
)

// Statuses lists every valid registration status in display order.
var Statuses = []string{StatusConfirmed, StatusPending, StatusRejected}

// ValidStatus reports whether s is one of the registration states.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ============================
// 🎟 Registration
type Registration struct {
	ID           string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	EventID      string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_registration_event_email" json:"eventId"`
	UserID       string     `gorm:"type:varchar(64);index" json:"userId,omitempty"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_registration_event_email" json:"email"`
	Phone        string     `gorm:"type:varchar(32);not null" json:"phone"`
	Status       string     `gorm:"type:varchar(20);not null;index" json:"status"`
	RegisteredAt time.Time  `gorm:"not null" json:"registeredAt"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}
