package models

import "time"

// ============================
// 📣 Announcement
type Announcement struct {
	ID      string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	EventID string    `gorm:"type:varchar(64);not null;index" json:"eventId"`
	Message string    `gorm:"type:text;not null" json:"message"`
	SentBy  string    `gorm:"type:varchar(64)" json:"sentBy,omitempty"`
	SentAt  time.Time `gorm:"not null" json:"sentAt"`
}
