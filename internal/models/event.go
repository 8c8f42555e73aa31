package models

import "time"

// DateLayout is the calendar-date format used for event dates.
const DateLayout = "2006-01-02"

// ============================
// 🔷 Event
type Event struct {
	ID          string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Date        string     `gorm:"type:varchar(10);not null;index" json:"date"`
	Capacity    int        `gorm:"not null" json:"capacity"`
	CreatedBy   string     `gorm:"type:varchar(64)" json:"createdBy,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`

	ConfirmedCount int `gorm:"-" json:"confirmedCount"`
}

// Stats is the aggregate served by GET /stats.
type Stats struct {
	TotalEvents        int `json:"totalEvents"`
	TotalRegistrations int `json:"totalRegistrations"`
	TotalAnnouncements int `json:"totalAnnouncements"`
	UpcomingEvents     int `json:"upcomingEvents"`
}
