package notification

import "time"

// Message is one announcement to fan out to an event's registrants.
type Message struct {
	EventID        string    `json:"eventId"`
	EventName      string    `json:"eventName"`
	AnnouncementID string    `json:"announcementId"`
	Text           string    `json:"text"`
	Recipients     []string  `json:"recipients"`
	SentAt         time.Time `json:"sentAt"`
}

// Subject is the email subject line for the message.
func (m Message) Subject() string {
	return "📣 " + m.EventName + " - Announcement"
}
