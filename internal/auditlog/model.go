package auditlog

import "github.com/sharath018/event-management-backend/internal/models"

// Outcome of an audited action.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Audited actions.
const (
	ActionEventCreated           = "EVENT_CREATED"
	ActionEventUpdated           = "EVENT_UPDATED"
	ActionEventDeleted           = "EVENT_DELETED"
	ActionRegistrationStatus     = "REGISTRATION_STATUS_UPDATED"
	ActionRegistrationCancelled  = "REGISTRATION_CANCELLED"
	ActionAnnouncementSent       = "ANNOUNCEMENT_SENT"
	ActionParticipantsDownloaded = "PARTICIPANTS_DOWNLOADED"
	ActionUserSignup             = "USER_SIGNUP"
	ActionUserLogin              = "USER_LOGIN"
)

// DefaultLimit caps GET /audit-logs when no limit is given.
const DefaultLimit = 50

// MaxLimit is the largest page a client may request.
const MaxLimit = 500

// Filter is the query accepted by GET /audit-logs.
type Filter = models.AuditLogFilter
