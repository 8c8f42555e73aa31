package reports

import (
	"regexp"
	"time"

	"github.com/sharath018/event-management-backend/internal/models"
)

// Report format constants
const (
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

const (
	MimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimePDF   = "application/pdf"
)

// ParticipantReport is everything a participants export renders.
type ParticipantReport struct {
	Event         models.Event
	Registrations []models.Registration
	GeneratedAt   time.Time
}

// Summary holds per-status tallies for a registration list.
type Summary struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
}

// Summarize counts registrations by status.
func Summarize(regs []models.Registration) Summary {
	s := Summary{Total: len(regs)}
	for _, r := range regs {
		switch r.Status {
		case models.StatusConfirmed:
			s.Confirmed++
		case models.StatusPending:
			s.Pending++
		case models.StatusRejected:
			s.Rejected++
		}
	}
	return s
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename builds "<event name>_Participants_<date>.<ext>" with whitespace runs collapsed to "_".
func Filename(eventName string, at time.Time, ext string) string {
	return whitespace.ReplaceAllString(eventName, "_") + "_Participants_" + at.Format(models.DateLayout) + "." + ext
}
