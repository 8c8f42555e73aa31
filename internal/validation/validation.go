// Package validation holds the pure payload checks for events,
// registrations, announcements and signups. Each check returns nil when the
// payload is valid, otherwise a field -> message map surfaced verbatim to
// clients.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sharath018/event-management-backend/internal/models"
)

// Errors maps a field name to a human-readable message.
type Errors map[string]string

const MaxCapacity = 10000

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// EventInput is the shape validated for event create/update.
type EventInput struct {
	Name        string
	Description string
	Date        string
	Capacity    int
}

// Event checks an event payload. today is truncated to a calendar date
// before comparison.
func Event(in EventInput, today time.Time) Errors {
	errs := Errors{}

	if trimmedLen(in.Name) < 3 {
		errs["name"] = "Event name must be at least 3 characters"
	}
	if trimmedLen(in.Description) < 10 {
		errs["description"] = "Description must be at least 10 characters"
	}

	if strings.TrimSpace(in.Date) == "" {
		errs["date"] = "Event date is required"
	} else if d, err := ParseDate(in.Date); err != nil {
		errs["date"] = "Event date must be a valid date (YYYY-MM-DD)"
	} else if d.Before(StartOfDay(today)) {
		errs["date"] = "Event date cannot be in the past"
	}

	switch {
	case in.Capacity < 1:
		errs["capacity"] = "Capacity must be at least 1"
	case in.Capacity > MaxCapacity:
		errs["capacity"] = "Capacity cannot exceed 10,000"
	}

	return orNil(errs)
}

// RegistrationInput is the shape validated for event registration.
type RegistrationInput struct {
	Name  string
	Email string
	Phone string
}

func Registration(in RegistrationInput) Errors {
	errs := Errors{}

	if trimmedLen(in.Name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	} else if !ValidEmail(in.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(in.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(NormalizePhone(in.Phone)) != 10 {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}

	return orNil(errs)
}

func Announcement(message string) Errors {
	if trimmedLen(message) < 5 {
		return Errors{"message": "Announcement must be at least 5 characters"}
	}
	return nil
}

// SignupInput is the shape validated for account creation.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

func Signup(in SignupInput) Errors {
	errs := Errors{}

	if trimmedLen(in.Name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}
	if !ValidEmail(in.Email) {
		errs["email"] = "Valid email is required"
	}
	if utf8.RuneCountInString(in.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return orNil(errs)
}

// ValidEmail applies the local@domain.tld pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// NormalizeEmail is the dedup key for emails.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, strings.TrimSpace(s))
}

// StartOfDay zeroes the time of day, keeping the calendar date of t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func orNil(errs Errors) Errors {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
