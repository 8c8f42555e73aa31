package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)

func validEvent() EventInput {
	return EventInput{
		Name:        "Tech Hackathon",
		Description: "A 24-hour coding marathon",
		Date:        "2026-11-01",
		Capacity:    100,
	}
}

func TestEvent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EventInput)
		field  string
		msg    string
	}{
		{"valid", func(*EventInput) {}, "", ""},
		{"short name", func(e *EventInput) { e.Name = " ab " }, "name", "Event name must be at least 3 characters"},
		{"short description", func(e *EventInput) { e.Description = "too short" }, "description", "Description must be at least 10 characters"},
		{"missing date", func(e *EventInput) { e.Date = "" }, "date", "Event date is required"},
		{"garbage date", func(e *EventInput) { e.Date = "next week" }, "date", "Event date must be a valid date (YYYY-MM-DD)"},
		{"past date", func(e *EventInput) { e.Date = "2026-10-16" }, "date", "Event date cannot be in the past"},
		{"zero capacity", func(e *EventInput) { e.Capacity = 0 }, "capacity", "Capacity must be at least 1"},
		{"huge capacity", func(e *EventInput) { e.Capacity = 10001 }, "capacity", "Capacity cannot exceed 10,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validEvent()
			tt.mutate(&in)
			errs := Event(in, today)
			if tt.field == "" {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestEventDateTodayIsAllowed(t *testing.T) {
	in := validEvent()
	in.Date = "2026-10-17"
	assert.Nil(t, Event(in, today))
}

func TestEventCapacityBounds(t *testing.T) {
	in := validEvent()
	in.Capacity = 1
	assert.Nil(t, Event(in, today))
	in.Capacity = MaxCapacity
	assert.Nil(t, Event(in, today))
}

func TestRegistration(t *testing.T) {
	assert.Nil(t, Registration(RegistrationInput{Name: "Al", Email: "al@x.com", Phone: "(555) 123-4567"}))

	errs := Registration(RegistrationInput{Name: "A", Email: "not-an-email", Phone: "12345"})
	assert.Equal(t, Errors{
		"name":  "Name must be at least 2 characters",
		"email": "Please enter a valid email address",
		"phone": "Please enter a valid 10-digit phone number",
	}, errs)

	errs = Registration(RegistrationInput{Name: "Al"})
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Phone number is required", errs["phone"])
}

func TestAnnouncement(t *testing.T) {
	assert.Nil(t, Announcement("Doors open at 9"))
	assert.Equal(t, Errors{"message": "Announcement must be at least 5 characters"}, Announcement("   hi   "))
}

func TestSignup(t *testing.T) {
	assert.Nil(t, Signup(SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret"}))

	errs := Signup(SignupInput{Name: "Ada", Email: "ada@example.com", Password: "12345"})
	assert.Equal(t, Errors{"password": "Password must be at least 6 characters"}, errs)

	errs = Signup(SignupInput{Name: "A", Email: "ada@", Password: strings.Repeat("x", 6)})
	assert.Len(t, errs, 2)
	assert.Equal(t, "Valid email is required", errs["email"])
}

func TestNormalizers(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
	assert.Equal(t, "5551234567", NormalizePhone("+(555) 123-4567"))
}
