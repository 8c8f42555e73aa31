package registration

import "github.com/sharath018/event-management-backend/internal/validation"

// ============================
// 🎟 Register Request
type RegisterRequest struct {
	Name  string `json:"name" example:"Ada Lovelace"`
	Email string `json:"email" example:"ada@example.com"`
	Phone string `json:"phone" example:"555-123-4567"`
}

func (r *RegisterRequest) input() validation.RegistrationInput {
	return validation.RegistrationInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

// ============================
// 🔁 Status Request
type StatusRequest struct {
	Status string `json:"status" example:"rejected"`
}

// Error messages surfaced to clients.
const (
	msgEventNotFound        = "Event not found"
	msgRegistrationNotFound = "Registration not found"
	msgAlreadyRegistered    = "You are already registered for this event"
	msgEventFull            = "Event is at full capacity"
	msgInvalidStatus        = "Invalid status. Must be confirmed, pending, or rejected"
	msgConfirmAtCapacity    = "Cannot confirm - event is at capacity"
	msgEmailRequired        = "Email parameter is required"
	msgNotOwner             = "You can only cancel your own registration"
)
