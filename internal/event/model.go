package event

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/sharath018/event-management-backend/internal/validation"
)

// ============================
// 🟡 Create / Update Event Request
type EventRequest struct {
	Name        string `json:"name" example:"Go Meetup"`
	Description string `json:"description" example:"An evening of lightning talks about Go."`
	Date        string `json:"date" example:"2030-01-15"`
	// Capacity accepts a JSON number or a numeric string.
	Capacity json.RawMessage `json:"capacity" swaggertype:"integer" example:"100"`
}

func (r *EventRequest) input() validation.EventInput {
	return validation.EventInput{
		Name:        r.Name,
		Description: r.Description,
		Date:        strings.TrimSpace(r.Date),
		Capacity:    parseCapacity(r.Capacity),
	}
}

// parseCapacity truncates numeric input toward zero. Anything unparseable
// becomes 0 and fails validation.
func parseCapacity(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
	} else {
		s = string(raw)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}
