package validators

import (
	"strings"
	"time"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func NormalizeDate(raw string) (string, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return parsed.Format(DateLayout), nil
}

// NormalizeTime accepts 24h ("14:00") and 12h ("2:00 PM") input and
// always returns the 24h form stored in appointments.slot_time.
func NormalizeTime(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	for _, layout := range []string{TimeLayout, "3:04 PM", "03:04 PM"} {
		if parsed, err := time.Parse(layout, strings.ToUpper(trimmed)); err == nil {
			return parsed.Format(TimeLayout), nil
		}
	}

	return "", httperr.ErrBusiness("invalid_time")
}
