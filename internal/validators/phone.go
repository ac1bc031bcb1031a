package validators

import (
	"strings"
	"unicode"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
)

const minPhoneDigits = 7

// NormalizePhone strips formatting and keeps digits only, so the same
// number always correlates across users, appointments and summaries.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, ch := range raw {
		if unicode.IsDigit(ch) {
			b.WriteRune(ch)
		}
	}

	digits := b.String()
	if len(digits) < minPhoneDigits {
		return "", httperr.ErrBusiness("invalid_phone")
	}
	return digits, nil
}
