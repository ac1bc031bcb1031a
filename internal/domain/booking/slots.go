package booking

import (
	"fmt"
	"time"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

const DefaultDaysAhead = 7

var DefaultSlotTimes = []string{"10:00", "14:00", "16:00"}

// DefaultDates returns the bookable calendar window starting today.
func DefaultDates(now time.Time, daysAhead int) []string {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	dates := make([]string, 0, daysAhead)
	for offset := 0; offset < daysAhead; offset++ {
		dates = append(dates, now.AddDate(0, 0, offset).Format(validators.DateLayout))
	}
	return dates
}

// GenerateSlots expands the date window into the full slot catalogue.
func GenerateSlots(dates []string, times []string) []models.BookedSlot {
	if len(times) == 0 {
		times = DefaultSlotTimes
	}

	slots := make([]models.BookedSlot, 0, len(dates)*len(times))
	for _, day := range dates {
		for _, tv := range times {
			slots = append(slots, models.BookedSlot{Date: day, Time: tv})
		}
	}
	return slots
}

// ParseDate converts a normalized YYYY-MM-DD string into the date value
// stored in appointments.slot_date. Input must already be normalized.
func ParseDate(normalized string) time.Time {
	t, _ := time.Parse(validators.DateLayout, normalized)
	return t
}

func FormatSlot(slotDate, slotTime string) string {
	return fmt.Sprintf("%s at %s", slotDate, slotTime)
}
