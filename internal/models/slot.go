package models

// BookedSlot is one calendar slot as stored inside
// conversation_summaries.booked_slots and in session state.
type BookedSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
