package booking

import "github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusBooked
}

func CanCancel(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanModify(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
