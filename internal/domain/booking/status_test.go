package booking

import (
	"testing"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
)

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusBooked {
		t.Errorf("InitialStatus = %q", InitialStatus())
	}
}

func TestCanCancel(t *testing.T) {
	if err := CanCancel(StatusBooked); err != nil {
		t.Errorf("booked should be cancellable: %v", err)
	}
	if err := CanCancel(StatusCancelled); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("cancelled should not be cancellable, got %v", err)
	}
}

func TestCanModify(t *testing.T) {
	if err := CanModify(StatusBooked); err != nil {
		t.Errorf("booked should be modifiable: %v", err)
	}
	if err := CanModify(StatusCancelled); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("cancelled should not be modifiable, got %v", err)
	}
}
