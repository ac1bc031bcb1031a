package booking

import (
	"context"

	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/timezone"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

type FetchSlotsInput struct {
	PreferredDate string
}

type FetchSlots struct {
	repo domain.Repository

	tz        string
	daysAhead int
	slotTimes []string
}

func NewFetchSlots(
	repo domain.Repository,
	tz string,
	daysAhead int,
	slotTimes []string,
) *FetchSlots {
	return &FetchSlots{
		repo:      repo,
		tz:        tz,
		daysAhead: daysAhead,
		slotTimes: slotTimes,
	}
}

// Execute lists open slots: the slot catalogue for the requested window
// minus every slot a non-cancelled appointment already occupies.
func (uc *FetchSlots) Execute(
	ctx context.Context,
	in FetchSlotsInput,
) ([]models.BookedSlot, error) {

	var dates []string
	if in.PreferredDate != "" {
		normalized, err := validators.NormalizeDate(in.PreferredDate)
		if err != nil {
			return nil, err
		}
		dates = []string{normalized}
	} else {
		dates = domain.DefaultDates(timezone.NowIn(uc.tz), uc.daysAhead)
	}

	all := domain.GenerateSlots(dates, uc.slotTimes)

	booked, err := uc.repo.ListBookedSlots(
		ctx,
		domain.ParseDate(dates[0]),
		domain.ParseDate(dates[len(dates)-1]),
	)
	if err != nil {
		return nil, err
	}

	taken := make(map[models.BookedSlot]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}

	available := make([]models.BookedSlot, 0, len(all))
	for _, slot := range all {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return available, nil
}
