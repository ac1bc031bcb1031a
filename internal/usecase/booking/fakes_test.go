package booking

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/session"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
	"github.com/google/uuid"
)

// ------------------------------
// repository fake
// ------------------------------

type fakeRepo struct {
	users        map[string]*models.User
	appointments []*models.Appointment
	summaries    []*models.ConversationSummary
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*models.User{}}
}

func (r *fakeRepo) GetUserByContact(_ context.Context, contact string) (*models.User, error) {
	if u, ok := r.users[contact]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ContactNumber] = user
	return nil
}

func (r *fakeRepo) UpdateUserName(_ context.Context, contact, name string) error {
	if u, ok := r.users[contact]; ok {
		u.Name = name
		u.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uuid.New()
	ap.CreatedAt = time.Now()
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) FindAppointment(
	_ context.Context,
	contact string,
	slotDate time.Time,
	slotTime string,
) (*models.Appointment, error) {
	for i := len(r.appointments) - 1; i >= 0; i-- {
		ap := r.appointments[i]
		if ap.ContactNumber == contact && ap.SlotDate.Equal(slotDate) && ap.SlotTime == slotTime {
			return ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) SlotTaken(
	_ context.Context,
	slotDate time.Time,
	slotTime string,
	excludeID uuid.UUID,
) (bool, error) {
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if excludeID != uuid.Nil && ap.ID == excludeID {
			continue
		}
		if ap.SlotDate.Equal(slotDate) && ap.SlotTime == slotTime {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ListAppointmentsByContact(_ context.Context, contact string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ContactNumber == contact {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SlotDate.Equal(out[j].SlotDate) {
			return out[i].SlotDate.Before(out[j].SlotDate)
		}
		return out[i].SlotTime < out[j].SlotTime
	})
	return out, nil
}

func (r *fakeRepo) ListBookedSlots(_ context.Context, from, to time.Time) ([]models.BookedSlot, error) {
	var out []models.BookedSlot
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.SlotDate.Before(from) || ap.SlotDate.After(to) {
			continue
		}
		out = append(out, models.BookedSlot{
			Date: ap.SlotDate.Format(validators.DateLayout),
			Time: ap.SlotTime,
		})
	}
	return out, nil
}

func (r *fakeRepo) CreateSummary(_ context.Context, summary *models.ConversationSummary) error {
	summary.ID = uuid.New()
	summary.CreatedAt = time.Now()
	r.summaries = append(r.summaries, summary)
	return nil
}

func (r *fakeRepo) ListSummariesByContact(
	_ context.Context,
	contact string,
	limit int,
) ([]models.ConversationSummary, error) {
	var out []models.ConversationSummary
	for i := len(r.summaries) - 1; i >= 0; i-- {
		if r.summaries[i].ContactNumber == contact {
			out = append(out, *r.summaries[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// ------------------------------
// session store fake
// ------------------------------

type fakeSessions struct {
	states map[string]*session.State
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{states: map[string]*session.State{}}
}

func (s *fakeSessions) Get(_ context.Context, sessionID string) (*session.State, error) {
	if state, ok := s.states[sessionID]; ok {
		copied := *state
		return &copied, nil
	}
	return &session.State{}, nil
}

func (s *fakeSessions) Save(_ context.Context, sessionID string, state *session.State) error {
	copied := *state
	s.states[sessionID] = &copied
	return nil
}

func (s *fakeSessions) Clear(_ context.Context, sessionID string) error {
	delete(s.states, sessionID)
	return nil
}

// ------------------------------
// audit + archive fakes
// ------------------------------

type fakeAudit struct {
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

func (a *fakeAudit) last() audit.Event {
	if len(a.events) == 0 {
		return audit.Event{}
	}
	return a.events[len(a.events)-1]
}

type fakeArchiver struct {
	archived []*models.ConversationSummary
}

func (a *fakeArchiver) ArchiveSummary(_ context.Context, summary *models.ConversationSummary) error {
	a.archived = append(a.archived, summary)
	return nil
}
