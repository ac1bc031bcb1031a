package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
	"github.com/google/uuid"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var _ booking.Repository = (*BookingGormRepository)(nil)

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByContact(
	ctx context.Context,
	contactNumber string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("contact_number = ?", contactNumber).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *BookingGormRepository) UpdateUserName(
	ctx context.Context,
	contactNumber string,
	name string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("contact_number = ?", contactNumber).
		Updates(map[string]any{
			"name":       name,
			"updated_at": time.Now().UTC(),
		}).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) FindAppointment(
	ctx context.Context,
	contactNumber string,
	slotDate time.Time,
	slotTime string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"contact_number = ? AND slot_date = ? AND slot_time = ?",
			contactNumber, slotDate, slotTime,
		).
		Order("created_at DESC").
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) SlotTaken(
	ctx context.Context,
	slotDate time.Time,
	slotTime string,
	excludeID uuid.UUID,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"slot_date = ? AND slot_time = ? AND status <> ?",
			slotDate, slotTime, string(booking.StatusCancelled),
		)

	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) ListAppointmentsByContact(
	ctx context.Context,
	contactNumber string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("contact_number = ?", contactNumber).
		Order("slot_date ASC").
		Order("slot_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.BookedSlot, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("slot_date", "slot_time").
		Where(
			"slot_date >= ? AND slot_date <= ? AND status <> ?",
			from, to, string(booking.StatusCancelled),
		).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	slots := make([]models.BookedSlot, 0, len(aps))
	for _, ap := range aps {
		slots = append(slots, models.BookedSlot{
			Date: ap.SlotDate.Format(validators.DateLayout),
			Time: ap.SlotTime,
		})
	}
	return slots, nil
}

// --------------------------------------------------
// Conversation summaries
// --------------------------------------------------

func (r *BookingGormRepository) CreateSummary(
	ctx context.Context,
	summary *models.ConversationSummary,
) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *BookingGormRepository) ListSummariesByContact(
	ctx context.Context,
	contactNumber string,
	limit int,
) ([]models.ConversationSummary, error) {

	q := r.db.WithContext(ctx).
		Where("contact_number = ?", contactNumber).
		Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var summaries []models.ConversationSummary
	if err := q.Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}
