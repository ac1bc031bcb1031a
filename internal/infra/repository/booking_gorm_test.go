package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbpkg "github.com/ayush27prasad/avatar-voice-agent-backend/internal/db"
	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
)

// These tests need a real postgres instance; they skip unless
// DATABASE_URL points at one.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connecting: %v", err)
	}

	for _, stmt := range dbpkg.Schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("applying schema: %v", err)
		}
	}

	t.Cleanup(func() {
		for _, table := range []string{"tool_events", "conversation_summaries", "appointments", "users"} {
			db.Exec("DELETE FROM " + table)
		}
	})

	return db
}

func TestSchemaReapplyIsIdempotent(t *testing.T) {
	db := testDB(t)

	for _, stmt := range dbpkg.Schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("second application failed: %v", err)
		}
	}
}

func TestUserDefaultsAndUniqueContact(t *testing.T) {
	db := testDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	user := &models.User{ContactNumber: "919876543210", Name: "Asha"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("id not generated")
	}

	dup := &models.User{ContactNumber: "919876543210"}
	if err := repo.CreateUser(ctx, dup); err == nil {
		t.Error("duplicate contact_number must violate the unique constraint")
	}
}

func TestAppointmentRequiredColumnsAndDefaultStatus(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// slot_date and slot_time are NOT NULL
	err := db.WithContext(ctx).Exec(
		"INSERT INTO appointments (contact_number) VALUES (?)", "919876543210",
	).Error
	if err == nil {
		t.Error("insert without slot columns must fail")
	}

	err = db.WithContext(ctx).Exec(
		"INSERT INTO appointments (contact_number, slot_date, slot_time) VALUES (?, ?, ?)",
		"919876543210", "2026-09-01", "14:00",
	).Error
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	var status string
	row := db.WithContext(ctx).Raw(
		"SELECT status FROM appointments WHERE contact_number = ?", "919876543210",
	).Row()
	if err := row.Scan(&status); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if status != string(domain.StatusBooked) {
		t.Errorf("default status = %q, want %q", status, domain.StatusBooked)
	}
}

func TestSummaryJSONBRoundtrip(t *testing.T) {
	db := testDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	in := &models.ConversationSummary{
		ContactNumber: "919876543210",
		Summary:       "Booked one appointment.",
		Preferences:   datatypes.NewJSONSlice([]string{"afternoon slots", "window seat"}),
		BookedSlots:   datatypes.NewJSONSlice([]models.BookedSlot{{Date: "2026-09-01", Time: "14:00"}}),
	}
	if err := repo.CreateSummary(ctx, in); err != nil {
		t.Fatalf("CreateSummary: %v", err)
	}

	out, err := repo.ListSummariesByContact(ctx, "919876543210", 1)
	if err != nil {
		t.Fatalf("ListSummariesByContact: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d summaries, want 1", len(out))
	}

	got := out[0]
	if len(got.Preferences) != 2 || got.Preferences[0] != "afternoon slots" {
		t.Errorf("preferences = %v", got.Preferences)
	}
	if len(got.BookedSlots) != 1 || got.BookedSlots[0] != in.BookedSlots[0] {
		t.Errorf("booked_slots = %v", got.BookedSlots)
	}
}

func TestSlotTakenRespectsStatusAndExclusion(t *testing.T) {
	db := testDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	ap := &models.Appointment{
		ContactNumber: "919876543210",
		SlotDate:      domain.ParseDate("2026-09-01"),
		SlotTime:      "14:00",
		Status:        string(domain.StatusBooked),
	}
	if err := repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	taken, err := repo.SlotTaken(ctx, ap.SlotDate, "14:00", uuid.Nil)
	if err != nil {
		t.Fatalf("SlotTaken: %v", err)
	}
	if !taken {
		t.Error("booked slot must report taken")
	}

	taken, err = repo.SlotTaken(ctx, ap.SlotDate, "14:00", ap.ID)
	if err != nil {
		t.Fatalf("SlotTaken: %v", err)
	}
	if taken {
		t.Error("slot must not conflict with the excluded appointment")
	}

	ap.Status = string(domain.StatusCancelled)
	if err := repo.UpdateAppointment(ctx, ap); err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}

	taken, err = repo.SlotTaken(ctx, ap.SlotDate, "14:00", uuid.Nil)
	if err != nil {
		t.Fatalf("SlotTaken: %v", err)
	}
	if taken {
		t.Error("cancelled slot must not report taken")
	}
}
