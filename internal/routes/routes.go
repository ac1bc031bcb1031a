package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/archive"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/audit"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/config"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/handlers"
	infraRepo "github.com/ayush27prasad/avatar-voice-agent-backend/internal/infra/repository"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/middleware"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/session"
	ucBooking "github.com/ayush27prasad/avatar-voice-agent-backend/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var archiver ucBooking.Archiver
	if cfg.ArchiveEnabled() {
		archiver = archive.NewS3Archiver(cfg)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	identifyUC := ucBooking.NewIdentifyUser(bookingRepo, sessions, auditDispatcher)
	userDataUC := ucBooking.NewGetUserData(bookingRepo, sessions, auditDispatcher)

	fetchSlotsUC := ucBooking.NewFetchSlots(
		bookingRepo,
		cfg.Timezone,
		cfg.SlotDaysAhead,
		cfg.SlotTimes,
	)

	bookUC := ucBooking.NewBookAppointment(bookingRepo, sessions, auditDispatcher)
	retrieveUC := ucBooking.NewRetrieveAppointments(bookingRepo, sessions, auditDispatcher)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, sessions, auditDispatcher)
	modifyUC := ucBooking.NewModifyAppointment(bookingRepo, sessions, auditDispatcher)

	endUC := ucBooking.NewEndConversation(bookingRepo, sessions, auditDispatcher, archiver)

	// ======================================================
	// HANDLERS
	// ======================================================
	sessionHandler := handlers.NewSessionHandler(identifyUC, userDataUC, endUC)
	bookingHandler := handlers.NewBookingHandler(
		fetchSlotsUC,
		bookUC,
		retrieveUC,
		cancelUC,
		modifyUC,
	)
	summaryHandler := handlers.NewSummaryHandler(bookingRepo)

	// ======================================================
	// API (JSON) — agent workers only
	// ======================================================
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/slots", bookingHandler.ListSlots)

		api.POST("/sessions/:sid/identify", sessionHandler.Identify)
		api.GET("/sessions/:sid/user", sessionHandler.GetUser)
		api.POST("/sessions/:sid/end", sessionHandler.End)

		api.POST("/sessions/:sid/appointments", bookingHandler.Book)
		api.GET("/sessions/:sid/appointments", bookingHandler.ListAppointments)
		api.POST("/sessions/:sid/appointments/cancel", bookingHandler.Cancel)
		api.POST("/sessions/:sid/appointments/modify", bookingHandler.Modify)

		api.GET("/contacts/:contact/summaries", summaryHandler.ListByContact)
	}
}
