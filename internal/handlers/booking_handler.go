package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/dto"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httpresp"
	ucBooking "github.com/ayush27prasad/avatar-voice-agent-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	fetchSlotsUC *ucBooking.FetchSlots
	bookUC       *ucBooking.BookAppointment
	retrieveUC   *ucBooking.RetrieveAppointments
	cancelUC     *ucBooking.CancelAppointment
	modifyUC     *ucBooking.ModifyAppointment
}

func NewBookingHandler(
	fetchSlotsUC *ucBooking.FetchSlots,
	bookUC *ucBooking.BookAppointment,
	retrieveUC *ucBooking.RetrieveAppointments,
	cancelUC *ucBooking.CancelAppointment,
	modifyUC *ucBooking.ModifyAppointment,
) *BookingHandler {
	return &BookingHandler{
		fetchSlotsUC: fetchSlotsUC,
		bookUC:       bookUC,
		retrieveUC:   retrieveUC,
		cancelUC:     cancelUC,
		modifyUC:     modifyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Name          string `json:"name"`
	Notes         string `json:"notes"`
}

type CancelAppointmentRequest struct {
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Reason        string `json:"reason"`
}

type ModifyAppointmentRequest struct {
	OriginalDate  string `json:"original_date" binding:"required"`
	OriginalTime  string `json:"original_time" binding:"required"`
	NewDate       string `json:"new_date" binding:"required"`
	NewTime       string `json:"new_time" binding:"required"`
	ContactNumber string `json:"contact_number"`
}

// ======================================================
// SLOTS
// ======================================================

func (h *BookingHandler) ListSlots(c *gin.Context) {
	slots, err := h.fetchSlotsUC.Execute(c.Request.Context(), ucBooking.FetchSlotsInput{
		PreferredDate: c.Query("date"),
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_fetch_slots", "Could not fetch available slots.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// BOOK
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	sessionID := c.Param("sid")

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		SessionID:     sessionID,
		Date:          req.Date,
		Time:          req.Time,
		ContactNumber: req.ContactNumber,
		Name:          req.Name,
		Notes:         req.Notes,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not book the appointment.")
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListAppointments(c *gin.Context) {
	sessionID := c.Param("sid")

	aps, err := h.retrieveUC.Execute(c.Request.Context(), ucBooking.RetrieveAppointmentsInput{
		SessionID:     sessionID,
		ContactNumber: c.Query("contact_number"),
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	sessionID := c.Param("sid")

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ucBooking.CancelAppointmentInput{
		SessionID:     sessionID,
		Date:          req.Date,
		Time:          req.Time,
		ContactNumber: req.ContactNumber,
		Reason:        req.Reason,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Could not cancel the appointment.")
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// MODIFY
// ======================================================

func (h *BookingHandler) Modify(c *gin.Context) {
	sessionID := c.Param("sid")

	var req ModifyAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.modifyUC.Execute(c.Request.Context(), ucBooking.ModifyAppointmentInput{
		SessionID:     sessionID,
		OriginalDate:  req.OriginalDate,
		OriginalTime:  req.OriginalTime,
		NewDate:       req.NewDate,
		NewTime:       req.NewTime,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_modify_appointment", "Could not modify the appointment.")
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}
