package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/ayush27prasad/avatar-voice-agent-backend/internal/domain/booking"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httperr"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/httpresp"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/validators"
)

type SummaryHandler struct {
	repo domain.Repository
}

func NewSummaryHandler(repo domain.Repository) *SummaryHandler {
	return &SummaryHandler{repo: repo}
}

func (h *SummaryHandler) ListByContact(c *gin.Context) {
	contact, err := validators.NormalizePhone(c.Param("contact"))
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		httperr.BadRequest(c, "invalid_phone", "Invalid contact number.")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			httperr.BadRequest(c, "invalid_limit", "Limit must be a non-negative number.")
			return
		}
	}

	summaries, err := h.repo.ListSummariesByContact(c.Request.Context(), contact, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_summaries", "Could not load conversation summaries.")
		return
	}

	httpresp.List(c, summaries)
}
