package handlers

import (
	"net/http"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves running price totals for a selection.
type QuoteHandler struct {
	Service booking.BookingService
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(svc booking.BookingService) *QuoteHandler {
	return &QuoteHandler{Service: svc}
}

// QuoteRequest is the payload for a pricing evaluation.
type QuoteRequest struct {
	Offerings        []models.ServiceOffering `json:"offerings" binding:"required"`
	ParticipantCount int                      `json:"participantCount" binding:"required"`
}

// hasBothPackages reports the mutually-exclusive package combination the
// pricing engine treats as a precondition violation.
func hasBothPackages(selection []models.ServiceOffering) bool {
	var full, group bool
	for _, s := range selection {
		switch s {
		case models.FullPackage:
			full = true
		case models.GroupPackage:
			group = true
		}
	}
	return full && group
}

// GetQuoteHandler computes {totalPrice, totalDiscount} for a selection.
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote request", err.Error())
		return
	}
	if hasBothPackages(req.Offerings) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid selection",
			"full package and group package cannot be combined")
		return
	}

	quote, err := h.Service.QuoteSelection(req.Offerings, req.ParticipantCount)
	if err != nil {
		if schedule.IsInvalidArgument(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid quote request", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute quote", err.Error())
		return
	}

	c.JSON(http.StatusOK, quote)
}
