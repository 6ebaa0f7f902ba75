package handlers

import (
	"errors"
	"net/http"

	bookingRepo "github.com/Jprcko/canberra-boating-signoffs-sub000/database/repository/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookingHandler serves the booking funnel: sessions and committed bookings.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession opens a booking session for a date and group size.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var req struct {
		Date             string `json:"date" binding:"required"`
		ParticipantCount int    `json:"participantCount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid session request", err.Error())
		return
	}

	sessionID, session, err := h.Service.StartSession(c.Request.Context(), req.Date, req.ParticipantCount)
	if err != nil {
		if schedule.IsInvalidArgument(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid session request", err.Error())
			return
		}
		h.Logger.Error("failed to start booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "session": session})
}

// UpdateSession replaces the selection on an open session and re-quotes it.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var req struct {
		Offerings        []models.ServiceOffering `json:"offerings" binding:"required"`
		ParticipantCount int                      `json:"participantCount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid session update", err.Error())
		return
	}
	if hasBothPackages(req.Offerings) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid selection",
			"full package and group package cannot be combined")
		return
	}

	session, err := h.Service.UpdateSession(c.Request.Context(), sessionID, req.Offerings, req.ParticipantCount)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking session not found", "the session may have expired")
		case schedule.IsInvalidArgument(err):
			utils.JSONError(c, http.StatusBadRequest, "Invalid session update", err.Error())
		default:
			h.Logger.Error("failed to update booking session", zap.String("sessionID", sessionID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking session", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "session": session})
}

// ConfirmSession commits the session to a persisted booking.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	var req struct {
		SessionID    string               `json:"sessionID" binding:"required"`
		Participants []models.Participant `json:"participants"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid confirmation request", err.Error())
		return
	}

	confirmed, err := h.Service.ConfirmSession(c.Request.Context(), req.SessionID, req.Participants)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking session not found", "the session may have expired")
		case errors.Is(err, bookingRepo.ErrCapacityConflict):
			utils.JSONError(c, http.StatusConflict, "Date no longer available",
				"the remaining seats were taken while this session was open")
		case schedule.IsInvalidArgument(err):
			utils.JSONError(c, http.StatusBadRequest, "Invalid confirmation request", err.Error())
		default:
			h.Logger.Error("failed to confirm booking", zap.String("sessionID", req.SessionID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to confirm booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// CancelSession discards an open session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// GetBooking fetches a persisted booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	record, err := h.Service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", bookingID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// CancelBooking cancels a persisted booking and releases its seats.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if err := h.Service.CancelBooking(c.Request.Context(), bookingID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", bookingID)
			return
		}
		h.Logger.Error("failed to cancel booking", zap.String("bookingID", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
