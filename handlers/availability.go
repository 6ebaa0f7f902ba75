package handlers

import (
	"errors"
	"net/http"
	"time"

	availabilityRepo "github.com/Jprcko/canberra-boating-signoffs-sub000/database/repository/availability"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/models"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the administrative surface for per-date
// operating configuration.
type AvailabilityHandler struct {
	Repo availabilityRepo.AvailabilityRepository
	Loc  *time.Location
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(repo availabilityRepo.AvailabilityRepository, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{Repo: repo, Loc: loc}
}

func validDate(s string, loc *time.Location) bool {
	_, err := time.ParseInLocation(schedule.DateLayout, s, loc)
	return err == nil
}

// UpsertAvailabilityHandler creates or replaces availability records.
func (h *AvailabilityHandler) UpsertAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Records []models.AvailabilityRecord `json:"records" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", err.Error())
		return
	}
	for _, rec := range req.Records {
		if !validDate(rec.Date, h.Loc) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload",
				"date must be YYYY-MM-DD: "+rec.Date)
			return
		}
		if rec.Capacity < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload",
				"capacity must not be negative on "+rec.Date)
			return
		}
	}

	if err := h.Repo.UpsertMany(c.Request.Context(), req.Records); err != nil {
		logger.Error("failed to upsert availability", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability saved", "count": len(req.Records)})
}

// ListAvailabilityHandler returns the raw records for a date range.
func (h *AvailabilityHandler) ListAvailabilityHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if !validDate(from, h.Loc) || !validDate(to, h.Loc) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid range", "from and to must be YYYY-MM-DD")
		return
	}

	records, err := h.Repo.FetchRange(c.Request.Context(), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// DeleteAvailabilityHandler removes one date's record, closing the date.
func (h *AvailabilityHandler) DeleteAvailabilityHandler(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date, h.Loc) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected YYYY-MM-DD")
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), date); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "No availability record for date", date)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability removed", "date": date})
}
