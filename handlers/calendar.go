package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/booking"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/services/schedule"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the annotated booking calendar.
type CalendarHandler struct {
	Service booking.BookingService
	Loc     *time.Location
	Horizon int // months
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(svc booking.BookingService, loc *time.Location, horizonMonths int) *CalendarHandler {
	return &CalendarHandler{Service: svc, Loc: loc, Horizon: horizonMonths}
}

// GetCalendarHandler returns one cell per date in the requested range,
// defaulting to the rolling booking window. The participants query decides
// the per-cell bookable flag; status and remaining seats are independent of it.
func (h *CalendarHandler) GetCalendarHandler(c *gin.Context) {
	logger := utils.GetLogger()

	now := time.Now().In(h.Loc)
	from := now
	to := now.AddDate(0, h.Horizon, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation(schedule.DateLayout, raw, h.Loc)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid from date", "expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation(schedule.DateLayout, raw, h.Loc)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid to date", "expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	participants := 1
	if raw := c.Query("participants"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid participant count", "expected a positive integer")
			return
		}
		participants = parsed
	}

	days, err := h.Service.Calendar(c.Request.Context(), from, to, participants)
	if err != nil {
		if schedule.IsInvalidArgument(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid calendar request", err.Error())
			return
		}
		logger.Error("failed to build calendar", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load calendar", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
