package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gearbook/models"
	"gearbook/services/availability"
	"gearbook/utils"
)

// AvailabilityHandler frames the availability engine over HTTP.
type AvailabilityHandler struct {
	Svc          availability.AvailabilityService
	Location     *time.Location
	MaxRangeDays int
	Logger       *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, loc *time.Location, maxRangeDays int, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Location: loc, MaxRangeDays: maxRangeDays, Logger: logger}
}

// GetAvailability serves the single read endpoint in its three shapes:
// single date, single date + checkSlot, and date range.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	q := availability.Query{
		Date:       c.Query("date"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		CheckSlot:  c.Query("checkSlot"),
		MechanicID: c.Query("mechanic"),
	}

	validated, err := availability.ValidateQuery(q, h.Location, h.MaxRangeDays)
	if err != nil {
		var reqErr *availability.RequestError
		if errors.As(err, &reqErr) {
			utils.JSONError(c, http.StatusBadRequest, reqErr.Message)
			return
		}
		h.internalError(c, err)
		return
	}

	ctx := c.Request.Context()
	switch {
	case validated.IsRange:
		h.serveRange(c, validated)
	case validated.HasCheck:
		result, report, err := h.Svc.CheckSlot(ctx, validated)
		if err != nil {
			h.internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"availabilityCheck": gin.H{
				"date":              result.Date,
				"requestedSlot":     result.RequestedSlot,
				"appointmentsCount": result.ConflictCount,
				"blocked":           result.Blocked,
			},
			"fullUnavailableSlots": models.NewDaySlots(report),
		})
	default:
		report, err := h.Svc.DayReport(ctx, validated.Date, validated.MechanicID)
		if err != nil {
			h.internalError(c, err)
			return
		}
		day := models.NewDaySlots(report)
		c.JSON(http.StatusOK, gin.H{
			"success":                  true,
			"date":                     day.Date,
			"unavailableSlots":         day.UnavailableSlots,
			"manuallyUnavailableSlots": day.ManuallyUnavailableSlots,
			"scheduledSlots":           day.ScheduledSlots,
		})
	}
}

// serveRange degrades per date: a failed fetch marks only that date's
// entry, the rest of the range still returns.
func (h *AvailabilityHandler) serveRange(c *gin.Context, q availability.ValidatedQuery) {
	results, err := h.Svc.RangeReport(c.Request.Context(), q.StartDate, q.EndDate, q.MechanicID)
	if err != nil {
		h.internalError(c, err)
		return
	}

	byDate := make(map[string]any, len(results))
	for date, res := range results {
		if res.Err != nil {
			h.Logger.Warn("range date failed", zap.String("date", date), zap.Error(res.Err))
			byDate[date] = gin.H{"error": "availability unavailable for this date"}
			continue
		}
		byDate[date] = models.NewDaySlots(res.Report)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dateRange": gin.H{
			"startDate": q.StartDate,
			"endDate":   q.EndDate,
		},
		"unavailableSlotsByDate": byDate,
	})
}

func (h *AvailabilityHandler) internalError(c *gin.Context, err error) {
	h.Logger.Error("availability request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error. Please try again later.")
}
