package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
	"github.com/sarvasvaa/dairyops/internal/service/analytics"
	"github.com/sarvasvaa/dairyops/pkg/clients/dairyapi"
)

// CalendarHandler serves the month grid for the milk collection calendar.
type CalendarHandler struct {
	api    *dairyapi.Client
	loc    *time.Location
	logger *zap.Logger
}

// NewCalendarHandler constructs the calendar HTTP adapter. The location is
// the business timezone used to anchor day keys and "today".
func NewCalendarHandler(api *dairyapi.Client, loc *time.Location, logger *zap.Logger) *CalendarHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &CalendarHandler{api: api, loc: loc, logger: logger}
}

type calendarResponse struct {
	Month string              `json:"month"`
	Cells []analytics.DayCell `json:"cells"`
}

// MonthGrid returns the 42-cell grid for ?month=YYYY-MM, with per-day milk
// summaries and the caller-owned ?selected= date round-tripped into cells.
func (h *CalendarHandler) MonthGrid(c *gin.Context) {
	monthParam := c.DefaultQuery("month", time.Now().In(h.loc).Format("2006-01"))
	month, err := time.ParseInLocation("2006-01", monthParam, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be formatted as YYYY-MM"})
		return
	}

	collections, err := h.api.MilkCollections(c.Request.Context())
	if err != nil {
		h.logger.Error("backend call failed", zap.String("action", "fetch milk collections"), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "fetch milk collections failed"})
		return
	}

	grouped := analytics.GroupByDate(collections, func(m models.MilkCollection) string {
		return analytics.DayKey(m.Date)
	})

	cells := analytics.MonthGrid(month.Year(), month.Month(), grouped, analytics.MilkFields(), c.Query("selected"), h.loc)
	c.JSON(http.StatusOK, calendarResponse{Month: monthParam, Cells: cells})
}
