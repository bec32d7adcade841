package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
	"github.com/sarvasvaa/dairyops/internal/service/reportgen"
	"github.com/sarvasvaa/dairyops/pkg/clients/dairyapi"
)

// ReportsHandler proxies the backend summary reports and generates the
// downloadable PDF report from the assembled document tree.
type ReportsHandler struct {
	api    *dairyapi.Client
	logger *zap.Logger
}

// NewReportsHandler constructs the reports HTTP adapter.
func NewReportsHandler(api *dairyapi.Client, logger *zap.Logger) *ReportsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportsHandler{api: api, logger: logger}
}

// Summary proxies the backend's monthly summary for ?month=YYYY-MM.
func (h *ReportsHandler) Summary(c *gin.Context) {
	body, err := h.api.SummaryReport(c.Request.Context(), c.Query("month"))
	if err != nil {
		h.logger.Error("summary report fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "fetch summary report failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// Weekly proxies the backend's weekly breakdown for ?week=YYYY-Www.
func (h *ReportsHandler) Weekly(c *gin.Context) {
	body, err := h.api.WeeklyReport(c.Request.Context(), c.Query("week"))
	if err != nil {
		h.logger.Error("weekly report fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "fetch weekly report failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// Generate fetches the period's record sets, assembles the document tree
// and streams the rendered PDF as an attachment.
func (h *ReportsHandler) Generate(c *gin.Context) {
	var period models.Period
	if err := c.ShouldBindJSON(&period); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period and date are required"})
		return
	}

	data, err := h.api.ReportData(c.Request.Context(), period)
	if err != nil {
		h.logger.Error("report data fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "fetch report data failed"})
		return
	}

	doc, err := reportgen.Assemble(data, period)
	if err != nil {
		h.logger.Warn("report assembly rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := reportgen.Render(doc)
	if err != nil {
		h.logger.Error("pdf rendering failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render report failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+reportgen.DownloadName(period)+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
