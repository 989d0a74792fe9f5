package handler

import (
	"fmt"
	"net/http"
	"time"

	appreport "github.com/barrovivo/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves staff sales report downloads
type ReportHandler struct {
	BaseHandler
	reports *appreport.Service
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(reports *appreport.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Sales handles GET /usuario/reportes/ventas. Query parameters: formato
// (pdf or xlsx, default xlsx), desde and hasta as YYYY-MM-DD bounds.
// The staff guard runs in middleware.
func (h *ReportHandler) Sales(c *gin.Context) {
	format := appreport.Format(c.DefaultQuery("formato", string(appreport.FormatXLSX)))

	var from, to time.Time
	if raw := c.Query("desde"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid desde date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if raw := c.Query("hasta"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid hasta date, expected YYYY-MM-DD")
			return
		}
		// inclusive end date
		to = parsed.AddDate(0, 0, 1)
	}

	export, err := h.reports.ExportSales(c.Request.Context(), from, to, format)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
