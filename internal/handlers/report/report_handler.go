// internal/handlers/report/report_handler.go
package report

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "rentsmart-service/internal/domain/report"
	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/pkg/response"
	"rentsmart-service/internal/pkg/tabular"
	reportsvc "rentsmart-service/internal/service/report"
	sheetsvc "rentsmart-service/internal/service/sheets"
)

const (
	ReportFinancial = "financial"
	ReportVehicles  = "vehicles"
	ReportCustomers = "customers"
)

type ReportHandler struct {
	reports *reportsvc.ReportService
	sheets  *sheetsvc.SheetsService
	logger  *zap.Logger
}

func NewReportHandler(reports *reportsvc.ReportService, sheets *sheetsvc.SheetsService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, sheets: sheets, logger: logger}
}

// parseDateRange reads optional start/end query params. Plain dates and full
// timestamps are both accepted.
func parseDateRange(c *gin.Context) (domain.DateRange, error) {
	var dr domain.DateRange
	parse := func(raw string) (*time.Time, error) {
		if raw == "" {
			return nil, nil
		}
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return &t, nil
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	start, err := parse(c.Query("start"))
	if err != nil {
		return dr, err
	}
	end, err := parse(c.Query("end"))
	if err != nil {
		return dr, err
	}
	dr.Start, dr.End = start, end
	return dr, nil
}

func (h *ReportHandler) Financial(c *gin.Context) {
	dr, err := parseDateRange(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid date filter", err)
		return
	}
	summary, err := h.reports.Financial(c.Request.Context(), dr)
	if err != nil {
		h.respondReportErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, "financial report", summary)
}

func (h *ReportHandler) VehiclePerformance(c *gin.Context) {
	dr, err := parseDateRange(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid date filter", err)
		return
	}
	stats, err := h.reports.VehiclePerformance(c.Request.Context(), dr)
	if err != nil {
		h.respondReportErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, "vehicle performance report", stats)
}

func (h *ReportHandler) CustomerBehavior(c *gin.Context) {
	dr, err := parseDateRange(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid date filter", err)
		return
	}
	stats, err := h.reports.CustomerBehavior(c.Request.Context(), dr)
	if err != nil {
		h.respondReportErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, "customer behavior report", stats)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reports.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		h.respondReportErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, "dashboard stats", stats)
}

func (h *ReportHandler) Finances(c *gin.Context) {
	summary, err := h.reports.Finances(c.Request.Context())
	if err != nil {
		h.respondReportErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, "finance summary", summary)
}

type exportRequest struct {
	Format string `json:"format" binding:"required,oneof=csv sheets"`
}

// Export renders a report as CSV (downloaded) or pushes it to the configured
// spreadsheet under a dated sheet name.
func (h *ReportHandler) Export(c *gin.Context) {
	reportType := c.Param("type")

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid export request", err)
		return
	}

	dr, err := parseDateRange(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid date filter", err)
		return
	}

	records, err := h.reportRecords(c, reportType, dr)
	if err != nil {
		if errors.Is(err, xerrors.ErrUnknownCollection) {
			response.NotFound(c, "unknown report type")
			return
		}
		h.respondReportErr(c, err)
		return
	}

	switch req.Format {
	case "csv":
		text, err := tabular.Encode(records)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to render report", err)
			return
		}
		filename := "report_" + reportType + "_" + time.Now().Format("2006-01-02") + ".csv"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", []byte(text))

	case "sheets":
		sheetName := "Report_" + reportType + "_" + time.Now().Format("2006-01-02")
		if err := h.sheets.Push(c.Request.Context(), sheetName, records); err != nil {
			if errors.Is(err, xerrors.ErrSheetsConfigMissing) {
				response.Error(c, http.StatusPreconditionFailed,
					"please set your spreadsheet API key and sheet ID in settings", err)
				return
			}
			h.logger.Error("report export to sheets failed",
				zap.String("type", reportType), zap.Error(err))
			response.Error(c, http.StatusBadGateway, "export failed", err)
			return
		}
		response.Success(c, http.StatusOK, "report exported to sheet "+sheetName, gin.H{
			"sheet": sheetName,
			"rows":  len(records),
		})
	}
}

func (h *ReportHandler) reportRecords(c *gin.Context, reportType string, dr domain.DateRange) ([]*tabular.Record, error) {
	ctx := c.Request.Context()
	switch reportType {
	case ReportFinancial:
		summary, err := h.reports.Financial(ctx, dr)
		if err != nil {
			return nil, err
		}
		return summary.Records(), nil
	case ReportVehicles:
		stats, err := h.reports.VehiclePerformance(ctx, dr)
		if err != nil {
			return nil, err
		}
		records := make([]*tabular.Record, 0, len(stats))
		for _, row := range stats {
			records = append(records, row.Record())
		}
		return records, nil
	case ReportCustomers:
		stats, err := h.reports.CustomerBehavior(ctx, dr)
		if err != nil {
			return nil, err
		}
		records := make([]*tabular.Record, 0, len(stats))
		for _, row := range stats {
			records = append(records, row.Record())
		}
		return records, nil
	default:
		return nil, xerrors.ErrUnknownCollection
	}
}

func (h *ReportHandler) respondReportErr(c *gin.Context, err error) {
	if errors.Is(err, xerrors.ErrNoData) {
		response.NotFound(c, "no data to report on")
		return
	}
	h.logger.Error("report generation failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, "failed to generate report", err)
}
