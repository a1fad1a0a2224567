package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/stekloline/analytics-api/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	exportService *service.ExportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, exportService *service.ExportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
		logger:        logger,
	}
}

// @Summary Sales report
// @Description Aggregates orders into sales totals, completion rates, per-configuration slices and a daily revenue series.
// @Tags Reports
// @Produce json
// @Param companyId query string true "Tenant scope" format(uuid)
// @Param startDate query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Param configuration query string false "Restrict to one configuration kind"
// @Success 200 {object} domain.SalesReportDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/sales [get]
func (h *ReportHandler) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetSalesReport(r.Context(), reportRequest(r))
	if err != nil {
		h.logError("sales", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// @Summary Configuration report
// @Description Ranks configuration, color and glass thickness popularity and averages the entered dimensions.
// @Tags Reports
// @Produce json
// @Param companyId query string true "Tenant scope" format(uuid)
// @Param startDate query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Param configuration query string false "Restrict to one configuration kind"
// @Success 200 {object} domain.ConfigurationReportDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/configurations [get]
func (h *ReportHandler) GetConfigurationReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetConfigurationReport(r.Context(), reportRequest(r))
	if err != nil {
		h.logError("configurations", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// @Summary Financial report
// @Description Estimates revenue, cost and margin totals overall and per configuration kind.
// @Tags Reports
// @Produce json
// @Param companyId query string true "Tenant scope" format(uuid)
// @Param startDate query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Param configuration query string false "Restrict to one configuration kind"
// @Success 200 {object} domain.FinancialReportDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/financial [get]
func (h *ReportHandler) GetFinancialReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetFinancialReport(r.Context(), reportRequest(r))
	if err != nil {
		h.logError("financial", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// @Summary Production report
// @Description Distributes projects across workflow statuses with dwell time averages and weekly intake.
// @Tags Reports
// @Produce json
// @Param companyId query string true "Tenant scope" format(uuid)
// @Param startDate query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Param configuration query string false "Restrict to one configuration kind"
// @Success 200 {object} domain.ProductionReportDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/production [get]
func (h *ReportHandler) GetProductionReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetProductionReport(r.Context(), reportRequest(r))
	if err != nil {
		h.logError("production", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// @Summary Customer report
// @Description Groups orders by customer with revenue rankings; supports substring search on customer name.
// @Tags Reports
// @Produce json
// @Param companyId query string true "Tenant scope" format(uuid)
// @Param startDate query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Param configuration query string false "Restrict to one configuration kind"
// @Param search query string false "Case-insensitive substring filter on customer name"
// @Success 200 {object} domain.CustomerReportDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/customers [get]
func (h *ReportHandler) GetCustomerReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetCustomerReport(r.Context(), reportRequest(r))
	if err != nil {
		h.logError("customers", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// @Summary Flat export
// @Description Returns the denormalized project rows as JSON for a frontend table.
// @Tags Reports
// @Produce json
// @Param companyId query string true "Tenant scope" format(uuid)
// @Param startDate query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Param configuration query string false "Restrict to one configuration kind"
// @Param reportType query string false "Label recorded in the export payload"
// @Success 200 {object} domain.ExportDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/export [get]
func (h *ReportHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.GetExport(r.Context(), reportRequest(r))
	if err != nil {
		h.logError("export", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, export)
}

// @Summary Download export as CSV
// @Description Renders the flat export as a UTF-8 CSV attachment.
// @Tags Reports
// @Produce text/csv
// @Param companyId query string true "Tenant scope" format(uuid)
// @Param startDate query string false "Inclusive lower bound on creation date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on creation date (YYYY-MM-DD)"
// @Param configuration query string false "Restrict to one configuration kind"
// @Param reportType query string false "Label used in the file name"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/export/download [get]
func (h *ReportHandler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.GetExport(r.Context(), reportRequest(r))
	if err != nil {
		h.logError("export download", err)
		respondServiceError(w, err)
		return
	}

	data, err := h.exportService.RenderCSV(export)
	if err != nil {
		h.logError("export download", err)
		respondServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", export.ReportType, export.GeneratedAt.UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *ReportHandler) logError(report string, err error) {
	if service.IsClientError(err) {
		h.logger.Debug("rejected report request", zap.String("report", report), zap.Error(err))
		return
	}
	h.logger.Error("failed to build report", zap.String("report", report), zap.Error(err))
}
