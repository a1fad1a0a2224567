package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stekloline/analytics-api/internal/domain"
	"github.com/stekloline/analytics-api/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError sends the flat error envelope every endpoint uses
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResponse{Error: message})
}

// respondServiceError maps a service error to the wire: request problems
// surface with their own message as a 400, everything else becomes a
// generic 500 so internals never leak to clients.
func respondServiceError(w http.ResponseWriter, err error) {
	if service.IsClientError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, "failed to build report")
}

// reportRequest collects the recognized query parameters of the report
// endpoints.
func reportRequest(r *http.Request) *domain.ReportRequest {
	q := r.URL.Query()
	return &domain.ReportRequest{
		CompanyID:     q.Get("companyId"),
		StartDate:     q.Get("startDate"),
		EndDate:       q.Get("endDate"),
		Configuration: q.Get("configuration"),
		Search:        q.Get("search"),
		ReportType:    q.Get("reportType"),
	}
}
