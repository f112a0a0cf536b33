package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/handler/http/response"
	analyticsService "github.com/brightops/peoplehub-backend-go/internal/service/analytics"
)

type AnalyticsHandler interface {
	GetAnnual(w http.ResponseWriter, r *http.Request)
	GetEmployeeStats(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService *analyticsService.AnalyticsService
}

func NewAnalyticsHandler(svc *analyticsService.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: svc}
}

func yearFromQuery(r *http.Request) (int, error) {
	y := r.URL.Query().Get("year")
	if y == "" {
		return time.Now().Year(), nil
	}
	return strconv.Atoi(y)
}

func (h *AnalyticsHandlerImpl) GetAnnual(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year, err := yearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	result, err := h.analyticsService.GetAnnualAnalytics(r.Context(), tenantID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *AnalyticsHandlerImpl) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year, err := yearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	stats, err := h.analyticsService.GetEmployeeStats(r.Context(), tenantID, year, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *AnalyticsHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year, err := yearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="leave-report-%d.csv"`, year))

	if err := h.analyticsService.ExportEmployeeStatsCSV(r.Context(), w, tenantID, year, time.Now().UTC()); err != nil {
		response.HandleError(w, err)
		return
	}
}

func (h *AnalyticsHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year, err := yearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="leave-report-%d.pdf"`, year))

	if err := h.analyticsService.ExportEmployeeStatsPDF(r.Context(), w, tenantID, year, time.Now().UTC()); err != nil {
		response.HandleError(w, err)
		return
	}
}
