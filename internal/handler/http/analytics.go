package http

import (
	"net/http"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/analytics"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	RunRate(w http.ResponseWriter, r *http.Request)
	Consistency(w http.ResponseWriter, r *http.Request)
	BagelStreak(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// RunRate implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) RunRate(w http.ResponseWriter, r *http.Request) {
	fy, month, staffID, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}
	if staffID == nil {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}
	serviceID := r.URL.Query().Get("service_id")
	if serviceID == "" {
		response.BadRequest(w, "service_id is required", nil)
		return
	}

	resp, err := h.analyticsService.RunRate(r.Context(), *staffID, serviceID, fy, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Consistency implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Consistency(w http.ResponseWriter, r *http.Request) {
	fy, month, staffID, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}
	if staffID == nil {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}

	resp, err := h.analyticsService.Consistency(r.Context(), *staffID, fy, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// BagelStreak implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) BagelStreak(w http.ResponseWriter, r *http.Request) {
	fy, month, staffID, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}
	if staffID == nil {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}

	resp, err := h.analyticsService.BagelStreak(r.Context(), *staffID, fy, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
