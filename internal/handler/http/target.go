package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/target"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type TargetHandler interface {
	SaveAnnual(w http.ResponseWriter, r *http.Request)
	GetAnnual(w http.ResponseWriter, r *http.Request)
	SaveMonthly(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
}

type TargetHandlerImpl struct {
	targetService target.Service
}

func NewTargetHandler(targetService target.Service) TargetHandler {
	return &TargetHandlerImpl{targetService: targetService}
}

// SaveAnnual implements TargetHandler.
func (h *TargetHandlerImpl) SaveAnnual(w http.ResponseWriter, r *http.Request) {
	var req target.SaveAnnualTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save annual target decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.targetService.SaveAnnualTarget(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Annual target saved", resp)
}

// GetAnnual implements TargetHandler.
func (h *TargetHandlerImpl) GetAnnual(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	staffID := query.Get("staff_id")
	serviceID := query.Get("service_id")
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	resp, err := h.targetService.GetAnnualTarget(r.Context(), staffID, serviceID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SaveMonthly implements TargetHandler.
func (h *TargetHandlerImpl) SaveMonthly(w http.ResponseWriter, r *http.Request) {
	var req target.SaveMonthlyTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save monthly target decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.targetService.SaveMonthlyTarget(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly target saved", resp)
}

// GetMonthly implements TargetHandler.
func (h *TargetHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	staffID := query.Get("staff_id")
	serviceID := query.Get("service_id")
	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	resp, err := h.targetService.GetMonthlyTarget(r.Context(), staffID, serviceID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
