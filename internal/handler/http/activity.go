package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/activity"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type ActivityHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ActivityHandlerImpl struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) ActivityHandler {
	return &ActivityHandlerImpl{activityService: activityService}
}

// Upsert implements ActivityHandler.
func (h *ActivityHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req activity.UpsertActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert activity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	row, err := h.activityService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// Get implements ActivityHandler.
func (h *ActivityHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Activity ID is required", nil)
		return
	}

	row, err := h.activityService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// List implements ActivityHandler.
func (h *ActivityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter activity.Filter
	if staffID := query.Get("staff_id"); staffID != "" {
		filter.StaffID = &staffID
	}
	if serviceID := query.Get("service_id"); serviceID != "" {
		filter.ServiceID = &serviceID
	}
	if fromStr := query.Get("from"); fromStr != "" {
		from, ok := validator.IsValidDate(fromStr)
		if !ok {
			response.BadRequest(w, "from must be a YYYY-MM-DD date", nil)
			return
		}
		filter.From = &from
	}
	if toStr := query.Get("to"); toStr != "" {
		to, ok := validator.IsValidDate(toStr)
		if !ok {
			response.BadRequest(w, "to must be a YYYY-MM-DD date", nil)
			return
		}
		filter.To = &to
	}

	rows, err := h.activityService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Delete implements ActivityHandler.
func (h *ActivityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Activity ID is required", nil)
		return
	}

	if err := h.activityService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily activity deleted", nil)
}
