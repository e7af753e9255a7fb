package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.SaveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff leave recorded", created)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	row, err := h.leaveService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// List implements LeaveHandler. Defaults to the current calendar year
// when no window is given.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	now := time.Now().UTC()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	if fromStr := query.Get("from"); fromStr != "" {
		parsed, ok := validator.IsValidDate(fromStr)
		if !ok {
			response.BadRequest(w, "from must be a YYYY-MM-DD date", nil)
			return
		}
		from = parsed
	}
	if toStr := query.Get("to"); toStr != "" {
		parsed, ok := validator.IsValidDate(toStr)
		if !ok {
			response.BadRequest(w, "to must be a YYYY-MM-DD date", nil)
			return
		}
		to = parsed
	}

	rows, err := h.leaveService.List(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// ListByStaff implements LeaveHandler.
func (h *LeaveHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	rows, err := h.leaveService.ListByStaff(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Update implements LeaveHandler.
func (h *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	var req leave.SaveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.leaveService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff leave updated", updated)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff leave deleted", nil)
}
