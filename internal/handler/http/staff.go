package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.Service
}

func NewStaffHandler(staffService staff.Service) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member created", created)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	row, err := h.staffService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	rows, err := h.staffService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.staffService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated", updated)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	if err := h.staffService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member deleted", nil)
}
