package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/rule"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/servicetype"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateServiceType(w http.ResponseWriter, r *http.Request)
	GetServiceType(w http.ResponseWriter, r *http.Request)
	ListServiceTypes(w http.ResponseWriter, r *http.Request)
	UpdateServiceType(w http.ResponseWriter, r *http.Request)
	DeleteServiceType(w http.ResponseWriter, r *http.Request)

	ListRules(w http.ResponseWriter, r *http.Request)
	ReplaceRules(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	serviceTypeService servicetype.Service
	ruleService        rule.Service
}

func NewMasterHandler(serviceTypeService servicetype.Service, ruleService rule.Service) MasterHandler {
	return &MasterHandlerImpl{
		serviceTypeService: serviceTypeService,
		ruleService:        ruleService,
	}
}

// CreateServiceType implements MasterHandler.
func (h *MasterHandlerImpl) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	var req servicetype.SaveServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create service type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.serviceTypeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service type created", created)
}

// GetServiceType implements MasterHandler.
func (h *MasterHandlerImpl) GetServiceType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Service type ID is required", nil)
		return
	}

	row, err := h.serviceTypeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// ListServiceTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListServiceTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	rows, err := h.serviceTypeService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// UpdateServiceType implements MasterHandler.
func (h *MasterHandlerImpl) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Service type ID is required", nil)
		return
	}

	var req servicetype.SaveServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update service type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.serviceTypeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service type updated", updated)
}

// DeleteServiceType implements MasterHandler.
func (h *MasterHandlerImpl) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Service type ID is required", nil)
		return
	}

	if err := h.serviceTypeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service type deactivated", nil)
}

// ListRules implements MasterHandler.
func (h *MasterHandlerImpl) ListRules(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ruleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// ReplaceRules implements MasterHandler.
func (h *MasterHandlerImpl) ReplaceRules(w http.ResponseWriter, r *http.Request) {
	var req rule.ReplaceRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Replace rules decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rows, err := h.ruleService.Replace(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Distribution rules replaced", rows)
}
