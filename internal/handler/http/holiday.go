package http

import (
	"net/http"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.Service
}

func NewHolidayHandler(holidayService holiday.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// List implements HolidayHandler. Defaults to the current calendar
// year; an optional region narrows to one division.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	var region *holiday.Region
	if regionStr := query.Get("region"); regionStr != "" {
		r := holiday.Region(regionStr)
		region = &r
	}

	rows, err := h.holidayService.List(r.Context(), region, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Sync implements HolidayHandler. Admin-only; ?force=true bypasses the
// once-per-month gate.
func (h *HolidayHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	result, err := h.holidayService.Sync(r.Context(), force)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Skipped {
		response.SuccessWithMessage(w, "Already synced this month", result)
		return
	}
	response.SuccessWithMessage(w, "Bank holidays synced", result)
}
