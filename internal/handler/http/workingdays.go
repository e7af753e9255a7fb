package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/workingdays"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
	calculator "github.com/teamtrack/teamtrack-backend-go/internal/service/workingdays"
)

type WorkingDaysHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type WorkingDaysHandlerImpl struct {
	calc *calculator.Calculator
}

func NewWorkingDaysHandler(calc *calculator.Calculator) WorkingDaysHandler {
	return &WorkingDaysHandlerImpl{calc: calc}
}

// Get implements WorkingDaysHandler. Query parameters: year (the
// financial-year start year), month (calendar month number), and an
// optional staff_id for the leave-adjusted count.
func (h *WorkingDaysHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	fy, month, staffID, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.calc.Compute(r.Context(), workingdays.Query{
		FinancialYear: fy,
		Month:         month,
		StaffID:       staffID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parsePeriodQuery reads the year/month/staff_id triple shared by the
// working-day and analytics endpoints.
func parsePeriodQuery(w http.ResponseWriter, r *http.Request) (workingdays.FinancialYear, time.Month, *string, bool) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil || !validator.IsValidFinancialYearStart(year) {
		response.BadRequest(w, "year must be the financial-year start year", nil)
		return workingdays.FinancialYear{}, 0, nil, false
	}
	monthNum, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return workingdays.FinancialYear{}, 0, nil, false
	}

	var staffID *string
	if s := query.Get("staff_id"); s != "" {
		staffID = &s
	}

	return workingdays.FinancialYearStarting(year), time.Month(monthNum), staffID, true
}
