package workingdays

import (
	"fmt"
	"time"
)

// FinancialYear is the April-March period labeled by its start and end
// calendar years, e.g. {2025, 2026} for April 2025 - March 2026.
type FinancialYear struct {
	Start int
	End   int
}

// FinancialYearOf returns the financial year containing t.
func FinancialYearOf(t time.Time) FinancialYear {
	if t.Month() >= time.April {
		return FinancialYear{Start: t.Year(), End: t.Year() + 1}
	}
	return FinancialYear{Start: t.Year() - 1, End: t.Year()}
}

// FinancialYearStarting returns the financial year that begins in April
// of the given calendar year.
func FinancialYearStarting(year int) FinancialYear {
	return FinancialYear{Start: year, End: year + 1}
}

// CalendarYear resolves which calendar year the given financial-year
// month falls in: April-December belong to the start year,
// January-March to the end year.
func (fy FinancialYear) CalendarYear(month time.Month) int {
	if month >= time.April {
		return fy.Start
	}
	return fy.End
}

func (fy FinancialYear) String() string {
	return fmt.Sprintf("%d/%02d", fy.Start, fy.End%100)
}

// Query asks for the working days in one month of a financial year,
// optionally adjusted for a single staff member's leave.
type Query struct {
	FinancialYear FinancialYear
	Month         time.Month
	StaffID       *string
}

// Result is derived, never persisted.
//
// Invariant: 0 <= WorkingDaysUpToToday <= TeamWorkingDays.
type Result struct {
	TeamWorkingDays      int `json:"team_working_days"`
	StaffWorkingDays     int `json:"staff_working_days"`
	WorkingDaysUpToToday int `json:"working_days_up_to_today"`

	// Fallback is set when a holiday or leave lookup failed and the
	// counts degraded to the base weekday walk. Surfaced to the UI as a
	// non-blocking advisory, never as a hard error.
	Fallback bool `json:"fallback,omitempty"`
}
