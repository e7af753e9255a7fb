package target

import "time"

// MonthlyTarget entity, keyed (staff, service, month, year).
// Month is the calendar month (1-12); Year is the calendar year the
// month falls in, not the financial-year label.
type MonthlyTarget struct {
	ID        string
	StaffID   string
	ServiceID string
	Month     time.Month
	Year      int
	Value     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnnualTarget entity, keyed (staff, financial year start).
type AnnualTarget struct {
	ID      string
	StaffID string
	// Year labels the financial year by its starting calendar year,
	// e.g. 2025 for FY 2025/26 (April 2025 - March 2026).
	Year  int
	Value int

	CreatedAt time.Time
	UpdatedAt time.Time
}
