package activity

import "time"

// DailyActivity records how many units of a service a staff member
// delivered on a given day. Rows are unique per (staff, service, date)
// and written with upsert semantics.
type DailyActivity struct {
	ID        string
	StaffID   string
	ServiceID string
	Date      time.Time
	Delivered int
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	StaffName   *string
	ServiceName *string
}
