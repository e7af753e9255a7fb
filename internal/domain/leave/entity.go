package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual     LeaveType = "annual"
	LeaveTypeSick       LeaveType = "sick"
	LeaveTypeCompassion LeaveType = "compassionate"
	LeaveTypeUnpaid     LeaveType = "unpaid"
	LeaveTypeOther      LeaveType = "other"
)

// StaffLeave entity. Ranges are inclusive on both ends and may span
// month boundaries.
type StaffLeave struct {
	ID        string
	StaffID   string
	StartDate time.Time
	EndDate   time.Time
	Type      LeaveType

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationship (for responses)
	StaffName *string
}
