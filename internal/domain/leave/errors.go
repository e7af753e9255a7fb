package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("Staff leave not found")
	ErrInvalidDateRange = errors.New("Leave end date before start date")
)
