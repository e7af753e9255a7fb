package target

import "errors"

var (
	ErrAnnualTargetNotFound  = errors.New("Annual target not found")
	ErrMonthlyTargetNotFound = errors.New("Monthly target not found")
	ErrNegativeTarget        = errors.New("Target value must not be negative")
)
