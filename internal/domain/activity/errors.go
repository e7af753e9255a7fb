package activity

import "errors"

var (
	ErrActivityNotFound = errors.New("Daily activity not found")
	ErrNegativeCount    = errors.New("Delivered count must not be negative")
)
