package holiday

import "errors"

var (
	ErrInvalidRegion   = errors.New("Invalid bank holiday region")
	ErrFeedUnavailable = errors.New("Bank holiday feed unavailable")
)
