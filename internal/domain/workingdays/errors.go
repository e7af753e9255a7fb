package workingdays

import "errors"

var ErrInvalidMonth = errors.New("Month must be between 1 and 12")
