package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("Staff member not found")
	ErrEmailExists   = errors.New("Email already registered")
)
