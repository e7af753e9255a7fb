package servicetype

import "errors"

var (
	ErrServiceTypeNotFound = errors.New("Service type not found")
	ErrCodeExists          = errors.New("Service code already exists")
)
