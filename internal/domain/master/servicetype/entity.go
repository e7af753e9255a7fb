package servicetype

import "time"

// ServiceType is a master-data row for a billable service the team
// delivers (e.g. Self Assessment return, bookkeeping period).
type ServiceType struct {
	ID       string
	Name     string
	Code     string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
