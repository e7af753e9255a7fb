package staff

import (
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
)

// Staff entity.
type Staff struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string

	// HomeRegion scopes bank-holiday subtraction for this person.
	// Empty means "not configured"; callers fall back to holiday.DefaultRegion.
	HomeRegion holiday.Region

	IsAdmin  bool
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Region returns the staff member's holiday region, defaulting when unset.
func (s Staff) Region() holiday.Region {
	if s.HomeRegion.Valid() {
		return s.HomeRegion
	}
	return holiday.DefaultRegion
}
