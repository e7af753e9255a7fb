package response

import (
	"errors"
	"net/http"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/activity"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/rule"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/servicetype"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/target"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/workingdays"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Master data errors
	case errors.Is(err, servicetype.ErrServiceTypeNotFound):
		NotFound(w, "Service type not found")
	case errors.Is(err, servicetype.ErrCodeExists):
		Conflict(w, "Service code already exists")
	case errors.Is(err, rule.ErrInvalidRuleSet):
		BadRequest(w, err.Error(), nil)

	// Activity domain errors
	case errors.Is(err, activity.ErrActivityNotFound):
		NotFound(w, "Daily activity not found")
	case errors.Is(err, activity.ErrNegativeCount):
		BadRequest(w, "Delivered count must not be negative", nil)

	// Target domain errors
	case errors.Is(err, target.ErrAnnualTargetNotFound):
		NotFound(w, "Annual target not found")
	case errors.Is(err, target.ErrMonthlyTargetNotFound):
		NotFound(w, "Monthly target not found")
	case errors.Is(err, target.ErrNegativeTarget):
		BadRequest(w, "Target value must not be negative", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Staff leave not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Leave end date before start date", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrInvalidRegion):
		BadRequest(w, "Unknown bank-holiday region", nil)
	case errors.Is(err, holiday.ErrFeedUnavailable):
		BadGateway(w, "Bank-holiday feed unavailable")

	// Working-day errors
	case errors.Is(err, workingdays.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
