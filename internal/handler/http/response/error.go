package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/domain/auth"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee"
	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
	"github.com/workpulse/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and access errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Date errors
	case errors.Is(err, dateutil.ErrInvalidDate):
		BadRequest(w, "Invalid date format, expected YYYY-MM-DD", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		// The wrapped form carries the existing check-in time.
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for this date")
	case errors.Is(err, attendance.ErrNoCheckInFound):
		NotFound(w, "No check-in found for this date. Please check in first.")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "You have an overlapping leave request")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be APPROVED or REJECTED", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollExists):
		Conflict(w, "Payroll for this employee and month already exists")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrInvalidAmount):
		BadRequest(w, "Amounts must be non-negative decimals", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
