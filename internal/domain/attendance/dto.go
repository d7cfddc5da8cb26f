package attendance

import (
	"github.com/workpulse/hrms-backend-go/internal/pkg/validator"
)

// CheckInRequest and CheckOutRequest carry an optional calendar date.
// An empty date means "today" in the application timezone.
type CheckInRequest struct {
	Date string `json:"date"`
}

type CheckOutRequest struct {
	Date string `json:"date"`
}

type MyAttendanceFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.StartDate) && !validator.IsValidDate(f.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(f.EndDate) && !validator.IsValidDate(f.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.StartDate) && !validator.IsValidDate(f.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(f.EndDate) && !validator.IsValidDate(f.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(f.Status) && !validator.IsInSlice(f.Status, []string{string(StatusPresent), string(StatusAbsent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PRESENT, ABSENT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
