package leave

import (
	"github.com/workpulse/hrms-backend-go/internal/pkg/validator"
)

var validTypes = []string{
	string(TypePaid),
	string(TypeSick),
	string(TypeUnpaid),
	string(TypeCasual),
	string(TypeEmergency),
}

var validStatuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

type CreateLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: PAID, SICK, UNPAID, CASUAL, EMERGENCY",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecisionRequest carries the optional admin comment on approve and reject.
type DecisionRequest struct {
	Comment string `json:"comment"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type MyLeaveFilter struct {
	Status string `json:"status"`
}

func (f *MyLeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) && !validator.IsInSlice(f.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PENDING, APPROVED, REJECTED, CANCELLED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveFilter struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) && !validator.IsInSlice(f.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PENDING, APPROVED, REJECTED, CANCELLED",
		})
	}

	if !validator.IsEmpty(f.Type) && !validator.IsInSlice(f.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: PAID, SICK, UNPAID, CASUAL, EMERGENCY",
		})
	}

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
