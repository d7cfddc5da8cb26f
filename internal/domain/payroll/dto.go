package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workpulse/hrms-backend-go/internal/pkg/validator"
)

type CreatePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	BaseSalary string `json:"base_salary"`
	Allowances string `json:"allowances"`
	Deductions string `json:"deductions"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	}

	if validator.IsEmpty(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParseMonth normalizes a "2006-01" input to the first day of that month.
func ParseMonth(input string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", input, loc)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc), nil
}

// ParseAmount parses a decimal amount, treating empty input as zero.
func ParseAmount(input string) (decimal.Decimal, error) {
	if input == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(input)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

type UpdatePayrollRequest struct {
	BaseSalary *string `json:"base_salary"`
	Allowances *string `json:"allowances"`
	Deductions *string `json:"deductions"`
	Status     *string `json:"status"`
}

type PayrollFilter struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	Status     string `json:"status"`
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) && !validator.IsInSlice(f.Status, []string{
		string(StatusPending), string(StatusProcessed), string(StatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PENDING, PROCESSED, PAID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
