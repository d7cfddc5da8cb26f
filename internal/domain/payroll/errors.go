package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrPayrollExists   = errors.New("payroll for this employee and month already exists")
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
	ErrInvalidAmount   = errors.New("amount must be a non-negative decimal")
)
