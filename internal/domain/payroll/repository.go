package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRepository interface {
	// Create inserts a new record. It returns ErrPayrollExists when a record
	// for the same employee and payable month already exists.
	Create(ctx context.Context, p *Payroll) error
	Update(ctx context.Context, p *Payroll) error
	GetByID(ctx context.Context, id string) (*Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	LatestByEmployee(ctx context.Context, employeeID string) (*Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)
	// MonthTotals sums net salaries and counts records with status PROCESSED
	// or PAID for the month starting at monthStart.
	MonthTotals(ctx context.Context, monthStart time.Time) (total decimal.Decimal, count int, err error)
}
