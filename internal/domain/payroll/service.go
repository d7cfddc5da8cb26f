package payroll

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/domain/user"
)

type PayrollService interface {
	CreatePayroll(ctx context.Context, actor user.Actor, req CreatePayrollRequest) (*Payroll, error)
	UpdatePayroll(ctx context.Context, actor user.Actor, id string, req UpdatePayrollRequest) (*Payroll, error)
	GetMyPayrolls(ctx context.Context, actor user.Actor) ([]Payroll, error)
	GetAllPayrolls(ctx context.Context, actor user.Actor, filter PayrollFilter) ([]Payroll, error)
}
