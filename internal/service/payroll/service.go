package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/validator"
)

type payrollService struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	recorder     activity.Recorder
	loc          *time.Location
	now          func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	recorder activity.Recorder,
	loc *time.Location,
) payroll.PayrollService {
	return &payrollService{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		recorder:     recorder,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *payrollService) CreatePayroll(ctx context.Context, actor user.Actor, req payroll.CreatePayrollRequest) (*payroll.Payroll, error) {
	if !user.Can(actor.Role, user.CapabilityPayrollManage) {
		return nil, user.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	month, err := payroll.ParseMonth(req.Month, s.loc)
	if err != nil {
		return nil, err
	}
	base, err := payroll.ParseAmount(req.BaseSalary)
	if err != nil {
		return nil, err
	}
	allowances, err := payroll.ParseAmount(req.Allowances)
	if err != nil {
		return nil, err
	}
	deductions, err := payroll.ParseAmount(req.Deductions)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if err == employee.ErrEmployeeNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	now := s.now()
	p := &payroll.Payroll{
		ID:           uuid.New().String(),
		EmployeeID:   req.EmployeeID,
		PayableMonth: month,
		BaseSalary:   base,
		Allowances:   allowances,
		Deductions:   deductions,
		Status:       payroll.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p.ComputeNet()

	if err := s.payrollRepo.Create(ctx, p); err != nil {
		if err == payroll.ErrPayrollExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create payroll: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActorID:    actor.ID,
		Action:     activity.ActionPayrollCreated,
		EntityType: "payroll",
		EntityID:   p.ID,
		Details: map[string]any{
			"employee_id": p.EmployeeID,
			"month":       month.Format("2006-01"),
			"net_salary":  p.NetSalary.String(),
		},
	})

	return p, nil
}

func (s *payrollService) UpdatePayroll(ctx context.Context, actor user.Actor, id string, req payroll.UpdatePayrollRequest) (*payroll.Payroll, error) {
	if !user.Can(actor.Role, user.CapabilityPayrollManage) {
		return nil, user.ErrForbidden
	}

	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if err == payroll.ErrPayrollNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get payroll: %w", err)
	}

	if req.BaseSalary != nil {
		base, err := payroll.ParseAmount(*req.BaseSalary)
		if err != nil {
			return nil, err
		}
		p.BaseSalary = base
	}
	if req.Allowances != nil {
		allowances, err := payroll.ParseAmount(*req.Allowances)
		if err != nil {
			return nil, err
		}
		p.Allowances = allowances
	}
	if req.Deductions != nil {
		deductions, err := payroll.ParseAmount(*req.Deductions)
		if err != nil {
			return nil, err
		}
		p.Deductions = deductions
	}
	if req.Status != nil {
		status := strings.ToUpper(*req.Status)
		if !validator.IsInSlice(status, []string{
			string(payroll.StatusPending), string(payroll.StatusProcessed), string(payroll.StatusPaid),
		}) {
			return nil, validator.ValidationErrors{{
				Field:   "status",
				Message: "status must be one of: PENDING, PROCESSED, PAID",
			}}
		}
		p.Status = payroll.Status(status)
	}

	p.ComputeNet()
	p.UpdatedAt = s.now()

	if err := s.payrollRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update payroll: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActorID:    actor.ID,
		Action:     activity.ActionPayrollUpdated,
		EntityType: "payroll",
		EntityID:   p.ID,
		Details: map[string]any{
			"employee_id": p.EmployeeID,
			"status":      string(p.Status),
			"net_salary":  p.NetSalary.String(),
		},
	})

	return p, nil
}

func (s *payrollService) GetMyPayrolls(ctx context.Context, actor user.Actor) ([]payroll.Payroll, error) {
	if !user.Can(actor.Role, user.CapabilityPayrollViewOwn) {
		return nil, user.ErrForbidden
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}

	return records, nil
}

func (s *payrollService) GetAllPayrolls(ctx context.Context, actor user.Actor, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	if !user.Can(actor.Role, user.CapabilityPayrollManage) {
		return nil, user.ErrForbidden
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}

	return records, nil
}
