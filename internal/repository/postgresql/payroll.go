package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, payable_month, base_salary, allowances,
			deductions, net_salary, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.EmployeeID,
		p.PayableMonth,
		p.BaseSalary,
		p.Allowances,
		p.Deductions,
		p.NetSalary,
		p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return payroll.ErrPayrollExists
		}
		return fmt.Errorf("failed to create payroll: %w", err)
	}

	return nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET base_salary = $1,
			allowances = $2,
			deductions = $3,
			net_salary = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.BaseSalary,
		p.Allowances,
		p.Deductions,
		p.NetSalary,
		p.Status,
		p.ID,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to update payroll: %w", err)
	}

	return nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.payable_month, p.base_salary, p.allowances,
			   p.deductions, p.net_salary, p.status, p.created_at, p.updated_at,
			   e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PayableMonth, &p.BaseSalary, &p.Allowances,
		&p.Deductions, &p.NetSalary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("failed to get payroll by ID: %w", err)
	}

	return &p, nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, payable_month, base_salary, allowances,
			   deductions, net_salary, status, created_at, updated_at
		FROM payrolls
		WHERE employee_id = $1
		ORDER BY payable_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PayableMonth, &p.BaseSalary, &p.Allowances,
			&p.Deductions, &p.NetSalary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, rows.Err()
}

// LatestByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) LatestByEmployee(ctx context.Context, employeeID string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, payable_month, base_salary, allowances,
			   deductions, net_salary, status, created_at, updated_at
		FROM payrolls
		WHERE employee_id = $1
		ORDER BY payable_month DESC
		LIMIT 1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.ID, &p.EmployeeID, &p.PayableMonth, &p.BaseSalary, &p.Allowances,
		&p.Deductions, &p.NetSalary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("failed to get latest payroll: %w", err)
	}

	return &p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND to_char(p.payable_month, 'YYYY-MM') = $%d", argIdx)
		args = append(args, filter.Month)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT p.id, p.employee_id, p.payable_month, p.base_salary, p.allowances,
			   p.deductions, p.net_salary, p.status, p.created_at, p.updated_at,
			   e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE ` + baseWhere + `
		ORDER BY p.payable_month DESC, e.full_name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PayableMonth, &p.BaseSalary, &p.Allowances,
			&p.Deductions, &p.NetSalary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, rows.Err()
}

// MonthTotals implements payroll.PayrollRepository.
func (r *payrollRepository) MonthTotals(ctx context.Context, monthStart time.Time) (decimal.Decimal, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(net_salary), 0), COUNT(*)
		FROM payrolls
		WHERE payable_month = $1
		  AND status IN ('PROCESSED', 'PAID')
	`

	var total decimal.Decimal
	var count int
	if err := q.QueryRow(ctx, query, monthStart).Scan(&total, &count); err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("failed to sum payrolls: %w", err)
	}

	return total, count, nil
}
