package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, full_name, email, department, position,
			   employment_status, join_date, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Code, &e.FullName, &e.Email, &e.Department, &e.Position,
		&e.EmploymentStatus, &e.JoinDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return &e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, full_name, email, department, position,
			   employment_status, join_date, created_at, updated_at
		FROM employees
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.Code, &e.FullName, &e.Email, &e.Department, &e.Position,
			&e.EmploymentStatus, &e.JoinDate, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// CountWorking implements employee.EmployeeRepository.
func (r *employeeRepository) CountWorking(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM employees
		WHERE employment_status IN ('ACTIVE', 'ON_LEAVE')
	`

	var count int
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
