package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

const exclusionViolationCode = "23P01"

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolationCode {
			return leave.ErrOverlappingLeave
		}
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Update(ctx context.Context, req *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			decided_by = $2,
			decided_at = $3,
			admin_comment = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		req.Status,
		req.DecidedBy,
		req.DecidedAt,
		req.AdminComment,
		req.ID,
	).Scan(&req.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	return nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
			   l.status, l.decided_by, l.decided_at, l.admin_comment,
			   l.created_at, l.updated_at,
			   e.full_name AS employee_name,
			   e.department AS employee_department
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.DecidedBy, &req.DecidedAt, &req.AdminComment,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeDepartment,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return &req, nil
}

// HasOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) HasOverlapping(ctx context.Context, employeeID string, start, end dateutil.Day) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var overlapping bool
	err := q.QueryRow(ctx, query, employeeID, start.String(), end.String()).Scan(&overlapping)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return overlapping, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string, filter leave.MyLeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT id, employee_id, type, start_date, end_date, reason,
			   status, decided_by, decided_at, admin_comment, created_at, updated_at
		FROM leave_requests
		WHERE ` + baseWhere + `
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.DecidedBy, &req.DecidedAt, &req.AdminComment,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND l.type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}
	// Window filter: keep requests whose range intersects [start, end].
	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND l.end_date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND l.start_date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	query := `
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
			   l.status, l.decided_by, l.decided_at, l.admin_comment,
			   l.created_at, l.updated_at,
			   e.full_name AS employee_name,
			   e.department AS employee_department
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE ` + baseWhere + `
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.DecidedBy, &req.DecidedAt, &req.AdminComment,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
