package postgresql

import (
	"context"
	"fmt"

	"github.com/workpulse/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type employeeDashboardRepository struct {
	db *database.DB
}

func NewEmployeeDashboardRepository(db *database.DB) employee_dashboard.EmployeeDashboardRepository {
	return &employeeDashboardRepository{db: db}
}

// MonthAttendance implements employee_dashboard.EmployeeDashboardRepository.
func (r *employeeDashboardRepository) MonthAttendance(ctx context.Context, employeeID string, monthStart, today dateutil.Day) (int, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'PRESENT'),
			   COALESCE(SUM(duration_seconds), 0)
		FROM attendances
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
	`

	var presentDays int
	var totalSeconds int64
	err := q.QueryRow(ctx, query, employeeID, monthStart.String(), today.String()).Scan(&presentDays, &totalSeconds)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load month attendance: %w", err)
	}

	return presentDays, totalSeconds, nil
}

// ActiveLeaves implements employee_dashboard.EmployeeDashboardRepository.
func (r *employeeDashboardRepository) ActiveLeaves(ctx context.Context, employeeID string, day dateutil.Day) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date, end_date, reason,
			   status, decided_by, decided_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND end_date >= $2
		  AND status IN ('PENDING', 'APPROVED')
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, day.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query active leaves: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
