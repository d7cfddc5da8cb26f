package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

const uniqueViolationCode = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in_time, check_out_time,
			duration_seconds, status, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.CheckInTime,
		att.CheckOutTime,
		att.DurationSeconds,
		att.Status,
		att.CreatedBy,
		att.UpdatedBy,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	return nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in_time = $1,
			check_out_time = $2,
			duration_seconds = $3,
			status = $4,
			updated_by = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.CheckInTime,
		att.CheckOutTime,
		att.DurationSeconds,
		att.Status,
		att.UpdatedBy,
		att.ID,
	).Scan(&att.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
			   a.duration_seconds, a.status, a.created_by, a.updated_by,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name,
			   e.department AS employee_department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.DurationSeconds, &att.Status, &att.CreatedBy, &att.UpdatedBy,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeDepartment,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return &att, nil
}

// GetByEmployeeAndDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day dateutil.Day) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, check_in_time, check_out_time,
			   duration_seconds, status, created_by, updated_by, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, day.String()).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.DurationSeconds, &att.Status, &att.CreatedBy, &att.UpdatedBy,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance by employee and day: %w", err)
	}

	return &att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	query := `
		SELECT id, employee_id, date, check_in_time, check_out_time,
			   duration_seconds, status, created_by, updated_by, created_at, updated_at
		FROM attendances
		WHERE ` + baseWhere + `
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
			&att.DurationSeconds, &att.Status, &att.CreatedBy, &att.UpdatedBy,
			&att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
			   a.duration_seconds, a.status, a.created_by, a.updated_by,
			   a.created_at, a.updated_at,
			   e.full_name AS employee_name,
			   e.department AS employee_department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere + `
		ORDER BY a.date DESC, e.full_name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
			&att.DurationSeconds, &att.Status, &att.CreatedBy, &att.UpdatedBy,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}
