package postgresql

import (
	"context"
	"fmt"

	"github.com/workpulse/hrms-backend-go/internal/domain/dashboard"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountPresentOn implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPresentOn(ctx context.Context, day dateutil.Day) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE date = $1
		  AND status = 'PRESENT'
	`

	var count int
	if err := q.QueryRow(ctx, query, day.String()).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present employees: %w", err)
	}

	return count, nil
}

// CountPendingLeave implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeave(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE status = 'PENDING'
	`

	var count int
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave: %w", err)
	}

	return count, nil
}

// CountApprovedLeaveCovering implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountApprovedLeaveCovering(ctx context.Context, day dateutil.Day) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE status = 'APPROVED'
		  AND start_date <= $1
		  AND end_date >= $1
	`

	var count int
	if err := q.QueryRow(ctx, query, day.String()).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count approved leave: %w", err)
	}

	return count, nil
}

// AttendanceTrend implements dashboard.DashboardRepository.
func (r *dashboardRepository) AttendanceTrend(ctx context.Context, from, to dateutil.Day) ([]dashboard.TrendPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD'),
			   COUNT(*),
			   COALESCE(SUM(duration_seconds), 0)
		FROM attendances
		WHERE date >= $1
		  AND date <= $2
		GROUP BY date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance trend: %w", err)
	}
	defer rows.Close()

	var points []dashboard.TrendPoint
	for rows.Next() {
		var point dashboard.TrendPoint
		var totalSeconds int64
		if err := rows.Scan(&point.Date, &point.PresentCount, &totalSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan trend point: %w", err)
		}
		point.TotalHours = float64(totalSeconds) / 3600
		points = append(points, point)
	}

	return points, rows.Err()
}
