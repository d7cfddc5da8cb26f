package employee_dashboard

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type EmployeeDashboardRepository interface {
	// MonthAttendance returns the number of PRESENT days and the summed
	// duration in seconds for the employee in [monthStart, today].
	MonthAttendance(ctx context.Context, employeeID string, monthStart, today dateutil.Day) (presentDays int, totalSeconds int64, err error)
	// ActiveLeaves returns PENDING and APPROVED requests ending on or after
	// day, ordered by start date.
	ActiveLeaves(ctx context.Context, employeeID string, day dateutil.Day) ([]leave.LeaveRequest, error)
}
