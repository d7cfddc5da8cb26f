package employee_dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type employeeDashboardService struct {
	dashboardRepo  employee_dashboard.EmployeeDashboardRepository
	attendanceRepo attendance.AttendanceRepository
	payrollRepo    payroll.PayrollRepository
	loc            *time.Location
	now            func() time.Time
}

func NewEmployeeDashboardService(
	dashboardRepo employee_dashboard.EmployeeDashboardRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
	loc *time.Location,
) employee_dashboard.EmployeeDashboardService {
	return &employeeDashboardService{
		dashboardRepo:  dashboardRepo,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *employeeDashboardService) GetMyDashboard(ctx context.Context, actor user.Actor) (*employee_dashboard.Snapshot, error) {
	if !user.Can(actor.Role, user.CapabilityDashboardViewOwn) {
		return nil, user.ErrForbidden
	}

	today := dateutil.NewDay(s.now(), s.loc)
	monthStart := today.MonthStart()

	presentDays, totalSeconds, err := s.dashboardRepo.MonthAttendance(ctx, actor.EmployeeID, monthStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load month attendance: %w", err)
	}

	// Elapsed days this month, inclusive of today.
	totalDays := today.DaysSince(monthStart) + 1
	absentDays := totalDays - presentDays
	if absentDays < 0 {
		absentDays = 0
	}
	workHours := math.Round(float64(totalSeconds)/3600*100) / 100

	activeLeaves, err := s.dashboardRepo.ActiveLeaves(ctx, actor.EmployeeID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load active leaves: %w", err)
	}

	latestPayroll, err := s.payrollRepo.LatestByEmployee(ctx, actor.EmployeeID)
	if err != nil && err != payroll.ErrPayrollNotFound {
		return nil, fmt.Errorf("failed to load latest payroll: %w", err)
	}

	todayAttendance, err := s.attendanceRepo.GetByEmployeeAndDay(ctx, actor.EmployeeID, today)
	if err != nil && err != attendance.ErrAttendanceNotFound {
		return nil, fmt.Errorf("failed to load today's attendance: %w", err)
	}

	return &employee_dashboard.Snapshot{
		Month: employee_dashboard.MonthStats{
			PresentDays:    presentDays,
			AbsentDays:     absentDays,
			TotalWorkHours: workHours,
			TotalDays:      totalDays,
		},
		ActiveLeaves:    activeLeaves,
		LatestPayroll:   latestPayroll,
		TodayAttendance: todayAttendance,
	}, nil
}
