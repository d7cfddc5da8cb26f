package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
	"github.com/workpulse/hrms-backend-go/internal/domain/dashboard"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

const (
	trendWindowDays    = 7
	recentActivityFeed = 20
)

type dashboardService struct {
	dashboardRepo dashboard.DashboardRepository
	employeeRepo  employee.EmployeeRepository
	payrollRepo   payroll.PayrollRepository
	activityRepo  activity.ActivityLogRepository
	loc           *time.Location
	now           func() time.Time
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
	activityRepo activity.ActivityLogRepository,
	loc *time.Location,
) dashboard.DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		employeeRepo:  employeeRepo,
		payrollRepo:   payrollRepo,
		activityRepo:  activityRepo,
		loc:           loc,
		now:           time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, actor user.Actor) (*dashboard.Snapshot, error) {
	if !user.Can(actor.Role, user.CapabilityDashboardViewAdmin) {
		return nil, user.ErrForbidden
	}

	today := dateutil.NewDay(s.now(), s.loc)

	totalEmployees, err := s.employeeRepo.CountWorking(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	presentToday, err := s.dashboardRepo.CountPresentOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count present employees: %w", err)
	}

	pendingLeave, err := s.dashboardRepo.CountPendingLeave(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending leave: %w", err)
	}

	approvedLeaveToday, err := s.dashboardRepo.CountApprovedLeaveCovering(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved leave: %w", err)
	}

	monthTotal, monthCount, err := s.payrollRepo.MonthTotals(ctx, today.MonthStart().Time())
	if err != nil {
		return nil, fmt.Errorf("failed to sum payroll: %w", err)
	}

	trend, err := s.dashboardRepo.AttendanceTrend(ctx, today.AddDays(-(trendWindowDays-1)), today)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance trend: %w", err)
	}

	activities, err := s.activityRepo.Recent(ctx, recentActivityFeed)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activities: %w", err)
	}

	return &dashboard.Snapshot{
		TotalEmployees:     totalEmployees,
		PresentToday:       presentToday,
		PendingLeaveCount:  pendingLeave,
		ApprovedLeaveToday: approvedLeaveToday,
		Payroll: dashboard.PayrollSummary{
			MonthTotal: monthTotal,
			MonthCount: monthCount,
		},
		AttendanceTrend:  trend,
		RecentActivities: activities,
	}, nil
}
