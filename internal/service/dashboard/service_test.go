package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
	"github.com/workpulse/hrms-backend-go/internal/domain/dashboard"
	"github.com/workpulse/hrms-backend-go/internal/domain/employee"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type fakeDashboardRepo struct {
	presentToday  int
	pendingLeave  int
	approvedToday int
	trend         []dashboard.TrendPoint
	trendFrom     string
	trendTo       string
}

func (f *fakeDashboardRepo) CountPresentOn(_ context.Context, _ dateutil.Day) (int, error) {
	return f.presentToday, nil
}

func (f *fakeDashboardRepo) CountPendingLeave(_ context.Context) (int, error) {
	return f.pendingLeave, nil
}

func (f *fakeDashboardRepo) CountApprovedLeaveCovering(_ context.Context, _ dateutil.Day) (int, error) {
	return f.approvedToday, nil
}

func (f *fakeDashboardRepo) AttendanceTrend(_ context.Context, from, to dateutil.Day) ([]dashboard.TrendPoint, error) {
	f.trendFrom = from.String()
	f.trendTo = to.String()
	return f.trend, nil
}

type fakeEmployeeRepo struct {
	working int
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) CountWorking(_ context.Context) (int, error) {
	return f.working, nil
}

type fakePayrollRepo struct {
	payroll.PayrollRepository
	monthTotal decimal.Decimal
	monthCount int
}

func (f *fakePayrollRepo) MonthTotals(_ context.Context, _ time.Time) (decimal.Decimal, int, error) {
	return f.monthTotal, f.monthCount, nil
}

type fakeActivityRepo struct {
	entries []activity.Entry
}

func (f *fakeActivityRepo) Create(_ context.Context, _ *activity.Entry) error {
	return nil
}

func (f *fakeActivityRepo) Recent(_ context.Context, limit int) ([]activity.Entry, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()
	admin := user.Actor{ID: "user-admin", EmployeeID: "emp-admin", Role: user.RoleAdmin}

	dashRepo := &fakeDashboardRepo{
		presentToday:  12,
		pendingLeave:  3,
		approvedToday: 2,
		trend: []dashboard.TrendPoint{
			{Date: "2024-03-14", PresentCount: 11, TotalHours: 88},
			{Date: "2024-03-15", PresentCount: 12, TotalHours: 96},
		},
	}
	svc := NewDashboardService(
		dashRepo,
		&fakeEmployeeRepo{working: 20},
		&fakePayrollRepo{monthTotal: decimal.RequireFromString("105000.50"), monthCount: 18},
		&fakeActivityRepo{entries: []activity.Entry{{Action: activity.ActionAttendanceCheckIn}}},
		time.UTC,
	).(*dashboardService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	t.Run("assembles all counters", func(t *testing.T) {
		snap, err := svc.GetDashboard(ctx, admin)
		require.NoError(t, err)

		assert.Equal(t, 20, snap.TotalEmployees)
		assert.Equal(t, 12, snap.PresentToday)
		assert.Equal(t, 3, snap.PendingLeaveCount)
		assert.Equal(t, 2, snap.ApprovedLeaveToday)
		assert.Equal(t, "105000.5", snap.Payroll.MonthTotal.String())
		assert.Equal(t, 18, snap.Payroll.MonthCount)
		assert.Len(t, snap.AttendanceTrend, 2)
		assert.Len(t, snap.RecentActivities, 1)
	})

	t.Run("trend window is the last seven days inclusive", func(t *testing.T) {
		_, err := svc.GetDashboard(ctx, admin)
		require.NoError(t, err)

		assert.Equal(t, "2024-03-09", dashRepo.trendFrom)
		assert.Equal(t, "2024-03-15", dashRepo.trendTo)
	})

	t.Run("employee cannot view the admin dashboard", func(t *testing.T) {
		emp := user.Actor{ID: "user-1", EmployeeID: "emp-1", Role: user.RoleEmployee}
		_, err := svc.GetDashboard(ctx, emp)
		assert.ErrorIs(t, err, user.ErrForbidden)
	})
}
