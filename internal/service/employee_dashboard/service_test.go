package employee_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type fakeEmpDashboardRepo struct {
	presentDays  int
	totalSeconds int64
	activeLeaves []leave.LeaveRequest
	monthStart   string
	today        string
}

func (f *fakeEmpDashboardRepo) MonthAttendance(_ context.Context, _ string, monthStart, today dateutil.Day) (int, int64, error) {
	f.monthStart = monthStart.String()
	f.today = today.String()
	return f.presentDays, f.totalSeconds, nil
}

func (f *fakeEmpDashboardRepo) ActiveLeaves(_ context.Context, _ string, _ dateutil.Day) ([]leave.LeaveRequest, error) {
	return f.activeLeaves, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	today *attendance.Attendance
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDay(_ context.Context, _ string, _ dateutil.Day) (*attendance.Attendance, error) {
	if f.today == nil {
		return nil, attendance.ErrAttendanceNotFound
	}
	return f.today, nil
}

type fakePayrollRepo struct {
	payroll.PayrollRepository
	latest *payroll.Payroll
}

func (f *fakePayrollRepo) LatestByEmployee(_ context.Context, _ string) (*payroll.Payroll, error) {
	if f.latest == nil {
		return nil, payroll.ErrPayrollNotFound
	}
	return f.latest, nil
}

func TestGetMyDashboard(t *testing.T) {
	ctx := context.Background()
	emp := user.Actor{ID: "user-1", EmployeeID: "emp-1", Role: user.RoleEmployee}

	t.Run("month stats cover the first through today", func(t *testing.T) {
		repo := &fakeEmpDashboardRepo{
			presentDays:  10,
			totalSeconds: 10*8*3600 + 1800,
		}
		svc := NewEmployeeDashboardService(repo, &fakeAttendanceRepo{}, &fakePayrollRepo{}, time.UTC).(*employeeDashboardService)
		svc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC) }

		snap, err := svc.GetMyDashboard(ctx, emp)
		require.NoError(t, err)

		assert.Equal(t, "2024-03-01", repo.monthStart)
		assert.Equal(t, "2024-03-15", repo.today)
		assert.Equal(t, 10, snap.Month.PresentDays)
		assert.Equal(t, 15, snap.Month.TotalDays)
		assert.Equal(t, 5, snap.Month.AbsentDays)
		assert.Equal(t, 80.5, snap.Month.TotalWorkHours)
	})

	t.Run("a DST transition inside the month does not drop a day", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		repo := &fakeEmpDashboardRepo{presentDays: 10}
		svc := NewEmployeeDashboardService(repo, &fakeAttendanceRepo{}, &fakePayrollRepo{}, loc).(*employeeDashboardService)
		// March 10 is the spring-forward day; the window still spans 15 calendar days.
		svc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 0, 0, 0, loc) }

		snap, err := svc.GetMyDashboard(ctx, emp)
		require.NoError(t, err)
		assert.Equal(t, 15, snap.Month.TotalDays)
		assert.Equal(t, 5, snap.Month.AbsentDays)
	})

	t.Run("missing payroll and attendance leave nil fields", func(t *testing.T) {
		svc := NewEmployeeDashboardService(&fakeEmpDashboardRepo{}, &fakeAttendanceRepo{}, &fakePayrollRepo{}, time.UTC).(*employeeDashboardService)
		svc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC) }

		snap, err := svc.GetMyDashboard(ctx, emp)
		require.NoError(t, err)
		assert.Nil(t, snap.LatestPayroll)
		assert.Nil(t, snap.TodayAttendance)
		assert.Empty(t, snap.ActiveLeaves)
	})

	t.Run("active leaves pass through in order", func(t *testing.T) {
		leaves := []leave.LeaveRequest{
			{ID: "l-1", Status: leave.StatusApproved},
			{ID: "l-2", Status: leave.StatusPending},
		}
		svc := NewEmployeeDashboardService(&fakeEmpDashboardRepo{activeLeaves: leaves}, &fakeAttendanceRepo{}, &fakePayrollRepo{}, time.UTC).(*employeeDashboardService)
		svc.now = func() time.Time { return time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC) }

		snap, err := svc.GetMyDashboard(ctx, emp)
		require.NoError(t, err)
		require.Len(t, snap.ActiveLeaves, 2)
		assert.Equal(t, "l-1", snap.ActiveLeaves[0].ID)
	})
}
