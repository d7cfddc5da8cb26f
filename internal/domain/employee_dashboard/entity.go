package employee_dashboard

import (
	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/domain/payroll"
)

// Snapshot is one employee's self-service overview for the current month.
type Snapshot struct {
	Month           MonthStats             `json:"month"`
	ActiveLeaves    []leave.LeaveRequest   `json:"active_leaves"`
	LatestPayroll   *payroll.Payroll       `json:"latest_payroll"`
	TodayAttendance *attendance.Attendance `json:"today_attendance"`
}

// MonthStats covers the first of the month through today, inclusive.
type MonthStats struct {
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	TotalWorkHours float64 `json:"total_work_hours"`
	TotalDays      int     `json:"total_days"`
}
