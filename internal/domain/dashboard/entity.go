package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
)

// Snapshot is the admin overview. Every number is computed at read time;
// nothing here is persisted.
type Snapshot struct {
	TotalEmployees     int              `json:"total_employees"`
	PresentToday       int              `json:"present_today"`
	PendingLeaveCount  int              `json:"pending_leave_count"`
	ApprovedLeaveToday int              `json:"approved_leave_today"`
	Payroll            PayrollSummary   `json:"payroll"`
	AttendanceTrend    []TrendPoint     `json:"attendance_trend"`
	RecentActivities   []activity.Entry `json:"recent_activities"`
}

// PayrollSummary covers the current month, counting PROCESSED and PAID
// records only.
type PayrollSummary struct {
	MonthTotal decimal.Decimal `json:"month_total"`
	MonthCount int             `json:"month_count"`
}

// TrendPoint is one day of the attendance trend window.
type TrendPoint struct {
	Date         string  `json:"date"`
	PresentCount int     `json:"present_count"`
	TotalHours   float64 `json:"total_hours"`
}
