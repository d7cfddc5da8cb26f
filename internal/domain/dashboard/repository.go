package dashboard

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type DashboardRepository interface {
	CountPresentOn(ctx context.Context, day dateutil.Day) (int, error)
	CountPendingLeave(ctx context.Context) (int, error)
	// CountApprovedLeaveCovering counts APPROVED requests whose inclusive
	// date range contains day.
	CountApprovedLeaveCovering(ctx context.Context, day dateutil.Day) (int, error)
	// AttendanceTrend returns one point per day in [from, to] that has at
	// least one attendance row, grouped by day.
	AttendanceTrend(ctx context.Context, from, to dateutil.Day) ([]TrendPoint, error)
}
