package employee_dashboard

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/domain/user"
)

type EmployeeDashboardService interface {
	GetMyDashboard(ctx context.Context, actor user.Actor) (*Snapshot, error)
}
