package dashboard

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/domain/user"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, actor user.Actor) (*Snapshot, error)
}
