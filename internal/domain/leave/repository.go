package leave

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *LeaveRequest) error
	Update(ctx context.Context, req *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string, filter MyLeaveFilter) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	// HasOverlapping reports whether the employee has a PENDING or APPROVED
	// request whose inclusive date range intersects [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end dateutil.Day) (bool, error)
}
