package leave

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/domain/user"
)

// Transactor runs fn inside a storage transaction. The overlap check and the
// insert that follows it must share one transaction or two concurrent
// requests can both pass the check.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, actor user.Actor, req CreateLeaveRequest) (*LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, actor user.Actor, id string, req DecisionRequest) (*LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, actor user.Actor, id string, req DecisionRequest) (*LeaveRequest, error)
	UpdateLeaveStatus(ctx context.Context, actor user.Actor, id string, req UpdateStatusRequest) (*LeaveRequest, error)
	GetMyLeaveRequests(ctx context.Context, actor user.Actor, filter MyLeaveFilter) ([]LeaveRequest, error)
	GetAllLeaveRequests(ctx context.Context, actor user.Actor, filter LeaveFilter) ([]LeaveRequest, error)
}
