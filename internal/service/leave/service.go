package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
	"github.com/workpulse/hrms-backend-go/internal/domain/leave"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type leaveService struct {
	leaveRepo leave.LeaveRequestRepository
	tx        leave.Transactor
	recorder  activity.Recorder
	loc       *time.Location
	now       func() time.Time
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	tx leave.Transactor,
	recorder activity.Recorder,
	loc *time.Location,
) leave.LeaveService {
	return &leaveService{
		leaveRepo: leaveRepo,
		tx:        tx,
		recorder:  recorder,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *leaveService) CreateLeaveRequest(ctx context.Context, actor user.Actor, req leave.CreateLeaveRequest) (*leave.LeaveRequest, error) {
	if !user.Can(actor.Role, user.CapabilityLeaveCreate) {
		return nil, user.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	start, err := dateutil.ParseDay(req.StartDate, now, s.loc)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseDay(req.EndDate, now, s.loc)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, leave.ErrInvalidDateRange
	}

	request := &leave.LeaveRequest{
		ID:         uuid.New().String(),
		EmployeeID: actor.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  start.Time(),
		EndDate:    end.Time(),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		overlapping, err := s.leaveRepo.HasOverlapping(ctx, actor.EmployeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		// The exclusion constraint on the leave table is the arbiter for two
		// concurrent requests over the same range, so the loser of that race
		// surfaces the same way as a sequential overlap.
		if err := s.leaveRepo.Create(ctx, request); err != nil {
			if err == leave.ErrOverlappingLeave {
				return err
			}
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activity.Entry{
		ActorID:    actor.ID,
		Action:     activity.ActionLeaveRequestCreate,
		EntityType: "leave_request",
		EntityID:   request.ID,
		Details: map[string]any{
			"type":       req.Type,
			"start_date": start.String(),
			"end_date":   end.String(),
		},
	})

	return request, nil
}

func (s *leaveService) ApproveLeaveRequest(ctx context.Context, actor user.Actor, id string, req leave.DecisionRequest) (*leave.LeaveRequest, error) {
	return s.decide(ctx, actor, id, leave.StatusApproved, req.Comment)
}

func (s *leaveService) RejectLeaveRequest(ctx context.Context, actor user.Actor, id string, req leave.DecisionRequest) (*leave.LeaveRequest, error) {
	return s.decide(ctx, actor, id, leave.StatusRejected, req.Comment)
}

func (s *leaveService) UpdateLeaveStatus(ctx context.Context, actor user.Actor, id string, req leave.UpdateStatusRequest) (*leave.LeaveRequest, error) {
	status := leave.Status(strings.ToUpper(req.Status))
	if status != leave.StatusApproved && status != leave.StatusRejected {
		return nil, leave.ErrInvalidDecision
	}
	return s.decide(ctx, actor, id, status, req.Comment)
}

// decide is the single transition out of PENDING. Approve, reject and the
// generic status update all funnel through here so the guard cannot drift.
func (s *leaveService) decide(ctx context.Context, actor user.Actor, id string, status leave.Status, comment string) (*leave.LeaveRequest, error) {
	if !user.Can(actor.Role, user.CapabilityLeaveDecide) {
		return nil, user.ErrForbidden
	}

	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if err == leave.ErrLeaveRequestNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.StatusPending {
		return nil, fmt.Errorf("%w: current status is %s", leave.ErrAlreadyProcessed, request.Status)
	}

	now := s.now()
	request.Status = status
	request.DecidedBy = &actor.ID
	request.DecidedAt = &now
	request.UpdatedAt = now
	if comment = strings.TrimSpace(comment); comment != "" {
		request.AdminComment = &comment
	}

	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	action := activity.ActionLeaveApproved
	if status == leave.StatusRejected {
		action = activity.ActionLeaveRejected
	}
	details := map[string]any{
		"employee_id": request.EmployeeID,
		"status":      string(status),
	}
	if comment != "" {
		details["comment"] = comment
	}
	s.recorder.Record(ctx, activity.Entry{
		ActorID:    actor.ID,
		Action:     action,
		EntityType: "leave_request",
		EntityID:   request.ID,
		Details:    details,
	})

	return request, nil
}

func (s *leaveService) GetMyLeaveRequests(ctx context.Context, actor user.Actor, filter leave.MyLeaveFilter) ([]leave.LeaveRequest, error) {
	if !user.Can(actor.Role, user.CapabilityLeaveViewOwn) {
		return nil, user.ErrForbidden
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, actor.EmployeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return requests, nil
}

func (s *leaveService) GetAllLeaveRequests(ctx context.Context, actor user.Actor, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	if !user.Can(actor.Role, user.CapabilityLeaveViewAll) {
		return nil, user.ErrForbidden
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return requests, nil
}
