package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
	"github.com/workpulse/hrms-backend-go/internal/domain/attendance"
	"github.com/workpulse/hrms-backend-go/internal/domain/user"
	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	recorder       activity.Recorder
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	recorder activity.Recorder,
	loc *time.Location,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		recorder:       recorder,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *attendanceService) CheckIn(ctx context.Context, actor user.Actor, req attendance.CheckInRequest) (*attendance.Attendance, error) {
	if !user.Can(actor.Role, user.CapabilityAttendanceCheck) {
		return nil, user.ErrForbidden
	}

	now := s.now()
	day, err := dateutil.ParseDay(req.Date, now, s.loc)
	if err != nil {
		return nil, err
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDay(ctx, actor.EmployeeID, day)
	if err != nil && err != attendance.ErrAttendanceNotFound {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing != nil {
		if existing.CheckInTime != nil {
			return nil, fmt.Errorf("%w: existing check-in at %s",
				attendance.ErrAlreadyCheckedIn, existing.CheckInTime.Format(time.RFC3339))
		}

		// A row without a check-in (an absence placeholder) is claimed in
		// place rather than rejected.
		existing.CheckInTime = &now
		existing.Status = attendance.StatusPresent
		existing.UpdatedBy = actor.EmployeeID
		existing.UpdatedAt = now
		if err := s.attendanceRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update attendance: %w", err)
		}

		s.recorder.Record(ctx, activity.Entry{
			ActorID:    actor.ID,
			Action:     activity.ActionAttendanceCheckIn,
			EntityType: "attendance",
			EntityID:   existing.ID,
			Details: map[string]any{
				"date": day.String(),
			},
		})

		return existing, nil
	}

	att := &attendance.Attendance{
		ID:          uuid.New().String(),
		EmployeeID:  actor.EmployeeID,
		Date:        day.Time(),
		CheckInTime: &now,
		Status:      attendance.StatusPresent,
		CreatedBy:   actor.EmployeeID,
		UpdatedBy:   actor.EmployeeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The repository enforces one row per employee and day, so a concurrent
	// check-in that slipped past the read above still surfaces as
	// ErrAlreadyCheckedIn here.
	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		if err == attendance.ErrAlreadyCheckedIn {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActorID:    actor.ID,
		Action:     activity.ActionAttendanceCheckIn,
		EntityType: "attendance",
		EntityID:   att.ID,
		Details: map[string]any{
			"date": day.String(),
		},
	})

	return att, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, actor user.Actor, req attendance.CheckOutRequest) (*attendance.Attendance, error) {
	if !user.Can(actor.Role, user.CapabilityAttendanceCheck) {
		return nil, user.ErrForbidden
	}

	now := s.now()
	day, err := dateutil.ParseDay(req.Date, now, s.loc)
	if err != nil {
		return nil, err
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDay(ctx, actor.EmployeeID, day)
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return nil, attendance.ErrNoCheckInFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	if att.CheckInTime == nil {
		return nil, attendance.ErrNoCheckInFound
	}
	if att.CheckOutTime != nil {
		return nil, attendance.ErrAlreadyCheckedOut
	}

	// Whole seconds, floored. Clamped to zero so a backwards clock step
	// between check-in and check-out never stores a negative duration.
	duration := int64(now.Sub(*att.CheckInTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	att.CheckOutTime = &now
	att.DurationSeconds = &duration
	att.UpdatedBy = actor.EmployeeID
	att.UpdatedAt = now

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.recorder.Record(ctx, activity.Entry{
		ActorID:    actor.ID,
		Action:     activity.ActionAttendanceCheckOut,
		EntityType: "attendance",
		EntityID:   att.ID,
		Details: map[string]any{
			"date":             day.String(),
			"duration_seconds": duration,
		},
	})

	return att, nil
}

func (s *attendanceService) GetMyAttendance(ctx context.Context, actor user.Actor, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	if !user.Can(actor.Role, user.CapabilityAttendanceViewOwn) {
		return nil, user.ErrForbidden
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, actor.EmployeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return records, nil
}

func (s *attendanceService) GetAllAttendance(ctx context.Context, actor user.Actor, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	if !user.Can(actor.Role, user.CapabilityAttendanceViewAll) {
		return nil, user.ErrForbidden
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return records, nil
}

func (s *attendanceService) DeleteAttendance(ctx context.Context, actor user.Actor, id string) error {
	if !user.Can(actor.Role, user.CapabilityAttendanceDelete) {
		return user.ErrForbidden
	}

	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			return err
		}
		return fmt.Errorf("failed to get attendance: %w", err)
	}

	if err := s.attendanceRepo.Delete(ctx, att.ID); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	day := dateutil.NewDay(att.Date, s.loc)
	s.recorder.Record(ctx, activity.Entry{
		ActorID:    actor.ID,
		Action:     activity.ActionAttendanceDeleted,
		EntityType: "attendance",
		EntityID:   att.ID,
		Details: map[string]any{
			"original_date": day.String(),
			"employee_id":   att.EmployeeID,
		},
	})

	return nil
}
