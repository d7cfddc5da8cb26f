package attendance

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/domain/user"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, actor user.Actor, req CheckInRequest) (*Attendance, error)
	CheckOut(ctx context.Context, actor user.Actor, req CheckOutRequest) (*Attendance, error)
	GetMyAttendance(ctx context.Context, actor user.Actor, filter MyAttendanceFilter) ([]Attendance, error)
	GetAllAttendance(ctx context.Context, actor user.Actor, filter AttendanceFilter) ([]Attendance, error)
	DeleteAttendance(ctx context.Context, actor user.Actor, id string) error
}
