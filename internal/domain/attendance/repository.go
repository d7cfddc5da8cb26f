package attendance

import (
	"context"

	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type AttendanceRepository interface {
	// Create inserts a new row. It returns ErrAlreadyCheckedIn when a row
	// for the same employee and day already exists.
	Create(ctx context.Context, att *Attendance) error
	Update(ctx context.Context, att *Attendance) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Attendance, error)
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day dateutil.Day) (*Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
