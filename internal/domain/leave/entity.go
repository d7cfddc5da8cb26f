package leave

import (
	"time"

	"github.com/workpulse/hrms-backend-go/internal/pkg/dateutil"
)

type Type string

const (
	TypePaid      Type = "PAID"
	TypeSick      Type = "SICK"
	TypeUnpaid    Type = "UNPAID"
	TypeCasual    Type = "CASUAL"
	TypeEmergency Type = "EMERGENCY"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// LeaveRequest is one row of the leave ledger. StartDate and EndDate are
// inclusive day keys. A request leaves PENDING exactly once.
type LeaveRequest struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	Type         Type       `json:"type"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Reason       string     `json:"reason"`
	Status       Status     `json:"status"`
	DecidedBy    *string    `json:"decided_by"`
	DecidedAt    *time.Time `json:"decided_at"`
	AdminComment *string    `json:"admin_comment"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Joined from the employee roster on admin listings.
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
}

// Days returns the inclusive length of the request in calendar days.
// Counted on calendar dates, not elapsed hours, so a DST transition inside
// the range cannot shorten it.
func (l *LeaveRequest) Days() int {
	return dateutil.DaysBetween(l.StartDate, l.EndDate) + 1
}
