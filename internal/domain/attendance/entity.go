package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

// Attendance is one employee-day row in the attendance ledger. Date is the
// canonical day key; at most one row exists per (EmployeeID, Date).
// DurationSeconds is set on check-out and holds the floored whole seconds
// between check-in and check-out, clamped to zero when the clock moved
// backwards in between.
type Attendance struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	Date            time.Time  `json:"date"`
	CheckInTime     *time.Time `json:"check_in_time"`
	CheckOutTime    *time.Time `json:"check_out_time"`
	DurationSeconds *int64     `json:"duration_seconds"`
	Status          Status     `json:"status"`
	CreatedBy       string     `json:"created_by"`
	UpdatedBy       string     `json:"updated_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Joined from the employee roster on admin listings.
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
}

// WorkHours converts the stored duration to hours for reporting reads.
func (a *Attendance) WorkHours() float64 {
	if a.DurationSeconds == nil {
		return 0
	}
	return float64(*a.DurationSeconds) / 3600
}
