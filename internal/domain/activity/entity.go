package activity

import "time"

type Action string

const (
	ActionAttendanceCheckIn  Action = "ATTENDANCE_CHECKIN"
	ActionAttendanceCheckOut Action = "ATTENDANCE_CHECKOUT"
	ActionAttendanceDeleted  Action = "ATTENDANCE_DELETED"
	ActionLeaveRequestCreate Action = "LEAVE_REQUEST_CREATED"
	ActionLeaveApproved      Action = "LEAVE_APPROVED"
	ActionLeaveRejected      Action = "LEAVE_REJECTED"
	ActionPayrollCreated     Action = "PAYROLL_CREATED"
	ActionPayrollUpdated     Action = "PAYROLL_UPDATED"
)

// Entry is one row of the append-only activity trail.
type Entry struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id"`
	Action     Action         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`

	// Joined actor summary for dashboard feeds.
	ActorName *string `json:"actor_name,omitempty"`
	ActorRole *string `json:"actor_role,omitempty"`
}
