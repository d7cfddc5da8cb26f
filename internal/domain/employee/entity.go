package employee

import "time"

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "ACTIVE"
	EmploymentStatusOnLeave    EmploymentStatus = "ON_LEAVE"
	EmploymentStatusTerminated EmploymentStatus = "TERMINATED"
)

// Employee is the roster read-side. Records are provisioned out of band;
// the ledgers only ever read them.
type Employee struct {
	ID               string           `json:"id"`
	Code             string           `json:"code"`
	FullName         string           `json:"full_name"`
	Email            string           `json:"email"`
	Department       string           `json:"department"`
	Position         string           `json:"position"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	JoinDate         time.Time        `json:"join_date"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
