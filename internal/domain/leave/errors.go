package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrOverlappingLeave     = errors.New("overlapping leave request exists")
	ErrAlreadyProcessed     = errors.New("leave request has already been processed")
	ErrInvalidDecision      = errors.New("decision must be APPROVED or REJECTED")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
)
