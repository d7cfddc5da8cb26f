package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in for this date")
	ErrAlreadyCheckedOut  = errors.New("already checked out for this date")
	ErrNoCheckInFound     = errors.New("no check-in found for this date")
)
