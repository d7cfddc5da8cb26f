package user

type Capability string

const (
	// Attendance
	CapabilityAttendanceViewOwn Capability = "attendance.view_own"
	CapabilityAttendanceCheck   Capability = "attendance.check"
	CapabilityAttendanceViewAll Capability = "attendance.view_all"
	CapabilityAttendanceDelete  Capability = "attendance.delete"

	// Leave
	CapabilityLeaveViewOwn Capability = "leave.view_own"
	CapabilityLeaveCreate  Capability = "leave.create"
	CapabilityLeaveViewAll Capability = "leave.view_all"
	CapabilityLeaveDecide  Capability = "leave.decide"

	// Payroll
	CapabilityPayrollViewOwn Capability = "payroll.view_own"
	CapabilityPayrollManage  Capability = "payroll.manage"

	// Dashboards
	CapabilityDashboardViewAdmin Capability = "dashboard.view_admin"
	CapabilityDashboardViewOwn   Capability = "dashboard.view_own"
)

// RoleCapabilities maps roles to their capabilities. Entry points check
// capabilities, never role names, so role policy lives in exactly one place.
var RoleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapabilityAttendanceViewOwn,
		CapabilityAttendanceCheck,
		CapabilityAttendanceViewAll,
		CapabilityAttendanceDelete,
		CapabilityLeaveViewOwn,
		CapabilityLeaveCreate,
		CapabilityLeaveViewAll,
		CapabilityLeaveDecide,
		CapabilityPayrollViewOwn,
		CapabilityPayrollManage,
		CapabilityDashboardViewAdmin,
		CapabilityDashboardViewOwn,
	},
	RoleHR: {
		CapabilityAttendanceViewOwn,
		CapabilityAttendanceCheck,
		CapabilityAttendanceViewAll,
		CapabilityLeaveViewOwn,
		CapabilityLeaveCreate,
		CapabilityLeaveViewAll,
		CapabilityLeaveDecide,
		CapabilityPayrollViewOwn,
		CapabilityDashboardViewAdmin,
		CapabilityDashboardViewOwn,
	},
	RoleEmployee: {
		CapabilityAttendanceViewOwn,
		CapabilityAttendanceCheck,
		CapabilityLeaveViewOwn,
		CapabilityLeaveCreate,
		CapabilityPayrollViewOwn,
		CapabilityDashboardViewOwn,
	},
}

// Can checks if a role has a specific capability
func Can(role Role, capability Capability) bool {
	capabilities, exists := RoleCapabilities[role]
	if !exists {
		return false
	}

	for _, c := range capabilities {
		if c == capability {
			return true
		}
	}

	return false
}
