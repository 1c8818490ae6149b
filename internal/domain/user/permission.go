package user

type Permission string

const (
	// Employee directory
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Departments
	PermissionDepartmentView   Permission = "department.view"
	PermissionDepartmentManage Permission = "department.manage"

	// Attendance
	PermissionAttendanceView    Permission = "attendance.view"
	PermissionAttendanceCheckIn Permission = "attendance.check_in"
	PermissionAttendanceExport  Permission = "attendance.export"

	// Leave
	PermissionLeaveView    Permission = "leave.view"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveApprove Permission = "leave.approve"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionDepartmentView,
		PermissionDepartmentManage,
		PermissionAttendanceView,
		PermissionAttendanceCheckIn,
		PermissionAttendanceExport,
		PermissionLeaveView,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
	},
	RoleManager: {
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionDepartmentView,
		PermissionDepartmentManage,
		PermissionAttendanceView,
		PermissionAttendanceCheckIn,
		PermissionAttendanceExport,
		PermissionLeaveView,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
	},
	RoleEmployee: {
		PermissionEmployeeView,
		PermissionDepartmentView,
		PermissionAttendanceView,
		PermissionAttendanceCheckIn,
		PermissionLeaveView,
		PermissionLeaveCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
