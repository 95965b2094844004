package user

type Permission string

const (
	// User administration
	PermissionUserManage Permission = "user.manage"

	// Employees
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Clients and contacts
	PermissionClientView   Permission = "client.view"
	PermissionClientManage Permission = "client.manage"

	// Projects
	PermissionProjectView   Permission = "project.view"
	PermissionProjectManage Permission = "project.manage"

	// Daily logs
	PermissionDailyLogView   Permission = "dailylog.view"
	PermissionDailyLogManage Permission = "dailylog.manage"

	// Quotes
	PermissionQuoteView   Permission = "quote.view"
	PermissionQuoteManage Permission = "quote.manage"

	// Files
	PermissionFileView   Permission = "file.view"
	PermissionFileUpload Permission = "file.upload"
	PermissionFileManage Permission = "file.manage"

	// Attendance (sign-in/sign-out)
	PermissionSignInView   Permission = "signin.view"
	PermissionSignInRecord Permission = "signin.record"

	// Time entries
	PermissionTimeEntryView    Permission = "timeentry.view"
	PermissionTimeEntryCreate  Permission = "timeentry.create"
	PermissionTimeEntryApprove Permission = "timeentry.approve"
	PermissionTimeEntryDelete  Permission = "timeentry.delete"

	// Timesheets
	PermissionTimesheetView    Permission = "timesheet.view"
	PermissionTimesheetManage  Permission = "timesheet.manage"
	PermissionTimesheetApprove Permission = "timesheet.approve"

	// Payroll reports
	PermissionPayrollView   Permission = "payroll.view"
	PermissionPayrollExport Permission = "payroll.export"
)

// RolePermissions is the static (resource, action) -> role table. Routes
// check the caller's role claim against it via RequirePermission.
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionUserManage,
		PermissionEmployeeView, PermissionEmployeeManage,
		PermissionClientView, PermissionClientManage,
		PermissionProjectView, PermissionProjectManage,
		PermissionDailyLogView, PermissionDailyLogManage,
		PermissionQuoteView, PermissionQuoteManage,
		PermissionFileView, PermissionFileUpload, PermissionFileManage,
		PermissionSignInView, PermissionSignInRecord,
		PermissionTimeEntryView, PermissionTimeEntryCreate, PermissionTimeEntryApprove, PermissionTimeEntryDelete,
		PermissionTimesheetView, PermissionTimesheetManage, PermissionTimesheetApprove,
		PermissionPayrollView, PermissionPayrollExport,
	},
	RoleOfficeAdmin: {
		PermissionEmployeeView, PermissionEmployeeManage,
		PermissionClientView, PermissionClientManage,
		PermissionProjectView, PermissionProjectManage,
		PermissionDailyLogView, PermissionDailyLogManage,
		PermissionQuoteView, PermissionQuoteManage,
		PermissionFileView, PermissionFileUpload, PermissionFileManage,
		PermissionSignInView, PermissionSignInRecord,
		PermissionTimeEntryView, PermissionTimeEntryCreate, PermissionTimeEntryApprove, PermissionTimeEntryDelete,
		PermissionTimesheetView, PermissionTimesheetManage, PermissionTimesheetApprove,
		PermissionPayrollView, PermissionPayrollExport,
	},
	RoleProjectManager: {
		PermissionEmployeeView,
		PermissionClientView,
		PermissionProjectView, PermissionProjectManage,
		PermissionDailyLogView, PermissionDailyLogManage,
		PermissionQuoteView, PermissionQuoteManage,
		PermissionFileView, PermissionFileUpload, PermissionFileManage,
		PermissionSignInView, PermissionSignInRecord,
		PermissionTimeEntryView, PermissionTimeEntryCreate, PermissionTimeEntryApprove, PermissionTimeEntryDelete,
		PermissionTimesheetView, PermissionTimesheetManage, PermissionTimesheetApprove,
		PermissionPayrollView, PermissionPayrollExport,
	},
	RoleFieldSupervisor: {
		PermissionEmployeeView,
		PermissionProjectView,
		PermissionDailyLogView, PermissionDailyLogManage,
		PermissionFileView, PermissionFileUpload,
		PermissionSignInView, PermissionSignInRecord,
		PermissionTimeEntryView, PermissionTimeEntryCreate,
		PermissionTimesheetView, PermissionTimesheetManage,
	},
	RoleFieldWorker: {
		PermissionProjectView,
		PermissionDailyLogView,
		PermissionFileView,
		PermissionSignInView,
		PermissionTimeEntryView,
	},
	RoleClientReadOnly: {
		PermissionProjectView,
		PermissionDailyLogView,
		PermissionQuoteView,
		PermissionFileView,
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
