package user

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleSuperAdmin, PermissionUserManage, true},
		{RoleSuperAdmin, PermissionPayrollExport, true},
		{RoleOfficeAdmin, PermissionUserManage, false},
		{RoleOfficeAdmin, PermissionEmployeeManage, true},
		{RoleProjectManager, PermissionEmployeeManage, false},
		{RoleProjectManager, PermissionQuoteManage, true},
		{RoleFieldSupervisor, PermissionTimeEntryApprove, false},
		{RoleFieldSupervisor, PermissionSignInRecord, true},
		{RoleFieldWorker, PermissionSignInRecord, false},
		{RoleFieldWorker, PermissionProjectView, true},
		{RoleClientReadOnly, PermissionQuoteView, true},
		{RoleClientReadOnly, PermissionTimeEntryView, false},
		{Role("unknown"), PermissionProjectView, false},
	}
	for _, c := range cases {
		got := HasPermission(c.role, c.permission)
		if got != c.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}

func TestEveryRoleHasPermissions(t *testing.T) {
	for _, role := range []Role{
		RoleSuperAdmin, RoleOfficeAdmin, RoleProjectManager,
		RoleFieldSupervisor, RoleFieldWorker, RoleClientReadOnly,
	} {
		if len(RolePermissions[role]) == 0 {
			t.Errorf("role %s has no permissions", role)
		}
	}
}
