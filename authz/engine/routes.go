package engine

import (
	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
)

// Role names used throughout the route table.
const (
	RoleAdmin          = "Admin"
	RoleHRManager      = "HR Manager"
	RoleDepartmentHead = "Department Head"
	RoleEmployee       = "Employee"
)

// RegisterDefaultRoutes installs the access rule for every API route. The
// table is hand-authored on purpose: permissions for a new endpoint are a
// reviewed code change, not data. A route missing here is denied.
func RegisterDefaultRoutes(r *Registry) {
	// Authentication (no identity work at all)
	r.Register("POST", "/api/v1/auth/login", authz_model.AccessRule{Public: true})
	r.Register("POST", "/api/v1/auth/refresh", authz_model.AccessRule{Public: true})
	r.Register("POST", "/api/v1/auth/logout", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/auth/me", authz_model.AccessRule{AuthenticatedOnly: true})

	// Users
	r.Register("GET", "/api/v1/users", authz_model.AccessRule{
		Roles: []string{RoleAdmin, RoleHRManager},
	})
	r.Register("POST", "/api/v1/users", authz_model.AccessRule{
		Roles:       []string{RoleAdmin, RoleHRManager},
		Permissions: []string{"Users:create"},
	})
	r.Register("GET", "/api/v1/users/:id", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleHRManager},
		AllowOwn: true,
		Resource: authz_model.ResourceUser,
	})
	r.Register("PUT", "/api/v1/users/:id", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleHRManager},
		AllowOwn: true,
		Resource: authz_model.ResourceUser,
	})
	r.Register("DELETE", "/api/v1/users/:id", authz_model.AccessRule{
		Roles: []string{RoleAdmin},
	})
	r.Register("PUT", "/api/v1/users/:id/roles", authz_model.AccessRule{
		Roles: []string{RoleAdmin},
	})
	r.Register("GET", "/api/v1/users/:id/attendance", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleHRManager, RoleDepartmentHead},
		AllowOwn: true,
		Resource: authz_model.ResourceUser,
	})

	// Roles and permissions
	r.Register("GET", "/api/v1/roles", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("POST", "/api/v1/roles", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("PUT", "/api/v1/roles/:id", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("DELETE", "/api/v1/roles/:id", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("PUT", "/api/v1/roles/:id/permissions", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("GET", "/api/v1/permissions", authz_model.AccessRule{
		Roles: []string{RoleAdmin, RoleHRManager},
	})

	// Menus
	r.Register("GET", "/api/v1/menus", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("GET", "/api/v1/menus/mine", authz_model.AccessRule{AuthenticatedOnly: true})

	// Departments
	r.Register("GET", "/api/v1/departments", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("POST", "/api/v1/departments", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("PUT", "/api/v1/departments/:id", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("DELETE", "/api/v1/departments/:id", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	r.Register("GET", "/api/v1/departments/:id/employees", authz_model.AccessRule{
		Roles: []string{RoleAdmin, RoleHRManager, RoleDepartmentHead},
	})

	// Leaves
	r.Register("POST", "/api/v1/leaves", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/leaves", authz_model.AccessRule{
		Roles:       []string{RoleAdmin, RoleHRManager},
		Permissions: []string{"Leaves:read"},
	})
	r.Register("GET", "/api/v1/leaves/balance", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/leaves/mine", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/leaves/:id", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleHRManager},
		AllowOwn: true,
		Resource: authz_model.ResourceLeave,
	})
	r.Register("PUT", "/api/v1/leaves/:id/status", authz_model.AccessRule{
		Roles:       []string{RoleAdmin, RoleHRManager},
		Permissions: []string{"Leaves:update"},
	})

	// Attendance
	r.Register("POST", "/api/v1/attendance/clock-in", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("POST", "/api/v1/attendance/clock-out", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/attendance/:id", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleHRManager},
		AllowOwn: true,
		Resource: authz_model.ResourceAttendance,
	})

	// Documents
	r.Register("POST", "/api/v1/documents", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/documents", authz_model.AccessRule{
		Roles: []string{RoleAdmin, RoleHRManager},
	})
	r.Register("GET", "/api/v1/documents/:id", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleHRManager},
		AllowOwn: true,
		Resource: authz_model.ResourceDocument,
	})
	r.Register("DELETE", "/api/v1/documents/:id", authz_model.AccessRule{
		Roles:       []string{RoleAdmin, RoleHRManager},
		Permissions: []string{"Documents:delete"},
	})

	// Payroll
	r.Register("POST", "/api/v1/payroll/payslips", authz_model.AccessRule{
		Roles:       []string{RoleAdmin, RoleHRManager},
		Permissions: []string{"Payroll:create"},
	})
	r.Register("GET", "/api/v1/payroll/payslips", authz_model.AccessRule{
		Roles: []string{RoleAdmin, RoleHRManager},
	})
	r.Register("GET", "/api/v1/payroll/payslips/:id", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleHRManager},
		AllowOwn: true,
		Resource: authz_model.ResourcePayslip,
	})

	// Requisitions
	r.Register("POST", "/api/v1/requisitions", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/requisitions", authz_model.AccessRule{
		Roles: []string{RoleAdmin, RoleDepartmentHead},
	})
	r.Register("GET", "/api/v1/requisitions/:id", authz_model.AccessRule{
		Roles:    []string{RoleAdmin, RoleDepartmentHead},
		AllowOwn: true,
		Resource: authz_model.ResourceRequisition,
	})
	r.Register("PUT", "/api/v1/requisitions/:id/approve", authz_model.AccessRule{
		Roles:       []string{RoleAdmin, RoleDepartmentHead},
		Permissions: []string{"Requisitions:update"},
	})
}
