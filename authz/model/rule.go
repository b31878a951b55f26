package model

// Resource names the kind of entity a route parameter refers to. It drives
// the ownership resolver's dispatch; routes with no ownership semantics
// leave it empty.
type Resource string

const (
	ResourceNone        Resource = ""
	ResourceUser        Resource = "user"
	ResourceLeave       Resource = "leave"
	ResourceDocument    Resource = "document"
	ResourceAttendance  Resource = "attendance"
	ResourcePayslip     Resource = "payslip"
	ResourceRequisition Resource = "requisition"
)

// AccessRule is the immutable policy attached to one (method, pattern) route.
//
// Exactly one of Public / AuthenticatedOnly / role-or-permission gating
// applies. Roles and Permissions each carry ANY-of semantics; when both are
// set the role check runs first and the permission check is a secondary
// gate. AllowOwn lets a caller who fails the role check through when they
// own the entity the route parameter points at.
type AccessRule struct {
	Public            bool
	AuthenticatedOnly bool
	Roles             []string
	Permissions       []string
	AllowOwn          bool
	Resource          Resource
}
