// api/controller/controllers.go
package controller

import "github.com/atlas-hrms/atlas/api/service"

type Controllers struct {
	Auth        *AuthController
	User        *UserController
	Role        *RoleController
	Permission  *PermissionController
	Dept        *DepartmentController
	Leave       *LeaveController
	Attendance  *AttendanceController
	Document    *DocumentController
	Payroll     *PayrollController
	Requisition *RequisitionController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(services.Auth),
		User:        NewUserController(services.User, services.Attendance),
		Role:        NewRoleController(services.Role),
		Permission:  NewPermissionController(services.Permission),
		Dept:        NewDepartmentController(services.Dept),
		Leave:       NewLeaveController(services.Leave),
		Attendance:  NewAttendanceController(services.Attendance),
		Document:    NewDocumentController(services.Document),
		Payroll:     NewPayrollController(services.Payroll),
		Requisition: NewRequisitionController(services.Requisition),
	}
}
