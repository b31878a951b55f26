// api/service/services.go
package service

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/atlas-hrms/atlas/api/audit"
	"github.com/atlas-hrms/atlas/api/authz/engine"
	"github.com/atlas-hrms/atlas/api/dao"
	"github.com/atlas-hrms/atlas/api/util"
)

type Services struct {
	Auth        IAuthService
	User        IUserService
	Role        IRoleService
	Permission  IPermissionService
	Dept        IDepartmentService
	Leave       ILeaveService
	Attendance  IAttendanceService
	Document    IDocumentService
	Payroll     IPayrollService
	Requisition IRequisitionService
}

func InitializeServices(
	db *gorm.DB,
	evaluator *engine.Evaluator,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(db)
	roleDAO := dao.NewRoleDAO(db)
	permissionDAO := dao.NewPermissionDAO(db)
	departmentDAO := dao.NewDepartmentDAO(db)
	leaveDAO := dao.NewLeaveDAO(db)
	attendanceDAO := dao.NewAttendanceDAO(db)
	documentDAO := dao.NewDocumentDAO(db)
	payrollDAO := dao.NewPayrollDAO(db)
	requisitionDAO := dao.NewRequisitionDAO(db)

	services := &Services{
		Auth:        NewAuthService(userDAO),
		User:        NewUserService(userDAO, evaluator, auditService, validationUtil, eventBus),
		Role:        NewRoleService(roleDAO, evaluator, auditService, validationUtil, notificationSvc, eventBus),
		Permission:  NewPermissionService(permissionDAO, evaluator),
		Dept:        NewDepartmentService(departmentDAO, userDAO, auditService, validationUtil),
		Leave:       NewLeaveService(leaveDAO, auditService, validationUtil, notificationSvc, eventBus),
		Attendance:  NewAttendanceService(attendanceDAO, auditService),
		Document:    NewDocumentService(documentDAO, auditService, validationUtil),
		Payroll:     NewPayrollService(payrollDAO, userDAO, auditService, validationUtil, notificationSvc, eventBus),
		Requisition: NewRequisitionService(requisitionDAO, auditService, validationUtil, notificationSvc, eventBus),
	}

	return services, nil
}

func formatUserID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
