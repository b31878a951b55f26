// api/authz/dao/access_retrieval_dao.go
package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	"github.com/atlas-hrms/atlas/api/model"
)

// AccessRetrievalDAO implements the engine's read-only Store and
// OwnershipStore interfaces over the relational schema. The engine never
// writes through this type.
type AccessRetrievalDAO struct {
	DB *gorm.DB
}

func NewAccessRetrievalDAO(db *gorm.DB) *AccessRetrievalDAO {
	return &AccessRetrievalDAO{DB: db}
}

func (dao *AccessRetrievalDAO) RolesForUser(ctx context.Context, userID uint) ([]string, error) {
	var roles []string
	err := dao.DB.WithContext(ctx).
		Table("roles").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (dao *AccessRetrievalDAO) PermissionsForRoles(ctx context.Context, roles []string) ([]string, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	var permissions []model.Permission
	err := dao.DB.WithContext(ctx).
		Table("permissions").
		Select("DISTINCT permissions.module, permissions.action").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Where("roles.name IN ?", roles).
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(permissions))
	for _, p := range permissions {
		keys = append(keys, p.Key())
	}
	return keys, nil
}

// MenusForAccess returns the menu names the given role/permission sets
// unlock. A menu with configured permissions is visible when any of them is
// held; a menu without configured permissions is visible to any linked role.
func (dao *AccessRetrievalDAO) MenusForAccess(ctx context.Context, roles []string, permissions []string) ([]string, error) {
	var menus []model.Menu
	err := dao.DB.WithContext(ctx).
		Preload("Roles").
		Preload("Permissions").
		Order("sort_order").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}

	roleSet := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}
	permSet := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		permSet[p] = struct{}{}
	}

	var names []string
	for _, menu := range menus {
		if len(menu.Permissions) > 0 {
			for _, p := range menu.Permissions {
				if _, ok := permSet[p.Key()]; ok {
					names = append(names, menu.Name)
					break
				}
			}
			continue
		}
		for _, r := range menu.Roles {
			if _, ok := roleSet[r.Name]; ok {
				names = append(names, menu.Name)
				break
			}
		}
	}
	return names, nil
}

func (dao *AccessRetrievalDAO) LeaveOwner(ctx context.Context, id uint) (uint, error) {
	return dao.ownerColumn(ctx, &model.LeaveApplication{}, "user_id", id, atlas_errors.ErrLeaveNotFound)
}

func (dao *AccessRetrievalDAO) DocumentUploader(ctx context.Context, id uint) (uint, error) {
	return dao.ownerColumn(ctx, &model.Document{}, "uploaded_by", id, atlas_errors.ErrDocumentNotFound)
}

func (dao *AccessRetrievalDAO) AttendanceSubject(ctx context.Context, id uint) (uint, error) {
	return dao.ownerColumn(ctx, &model.AttendanceRecord{}, "user_id", id, atlas_errors.ErrAttendanceNotFound)
}

func (dao *AccessRetrievalDAO) PayslipEmployee(ctx context.Context, id uint) (uint, error) {
	return dao.ownerColumn(ctx, &model.Payslip{}, "user_id", id, atlas_errors.ErrPayslipNotFound)
}

func (dao *AccessRetrievalDAO) RequisitionRequester(ctx context.Context, id uint) (uint, error) {
	return dao.ownerColumn(ctx, &model.Requisition{}, "requested_by", id, atlas_errors.ErrRequisitionNotFound)
}

func (dao *AccessRetrievalDAO) ownerColumn(ctx context.Context, entity interface{}, column string, id uint, notFound error) (uint, error) {
	var owner uint
	err := dao.DB.WithContext(ctx).
		Model(entity).
		Select(column).
		Where("id = ?", id).
		Take(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, notFound
	}
	if err != nil {
		return 0, err
	}
	return owner, nil
}
