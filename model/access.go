// api/model/access.go
package model

import (
	"fmt"
	"time"
)

type Role struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Permission is an atomic grant on a module, e.g. module "Leaves" with
// action "update". Its string form is "Leaves:update".
type Permission struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Module      string `json:"module" gorm:"uniqueIndex:idx_module_action"`
	Action      string `json:"action" gorm:"uniqueIndex:idx_module_action"`
	Description string `json:"description"`
}

// Key returns the canonical "Module:action" form used everywhere above the
// persistence layer.
func (p Permission) Key() string {
	return fmt.Sprintf("%s:%s", p.Module, p.Action)
}

// Menu is a UI section. It is visible to a user when the user's resolved
// permissions intersect the menu's required permissions, or, for menus with
// no permission requirement, when the user holds one of the linked roles.
type Menu struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex"`
	Path        string       `json:"path"`
	Icon        string       `json:"icon,omitempty"`
	SortOrder   int          `json:"sort_order"`
	Roles       []Role       `json:"roles,omitempty" gorm:"many2many:menu_roles"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:menu_permissions"`
}
