// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/atlas-hrms/atlas/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

// ValidateStruct runs tag-based validation on any request payload.
func (v *ValidationUtil) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.Name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if user.Username == "" {
		return fmt.Errorf("user username cannot be empty")
	}
	if err := v.validate.Var(user.Email, "required,email"); err != nil {
		return fmt.Errorf("user email is invalid")
	}
	return nil
}

func (v *ValidationUtil) ValidateRole(role model.Role) error {
	if role.Name == "" {
		return fmt.Errorf("role name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateDepartment(department model.Department) error {
	if department.Name == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateLeave(leave model.LeaveApplication) error {
	switch leave.Type {
	case "casual", "sick", "earned", "unpaid":
	default:
		return fmt.Errorf("unknown leave type %q", leave.Type)
	}
	if leave.StartDate.IsZero() || leave.EndDate.IsZero() {
		return fmt.Errorf("leave dates cannot be empty")
	}
	if leave.EndDate.Before(leave.StartDate) {
		return fmt.Errorf("leave end date precedes start date")
	}
	return nil
}

func (v *ValidationUtil) ValidateDocument(document model.Document) error {
	if document.Title == "" {
		return fmt.Errorf("document title cannot be empty")
	}
	switch document.Category {
	case "contract", "certificate", "id-proof", "other":
	default:
		return fmt.Errorf("unknown document category %q", document.Category)
	}
	return nil
}

func (v *ValidationUtil) ValidatePayslip(payslip model.Payslip) error {
	if payslip.Month < 1 || payslip.Month > 12 {
		return fmt.Errorf("payslip month out of range")
	}
	if payslip.Year < 2000 {
		return fmt.Errorf("payslip year out of range")
	}
	if payslip.Gross < 0 || payslip.Deductions < 0 {
		return fmt.Errorf("payslip amounts cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateRequisition(requisition model.Requisition) error {
	if requisition.Title == "" {
		return fmt.Errorf("requisition title cannot be empty")
	}
	if requisition.Amount <= 0 {
		return fmt.Errorf("requisition amount must be positive")
	}
	return nil
}
