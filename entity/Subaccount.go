package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subaccount tracks what an employee owes a department that is not
// their home department, split the same way as the main balances.
// At most one row per (employee, department) pair.
type Subaccount struct {
	gorm.Model
	EmployeeID   uint `gorm:"uniqueIndex:idx_sub_emp_dept;not null" json:"employeeId"`
	DepartmentID uint `gorm:"uniqueIndex:idx_sub_emp_dept;not null" json:"departmentId"`

	BreakfastBalance    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"breakfastBalance"`
	DrinksSweetsBalance decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"drinksSweetsBalance"`
}
