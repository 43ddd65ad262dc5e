package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BalanceBreakfast    = "breakfast"
	BalanceDrinksSweets = "drinks_sweets"
)

// Employee carries the two main balances against its home department.
// Debt owed to other departments lives in Subaccount rows. Version
// guards the balance-rewriting operations (reset, department move).
type Employee struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	PINHash string `gorm:"not null" json:"-"`
	Role    string `gorm:"not null;default:employee" json:"role"`

	DepartmentID uint       `gorm:"index" json:"departmentId"`
	Department   Department `json:"-"`

	BreakfastBalance    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"breakfastBalance"`
	DrinksSweetsBalance decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"drinksSweetsBalance"`

	Version uint `gorm:"not null;default:0" json:"-"`

	Subaccounts []Subaccount `json:"-"`
}
