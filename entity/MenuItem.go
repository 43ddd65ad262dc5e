package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ItemKindDrink = "drinks"
	ItemKindSweet = "sweets"
)

// MenuItem is a drink or sweet a department offers. Each department
// maintains its own list and prices.
type MenuItem struct {
	gorm.Model
	DepartmentID uint       `gorm:"index;not null" json:"departmentId"`
	Department   Department `json:"-"`

	Kind  string          `gorm:"not null" json:"kind"`
	Name  string          `gorm:"not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"price"`
}
