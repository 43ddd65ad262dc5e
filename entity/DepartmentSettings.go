package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepartmentSettings holds the prices each department sets for the
// breakfast add-ons. Roll prices live on RollVariety, shared by all.
type DepartmentSettings struct {
	gorm.Model
	DepartmentID uint `gorm:"uniqueIndex;not null" json:"departmentId"`

	LunchPrice  decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"lunchPrice"`
	EggPrice    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"eggPrice"`
	CoffeePrice decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"coffeePrice"`
}
