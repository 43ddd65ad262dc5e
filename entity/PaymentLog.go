package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentLog is the append-only audit trail of balance clearings.
// Rows are never updated or deleted.
type PaymentLog struct {
	gorm.Model
	EmployeeID   uint `gorm:"index;not null" json:"employeeId"`
	DepartmentID uint `gorm:"not null" json:"departmentId"`

	BalanceType string          `gorm:"not null" json:"balanceType"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"amount"`
	AdminName   string          `json:"adminName"`
}
