package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// A drinks/sweets order line: snapshot of item price at order time.
type OrderItem struct {
	gorm.Model
	OrderID    uint     `gorm:"index;not null" json:"orderId"`
	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int             `gorm:"not null" json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"unitPrice"`
	Total     decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"total"`
}
