package entity

import (
	"gorm.io/gorm"
)

// One row per ordered roll half.
type OrderTopping struct {
	gorm.Model
	OrderID   uint    `gorm:"index;not null" json:"orderId"`
	ToppingID uint    `gorm:"not null" json:"toppingId"`
	Topping   Topping `json:"-"`
}
