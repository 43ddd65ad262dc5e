package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RollWhite  = "white"
	RollSeeded = "seeded"
)

// RollVariety stores the price of ONE roll half. Orders count halves,
// so cost is always halves times this price.
type RollVariety struct {
	gorm.Model
	Code         string          `gorm:"uniqueIndex;not null" json:"code"`
	Name         string          `gorm:"not null" json:"name"`
	PricePerHalf decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"pricePerHalf"`
}
