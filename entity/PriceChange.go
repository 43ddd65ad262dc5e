package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ComponentRoll   = "roll"
	ComponentLunch  = "lunch"
	ComponentEgg    = "egg"
	ComponentCoffee = "coffee"
)

// PriceChange is an append-only event written for every price update.
// Repricing of existing orders derives its deltas from OldPrice and
// NewPrice, so replaying the same change moves nothing twice.
type PriceChange struct {
	gorm.Model
	// Zero for roll changes, which apply to every department.
	DepartmentID  uint   `gorm:"index" json:"departmentId"`
	Component     string `gorm:"not null" json:"component"`
	RollVarietyID uint   `json:"rollVarietyId,omitempty"`

	OldPrice  decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"oldPrice"`
	NewPrice  decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"newPrice"`
	ChangedBy string          `json:"changedBy"`
}
