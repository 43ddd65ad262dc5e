package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SponsorRollsEggs = "rolls_eggs"
	SponsorLunch     = "lunch"
)

// SponsorshipMarker records a resolved sponsoring. The unique index is
// the guard against sponsoring the same scope twice.
type SponsorshipMarker struct {
	gorm.Model
	DepartmentID uint   `gorm:"uniqueIndex:idx_sponsor_scope;not null" json:"departmentId"`
	OrderDate    string `gorm:"size:10;uniqueIndex:idx_sponsor_scope;not null" json:"orderDate"`
	Category     string `gorm:"uniqueIndex:idx_sponsor_scope;not null" json:"category"`

	SponsorEmployeeID uint            `gorm:"not null" json:"sponsorEmployeeId"`
	TotalSponsored    decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"totalSponsored"`
}
