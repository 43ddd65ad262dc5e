package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderBreakfast = "breakfast"
	OrderDrinks    = "drinks"
	OrderSweets    = "sweets"
)

type Order struct {
	gorm.Model
	EmployeeID uint     `gorm:"index" json:"employeeId"`
	Employee   Employee `json:"-"`

	DepartmentID uint       `gorm:"index" json:"departmentId"`
	Department   Department `json:"-"`

	// Calendar day the order belongs to, department-local, YYYY-MM-DD.
	OrderDate string `gorm:"size:10;index;not null" json:"orderDate"`
	OrderType string `gorm:"not null" json:"orderType"`

	// Breakfast payload. White + seeded must sum to TotalHalves.
	TotalHalves  int  `json:"totalHalves"`
	WhiteHalves  int  `json:"whiteHalves"`
	SeededHalves int  `json:"seededHalves"`
	HasLunch     bool `json:"hasLunch"`
	Eggs         int  `json:"eggs"`
	HasCoffee    bool `json:"hasCoffee"`

	// Cost snapshot per component as last charged. RecordedCost is the
	// sum of these and is what cancel/delete reverses, never a fresh
	// recomputation from current prices.
	RollsCost    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"rollsCost"`
	EggsCost     decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"eggsCost"`
	CoffeeCost   decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"coffeeCost"`
	LunchCost    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"lunchCost"`
	RecordedCost decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"recordedCost"`

	IsCancelled bool       `gorm:"index;not null;default:false" json:"isCancelled"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy string     `json:"cancelledBy,omitempty"`

	Toppings []OrderTopping `json:"-"`
	Items    []OrderItem    `json:"-"`
}

// BalanceType tells which employee balance this order's cost lands on.
func (o *Order) BalanceType() string {
	if o.OrderType == OrderBreakfast {
		return BalanceBreakfast
	}
	return BalanceDrinksSweets
}
