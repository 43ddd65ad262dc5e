package entity

import (
	"gorm.io/gorm"
)

// Toppings are free; one is picked per roll half.
type Topping struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
