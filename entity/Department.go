package entity

import (
	"gorm.io/gorm"
)

type Department struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Employees []Employee         `json:"-"`
	Settings  DepartmentSettings `json:"-"`
}
