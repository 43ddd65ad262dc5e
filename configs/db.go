package configs

import (
	"github.com/creativeyMedia/fwkantine/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Department{}, &entity.DepartmentSettings{},
		&entity.Employee{}, &entity.Subaccount{},
		&entity.RollVariety{}, &entity.Topping{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderTopping{}, &entity.OrderItem{},
		&entity.PriceChange{},
		&entity.PaymentLog{},
		&entity.SponsorshipMarker{},
	)
}
