package configs

import (
	"log"

	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pin := getEnv("ADMIN_PIN", "")
	if email == "" || pin == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PIN")
		return nil
	}

	var count int64
	db.Model(&entity.Employee{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	admin := entity.Employee{
		Email:   email,
		PINHash: string(hash),
		Name:    "Kantinenwart",
		Role:    "admin",
	}
	return db.Create(&admin).Error
}

// Seed the departments, roll varieties, toppings and default prices a
// fresh install needs. Prices are only written on first creation; an
// admin's later changes are never clobbered by a restart.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{
		"1. Wachabteilung", "2. Wachabteilung", "3. Wachabteilung", "4. Wachabteilung",
	} {
		dept := entity.Department{Name: name}
		if err := db.Where(entity.Department{Name: name}).FirstOrCreate(&dept).Error; err != nil {
			return err
		}
		var settings entity.DepartmentSettings
		if err := db.Where(entity.DepartmentSettings{DepartmentID: dept.ID}).
			Attrs(entity.DepartmentSettings{
				LunchPrice:  decimal.RequireFromString("4.00"),
				EggPrice:    decimal.RequireFromString("0.50"),
				CoffeePrice: decimal.RequireFromString("1.00"),
			}).FirstOrCreate(&settings).Error; err != nil {
			return err
		}
	}

	for _, v := range []entity.RollVariety{
		{Code: entity.RollWhite, Name: "Helles Brötchen", PricePerHalf: decimal.RequireFromString("0.50")},
		{Code: entity.RollSeeded, Name: "Körnerbrötchen", PricePerHalf: decimal.RequireFromString("0.60")},
	} {
		var variety entity.RollVariety
		if err := db.Where(entity.RollVariety{Code: v.Code}).
			Attrs(entity.RollVariety{Name: v.Name, PricePerHalf: v.PricePerHalf}).
			FirstOrCreate(&variety).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"Butter", "Marmelade", "Käse", "Schinken", "Leberwurst"} {
		var top entity.Topping
		if err := db.Where(entity.Topping{Name: name}).FirstOrCreate(&top).Error; err != nil {
			return err
		}
	}

	return nil
}
