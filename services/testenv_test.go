package services

import (
	"fmt"
	"testing"

	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a fresh in-memory
// database seeded with two departments, three employees and a small
// menu. Roll prices are per half: white 0.375, seeded 0.40.
type testEnv struct {
	db *gorm.DB

	ledger    *LedgerService
	orders    *OrderService
	pricing   *PricingService
	sponsors  *SponsorService
	payments  *PaymentService
	migration *MigrationService
	summary   *SummaryService

	dept1, dept2     uint
	empA, empB, empC uint // A, B live in dept1; C in dept2
	toppings         []uint
	cola, cake       uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Department{}, &entity.DepartmentSettings{},
		&entity.Employee{}, &entity.Subaccount{},
		&entity.RollVariety{}, &entity.Topping{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderTopping{}, &entity.OrderItem{},
		&entity.PriceChange{},
		&entity.PaymentLog{},
		&entity.SponsorshipMarker{},
	))

	empRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	sponsorRepo := repository.NewSponsorshipRepository(db)

	env := &testEnv{db: db}
	env.ledger = NewLedgerService(db, empRepo)
	env.orders = NewOrderService(db, orderRepo, menuRepo, env.ledger)
	env.pricing = NewPricingService(db, orderRepo, menuRepo, sponsorRepo, env.ledger)
	env.sponsors = NewSponsorService(db, orderRepo, sponsorRepo, empRepo, env.ledger)
	env.payments = NewPaymentService(db, paymentRepo, env.ledger)
	env.migration = NewMigrationService(db, empRepo, env.ledger)
	env.summary = NewSummaryService(db, orderRepo, empRepo)

	// departments + settings
	d1 := entity.Department{Name: "1. Wachabteilung"}
	d2 := entity.Department{Name: "2. Wachabteilung"}
	require.NoError(t, db.Create(&d1).Error)
	require.NoError(t, db.Create(&d2).Error)
	env.dept1, env.dept2 = d1.ID, d2.ID

	require.NoError(t, db.Create(&entity.DepartmentSettings{
		DepartmentID: d1.ID,
		LunchPrice:   dec("4.00"),
		EggPrice:     dec("0.50"),
		CoffeePrice:  dec("1.00"),
	}).Error)
	require.NoError(t, db.Create(&entity.DepartmentSettings{
		DepartmentID: d2.ID,
		LunchPrice:   dec("3.50"),
		EggPrice:     dec("0.40"),
		CoffeePrice:  dec("0.80"),
	}).Error)

	// roll varieties, priced per half
	require.NoError(t, db.Create(&entity.RollVariety{
		Code: entity.RollWhite, Name: "Helles Brötchen", PricePerHalf: dec("0.375"),
	}).Error)
	require.NoError(t, db.Create(&entity.RollVariety{
		Code: entity.RollSeeded, Name: "Körnerbrötchen", PricePerHalf: dec("0.40"),
	}).Error)

	for _, name := range []string{"Butter", "Käse", "Marmelade"} {
		top := entity.Topping{Name: name}
		require.NoError(t, db.Create(&top).Error)
		env.toppings = append(env.toppings, top.ID)
	}

	cola := entity.MenuItem{DepartmentID: d1.ID, Kind: entity.ItemKindDrink, Name: "Cola", Price: dec("1.20")}
	cake := entity.MenuItem{DepartmentID: d1.ID, Kind: entity.ItemKindSweet, Name: "Kuchen", Price: dec("2.50")}
	require.NoError(t, db.Create(&cola).Error)
	require.NoError(t, db.Create(&cake).Error)
	env.cola, env.cake = cola.ID, cake.ID

	for _, e := range []struct {
		name  string
		dept  uint
		field *uint
	}{
		{"Anna", d1.ID, &env.empA},
		{"Bernd", d1.ID, &env.empB},
		{"Clara", d2.ID, &env.empC},
	} {
		emp := entity.Employee{
			Name: e.name, Email: fmt.Sprintf("%s@wache.example", e.name),
			DepartmentID: e.dept, Role: "employee",
		}
		require.NoError(t, db.Create(&emp).Error)
		*e.field = emp.ID
	}

	return env
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// requireDec asserts a decimal equals the literal, comparing by value
// so 1.15 and 1.150 match.
func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func (env *testEnv) employee(t *testing.T, id uint) *entity.Employee {
	t.Helper()
	var emp entity.Employee
	require.NoError(t, env.db.First(&emp, id).Error)
	return &emp
}

func (env *testEnv) order(t *testing.T, id uint) *entity.Order {
	t.Helper()
	var o entity.Order
	require.NoError(t, env.db.First(&o, id).Error)
	return &o
}

// breakfastReq builds a breakfast payload with toppings assigned
// round-robin, one per half.
func (env *testEnv) breakfastReq(deptID uint, white, seeded int, lunch bool, eggs int, coffee bool) *SubmitOrderReq {
	total := white + seeded
	tops := make([]uint, 0, total)
	for i := 0; i < total; i++ {
		tops = append(tops, env.toppings[i%len(env.toppings)])
	}
	return &SubmitOrderReq{
		DepartmentID: deptID,
		OrderType:    entity.OrderBreakfast,
		Breakfast: &BreakfastPayload{
			TotalHalves:  total,
			WhiteHalves:  white,
			SeededHalves: seeded,
			ToppingIDs:   tops,
			HasLunch:     lunch,
			Eggs:         eggs,
			HasCoffee:    coffee,
		},
	}
}
