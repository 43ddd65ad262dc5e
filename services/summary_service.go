package services

import (
	"fmt"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SummaryService is the read-only daily aggregation: the shopping list
// for whoever buys the rolls, and the per-employee cost breakdown.
type SummaryService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	EmpRepo   *repository.EmployeeRepository
}

func NewSummaryService(db *gorm.DB, orderRepo *repository.OrderRepository, empRepo *repository.EmployeeRepository) *SummaryService {
	return &SummaryService{DB: db, OrderRepo: orderRepo, EmpRepo: empRepo}
}

type ShoppingList struct {
	WhiteHalves  int            `json:"whiteHalves"`
	SeededHalves int            `json:"seededHalves"`
	WhiteRolls   int            `json:"wholeWhiteRolls"`
	SeededRolls  int            `json:"wholeSeededRolls"`
	Eggs         int            `json:"eggs"`
	Coffees      int            `json:"coffees"`
	Lunches      int            `json:"lunches"`
	Items        map[string]int `json:"items"`
}

type EmployeeBreakdown struct {
	EmployeeID       uint            `json:"employeeId"`
	Name             string          `json:"name"`
	BreakfastCost    decimal.Decimal `json:"breakfastCost"`
	DrinksSweetsCost decimal.Decimal `json:"drinksSweetsCost"`
	Total            decimal.Decimal `json:"total"`
	Orders           int             `json:"orders"`
}

type DailySummary struct {
	DepartmentID uint                `json:"departmentId"`
	Date         string              `json:"date"`
	ShoppingList ShoppingList        `json:"shoppingList"`
	PerEmployee  []EmployeeBreakdown `json:"perEmployeeBreakdown"`
}

// DailySummary aggregates the day's non-cancelled orders of one
// department. Halves convert to whole rolls rounding up.
func (s *SummaryService) DailySummary(deptID uint, date string) (*DailySummary, error) {
	date, ok := utils.NormalizeDate(date)
	if !ok {
		return nil, fmt.Errorf("%w: bad date", apperr.ErrValidation)
	}
	exists, err := s.EmpRepo.DepartmentExists(deptID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("department %d: %w", deptID, apperr.ErrNotFound)
	}

	orders, err := s.OrderRepo.ListActiveForDeptDate(s.DB, deptID, date)
	if err != nil {
		return nil, err
	}

	out := &DailySummary{
		DepartmentID: deptID,
		Date:         date,
		ShoppingList: ShoppingList{Items: map[string]int{}},
	}

	type empAgg struct {
		breakfast    decimal.Decimal
		drinksSweets decimal.Decimal
		orders       int
	}
	perEmp := map[uint]*empAgg{}
	var empOrder []uint

	for i := range orders {
		order := &orders[i]

		agg, seen := perEmp[order.EmployeeID]
		if !seen {
			agg = &empAgg{breakfast: decimal.Zero, drinksSweets: decimal.Zero}
			perEmp[order.EmployeeID] = agg
			empOrder = append(empOrder, order.EmployeeID)
		}
		agg.orders++

		if order.OrderType == entity.OrderBreakfast {
			out.ShoppingList.WhiteHalves += order.WhiteHalves
			out.ShoppingList.SeededHalves += order.SeededHalves
			out.ShoppingList.Eggs += order.Eggs
			if order.HasCoffee {
				out.ShoppingList.Coffees++
			}
			if order.HasLunch {
				out.ShoppingList.Lunches++
			}
			agg.breakfast = agg.breakfast.Add(order.RecordedCost)
		} else {
			items, err := s.OrderRepo.GetOrderItems(order.ID)
			if err != nil {
				return nil, err
			}
			for _, it := range items {
				var m entity.MenuItem
				if err := s.DB.First(&m, it.MenuItemID).Error; err == nil {
					out.ShoppingList.Items[m.Name] += it.Qty
				}
			}
			agg.drinksSweets = agg.drinksSweets.Add(order.RecordedCost)
		}
	}

	// two halves per roll, partial halves still need a whole roll
	out.ShoppingList.WhiteRolls = (out.ShoppingList.WhiteHalves + 1) / 2
	out.ShoppingList.SeededRolls = (out.ShoppingList.SeededHalves + 1) / 2

	for _, id := range empOrder {
		agg := perEmp[id]
		emp, err := s.EmpRepo.Get(s.DB, id)
		name := ""
		if err == nil {
			name = emp.Name
		}
		out.PerEmployee = append(out.PerEmployee, EmployeeBreakdown{
			EmployeeID:       id,
			Name:             name,
			BreakfastCost:    agg.breakfast,
			DrinksSweetsCost: agg.drinksSweets,
			Total:            agg.breakfast.Add(agg.drinksSweets),
			Orders:           agg.orders,
		})
	}
	return out, nil
}
