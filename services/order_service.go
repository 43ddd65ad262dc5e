package services

import (
	"errors"
	"fmt"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService owns the lifecycle of daily orders and their cost
// bookkeeping. Every cost it charges or reverses goes through the
// ledger in the same transaction as the order write.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Ledger   *LedgerService
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, ledger *LedgerService) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Ledger: ledger}
}

// ----- DTOs from Controller -----

type BreakfastPayload struct {
	TotalHalves  int    `json:"totalHalves"`
	WhiteHalves  int    `json:"whiteHalves"`
	SeededHalves int    `json:"seededHalves"`
	ToppingIDs   []uint `json:"toppingIds"`
	HasLunch     bool   `json:"hasLunch"`
	Eggs         int    `json:"eggs"`
	HasCoffee    bool   `json:"hasCoffee"`
}

type ItemLine struct {
	MenuItemID uint `json:"menuItemId"`
	Qty        int  `json:"qty"`
}

type SubmitOrderReq struct {
	DepartmentID uint              `json:"departmentId" binding:"required"`
	Date         string            `json:"date"` // YYYY-MM-DD, empty = today
	OrderType    string            `json:"orderType" binding:"required"`
	Breakfast    *BreakfastPayload `json:"breakfast,omitempty"`
	Items        []ItemLine        `json:"items,omitempty"`
}

// ----- Submit (create or same-day edit) -----

// Submit validates the payload, prices it against the current menu, and
// either inserts a new order or, for breakfast, edits the existing
// non-cancelled order of that day. The balance delta is the difference
// between the new cost and whatever was charged before.
func (s *OrderService) Submit(employeeID uint, req *SubmitOrderReq) (*entity.Order, error) {
	date, ok := utils.NormalizeDate(req.Date)
	if !ok {
		return nil, fmt.Errorf("%w: bad date %q", apperr.ErrValidation, req.Date)
	}

	switch req.OrderType {
	case entity.OrderBreakfast:
		if req.Breakfast == nil {
			return nil, fmt.Errorf("%w: breakfast payload is required", apperr.ErrValidation)
		}
		return s.submitBreakfast(employeeID, req.DepartmentID, date, req.Breakfast)
	case entity.OrderDrinks, entity.OrderSweets:
		if len(req.Items) == 0 {
			return nil, fmt.Errorf("%w: items are required", apperr.ErrValidation)
		}
		return s.submitItems(employeeID, req.DepartmentID, date, req.OrderType, req.Items)
	default:
		return nil, fmt.Errorf("%w: unknown order type %q", apperr.ErrValidation, req.OrderType)
	}
}

func (s *OrderService) submitBreakfast(employeeID, deptID uint, date string, p *BreakfastPayload) (*entity.Order, error) {
	if p.TotalHalves <= 0 {
		return nil, fmt.Errorf("%w: total halves must be positive", apperr.ErrValidation)
	}
	if p.WhiteHalves < 0 || p.SeededHalves < 0 || p.Eggs < 0 {
		return nil, fmt.Errorf("%w: negative quantities", apperr.ErrValidation)
	}
	if p.WhiteHalves+p.SeededHalves != p.TotalHalves {
		return nil, fmt.Errorf("%w: white + seeded halves must equal total halves", apperr.ErrValidation)
	}
	if len(p.ToppingIDs) != p.TotalHalves {
		return nil, fmt.Errorf("%w: one topping per half, got %d toppings for %d halves",
			apperr.ErrValidation, len(p.ToppingIDs), p.TotalHalves)
	}
	ok, err := s.Repo.ToppingsExist(p.ToppingIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: unknown topping", apperr.ErrValidation)
	}

	var out *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		costs, err := s.breakfastCosts(tx, deptID, p)
		if err != nil {
			return err
		}
		newCost := costs.RollsCost.Add(costs.EggsCost).Add(costs.CoffeeCost).Add(costs.LunchCost)

		existing, err := s.Repo.GetActiveBreakfast(tx, employeeID, deptID, date)
		if err != nil {
			return err
		}

		prev := decimal.Zero
		order := existing
		if order == nil {
			order = &entity.Order{
				EmployeeID:   employeeID,
				DepartmentID: deptID,
				OrderDate:    date,
				OrderType:    entity.OrderBreakfast,
			}
		} else {
			prev = order.RecordedCost
		}

		order.TotalHalves = p.TotalHalves
		order.WhiteHalves = p.WhiteHalves
		order.SeededHalves = p.SeededHalves
		order.HasLunch = p.HasLunch
		order.Eggs = p.Eggs
		order.HasCoffee = p.HasCoffee
		order.RollsCost = costs.RollsCost
		order.EggsCost = costs.EggsCost
		order.CoffeeCost = costs.CoffeeCost
		order.LunchCost = costs.LunchCost
		order.RecordedCost = newCost

		if existing == nil {
			if err := s.Repo.CreateOrder(tx, order); err != nil {
				return err
			}
		} else {
			if err := s.Repo.SaveOrder(tx, order); err != nil {
				return err
			}
		}
		if err := s.Repo.ReplaceToppings(tx, order.ID, p.ToppingIDs); err != nil {
			return err
		}

		delta := newCost.Sub(prev)
		if err := s.Ledger.ApplyDelta(tx, employeeID, entity.BalanceBreakfast, delta, deptID); err != nil {
			return err
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) submitItems(employeeID, deptID uint, date, kind string, lines []ItemLine) (*entity.Order, error) {
	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if l.Qty < 0 {
			return nil, fmt.Errorf("%w: negative quantity for item %d", apperr.ErrValidation, l.MenuItemID)
		}
		if l.Qty == 0 {
			continue
		}
		ids = append(ids, l.MenuItemID)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no items with positive quantity", apperr.ErrValidation)
	}
	items, err := s.Repo.GetMenuItemsForDept(deptID, kind, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := items[id]; !ok {
			return nil, fmt.Errorf("%w: item %d not on the %s menu of this department", apperr.ErrValidation, id, kind)
		}
	}

	var out *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := &entity.Order{
			EmployeeID:   employeeID,
			DepartmentID: deptID,
			OrderDate:    date,
			OrderType:    kind,
		}
		total := decimal.Zero
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		for _, l := range lines {
			if l.Qty == 0 {
				continue
			}
			it := items[l.MenuItemID]
			lineTotal := it.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.ID,
				Qty:        l.Qty,
				UnitPrice:  it.Price,
				Total:      lineTotal,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			total = total.Add(lineTotal)
		}
		order.RecordedCost = total
		if err := s.Repo.SaveOrder(tx, order); err != nil {
			return err
		}
		if err := s.Ledger.ApplyDelta(tx, employeeID, entity.BalanceDrinksSweets, total, deptID); err != nil {
			return err
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type componentCosts struct {
	RollsCost  decimal.Decimal
	EggsCost   decimal.Decimal
	CoffeeCost decimal.Decimal
	LunchCost  decimal.Decimal
}

// breakfastCosts prices the payload against the CURRENT per-half roll
// prices and department rates. Per-half prices are authoritative; no
// whole-roll price is ever halved or doubled here.
func (s *OrderService) breakfastCosts(tx *gorm.DB, deptID uint, p *BreakfastPayload) (*componentCosts, error) {
	white, err := s.MenuRepo.GetRollVarietyByCode(tx, entity.RollWhite)
	if err != nil {
		return nil, err
	}
	seeded, err := s.MenuRepo.GetRollVarietyByCode(tx, entity.RollSeeded)
	if err != nil {
		return nil, err
	}
	settings, err := s.MenuRepo.GetSettings(tx, deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("department %d: %w", deptID, apperr.ErrNotFound)
		}
		return nil, err
	}

	costs := &componentCosts{
		RollsCost: white.PricePerHalf.Mul(decimal.NewFromInt(int64(p.WhiteHalves))).
			Add(seeded.PricePerHalf.Mul(decimal.NewFromInt(int64(p.SeededHalves)))),
		EggsCost: settings.EggPrice.Mul(decimal.NewFromInt(int64(p.Eggs))),
	}
	if p.HasCoffee {
		costs.CoffeeCost = settings.CoffeePrice
	}
	if p.HasLunch {
		costs.LunchCost = settings.LunchPrice
	}
	return costs, nil
}

// ----- Cancel / Delete -----

// Cancel reverses exactly the recorded cost and marks the order
// cancelled. The record and its RecordedCost stay for audit.
func (s *OrderService) Cancel(orderID uint, actor string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
			}
			return err
		}
		if order.IsCancelled {
			return fmt.Errorf("order %d: %w", orderID, apperr.ErrAlreadyCancelled)
		}
		if err := s.Ledger.ApplyDelta(tx, order.EmployeeID, order.BalanceType(), order.RecordedCost.Neg(), order.DepartmentID); err != nil {
			return err
		}
		return s.Repo.MarkCancelled(tx, order, actor)
	})
}

// Delete is the admin hard delete: same reversal as cancel, but the
// record is removed.
func (s *OrderService) Delete(orderID uint, actor string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
			}
			return err
		}
		// a cancelled order was already reversed at cancel time
		if !order.IsCancelled {
			if err := s.Ledger.ApplyDelta(tx, order.EmployeeID, order.BalanceType(), order.RecordedCost.Neg(), order.DepartmentID); err != nil {
				return err
			}
		}
		return s.Repo.HardDelete(tx, order.ID)
	})
}

// ----- Reads -----

func (s *OrderService) ListForEmployee(employeeID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForEmployee(employeeID, limit)
}

type OrderDetail struct {
	Order    entity.Order          `json:"order"`
	Toppings []entity.OrderTopping `json:"toppings,omitempty"`
	Items    []entity.OrderItem    `json:"items,omitempty"`
}

func (s *OrderService) DetailForEmployee(employeeID, orderID uint) (*OrderDetail, error) {
	order, err := s.Repo.GetOrder(s.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
		}
		return nil, err
	}
	if order.EmployeeID != employeeID {
		return nil, fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
	}
	detail := &OrderDetail{Order: *order}
	if order.OrderType == entity.OrderBreakfast {
		if detail.Toppings, err = s.Repo.GetOrderToppings(order.ID); err != nil {
			return nil, err
		}
	} else {
		if detail.Items, err = s.Repo.GetOrderItems(order.ID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}
