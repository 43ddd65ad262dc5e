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

// PricingService recalculates today's active orders after an admin
// changes a priced component. Deltas are computed against each order's
// own recorded component cost, never against a fresh recomputation, so
// running the same change twice charges nothing the second time.
type PricingService struct {
	DB          *gorm.DB
	OrderRepo   *repository.OrderRepository
	MenuRepo    *repository.MenuRepository
	SponsorRepo *repository.SponsorshipRepository
	Ledger      *LedgerService
}

func NewPricingService(db *gorm.DB, orderRepo *repository.OrderRepository, menuRepo *repository.MenuRepository, sponsorRepo *repository.SponsorshipRepository, ledger *LedgerService) *PricingService {
	return &PricingService{DB: db, OrderRepo: orderRepo, MenuRepo: menuRepo, SponsorRepo: sponsorRepo, Ledger: ledger}
}

type UpdatePriceReq struct {
	DepartmentID uint   `json:"departmentId"` // required for lunch/egg/coffee
	Component    string `json:"component" binding:"required"`
	RollCode     string `json:"rollCode"` // required for component "roll"
	NewPrice     string `json:"newPrice" binding:"required"`
}

type UpdatePriceRes struct {
	OrdersAffected int `json:"ordersAffected"`
}

// UpdatePriceSetting writes a versioned price-change event, updates the
// current price, and reprices today's non-cancelled orders in scope.
// Cancelled orders and orders from other days are never touched.
func (s *PricingService) UpdatePriceSetting(req *UpdatePriceReq, actor string) (*UpdatePriceRes, error) {
	newPrice, err := decimal.NewFromString(req.NewPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: bad price %q", apperr.ErrValidation, req.NewPrice)
	}
	if newPrice.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	}

	var out UpdatePriceRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		switch req.Component {
		case entity.ComponentRoll:
			return s.updateRollPrice(tx, req.RollCode, newPrice, actor, &out)
		case entity.ComponentLunch, entity.ComponentEgg, entity.ComponentCoffee:
			if req.DepartmentID == 0 {
				return fmt.Errorf("%w: departmentId is required for %s", apperr.ErrValidation, req.Component)
			}
			return s.updateDeptPrice(tx, req.DepartmentID, req.Component, newPrice, actor, &out)
		default:
			return fmt.Errorf("%w: unknown component %q", apperr.ErrValidation, req.Component)
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PricingService) updateRollPrice(tx *gorm.DB, code string, newPrice decimal.Decimal, actor string, out *UpdatePriceRes) error {
	variety, err := s.MenuRepo.GetRollVarietyByCode(tx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("roll variety %q: %w", code, apperr.ErrNotFound)
		}
		return err
	}
	oldPrice := variety.PricePerHalf

	event := &entity.PriceChange{
		Component:     entity.ComponentRoll,
		RollVarietyID: variety.ID,
		OldPrice:      oldPrice,
		NewPrice:      newPrice,
		ChangedBy:     actor,
	}
	if err := s.MenuRepo.CreatePriceChange(tx, event); err != nil {
		return err
	}
	if err := s.MenuRepo.UpdateRollPrice(tx, variety.ID, newPrice); err != nil {
		return err
	}

	// Roll varieties are shared, so every department's today is in scope.
	orders, err := s.OrderRepo.ListActiveBreakfastAll(tx, utils.Today())
	if err != nil {
		return err
	}
	// Sponsored rolls were absorbed by the sponsor and zeroed on the
	// orders; repricing them would bill the sponsored employees again.
	markers, err := s.SponsorRepo.ListMarkersForDate(tx, utils.Today(), entity.SponsorRollsEggs)
	if err != nil {
		return err
	}
	sponsored := make(map[uint]uint, len(markers)) // dept -> sponsor
	for _, m := range markers {
		sponsored[m.DepartmentID] = m.SponsorEmployeeID
	}

	perHalfDelta := newPrice.Sub(oldPrice)
	for i := range orders {
		order := &orders[i]
		if sponsorID, ok := sponsored[order.DepartmentID]; ok && order.EmployeeID != sponsorID {
			continue
		}
		halves := 0
		switch code {
		case entity.RollWhite:
			halves = order.WhiteHalves
		case entity.RollSeeded:
			halves = order.SeededHalves
		}
		if halves == 0 {
			continue
		}
		delta := perHalfDelta.Mul(decimal.NewFromInt(int64(halves)))
		if delta.IsZero() {
			continue
		}
		order.RollsCost = order.RollsCost.Add(delta)
		order.RecordedCost = order.RecordedCost.Add(delta)
		if err := s.applyRepriceDelta(tx, order, delta); err != nil {
			return err
		}
		out.OrdersAffected++
	}
	return nil
}

func (s *PricingService) updateDeptPrice(tx *gorm.DB, deptID uint, component string, newPrice decimal.Decimal, actor string, out *UpdatePriceRes) error {
	settings, err := s.MenuRepo.GetSettings(tx, deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("department %d settings: %w", deptID, apperr.ErrNotFound)
		}
		return err
	}

	var oldPrice decimal.Decimal
	var column string
	switch component {
	case entity.ComponentLunch:
		oldPrice, column = settings.LunchPrice, "lunch_price"
	case entity.ComponentEgg:
		oldPrice, column = settings.EggPrice, "egg_price"
	case entity.ComponentCoffee:
		oldPrice, column = settings.CoffeePrice, "coffee_price"
	}

	event := &entity.PriceChange{
		DepartmentID: deptID,
		Component:    component,
		OldPrice:     oldPrice,
		NewPrice:     newPrice,
		ChangedBy:    actor,
	}
	if err := s.MenuRepo.CreatePriceChange(tx, event); err != nil {
		return err
	}
	if err := s.MenuRepo.UpdateSettingsPrice(tx, deptID, column, newPrice); err != nil {
		return err
	}

	orders, err := s.OrderRepo.ListActiveBreakfastForDept(tx, deptID, utils.Today())
	if err != nil {
		return err
	}

	// Eggs belong to the rolls_eggs sponsoring category, lunch to
	// lunch. Once sponsored, the component cost sits with the sponsor;
	// only the sponsor's own order still carries it and gets repriced.
	var marker *entity.SponsorshipMarker
	switch component {
	case entity.ComponentEgg:
		if marker, err = s.SponsorRepo.GetMarker(tx, deptID, utils.Today(), entity.SponsorRollsEggs); err != nil {
			return err
		}
	case entity.ComponentLunch:
		if marker, err = s.SponsorRepo.GetMarker(tx, deptID, utils.Today(), entity.SponsorLunch); err != nil {
			return err
		}
	}

	for i := range orders {
		order := &orders[i]
		if marker != nil && order.EmployeeID != marker.SponsorEmployeeID {
			continue
		}
		var delta decimal.Decimal
		switch component {
		case entity.ComponentLunch:
			if !order.HasLunch {
				continue
			}
			delta = newPrice.Sub(order.LunchCost)
			order.LunchCost = newPrice
		case entity.ComponentEgg:
			if order.Eggs == 0 {
				continue
			}
			newCost := newPrice.Mul(decimal.NewFromInt(int64(order.Eggs)))
			delta = newCost.Sub(order.EggsCost)
			order.EggsCost = newCost
		case entity.ComponentCoffee:
			if !order.HasCoffee {
				continue
			}
			delta = newPrice.Sub(order.CoffeeCost)
			order.CoffeeCost = newPrice
		}
		if delta.IsZero() {
			continue
		}
		order.RecordedCost = order.RecordedCost.Add(delta)
		if err := s.applyRepriceDelta(tx, order, delta); err != nil {
			return err
		}
		out.OrdersAffected++
	}
	return nil
}

func (s *PricingService) applyRepriceDelta(tx *gorm.DB, order *entity.Order, delta decimal.Decimal) error {
	if err := s.Ledger.ApplyDelta(tx, order.EmployeeID, entity.BalanceBreakfast, delta, order.DepartmentID); err != nil {
		return err
	}
	return s.OrderRepo.SaveOrder(tx, order)
}

func (s *PricingService) PriceHistory(deptID uint, limit int) ([]entity.PriceChange, error) {
	return s.MenuRepo.ListPriceChanges(deptID, limit)
}
