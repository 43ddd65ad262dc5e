package services

import (
	"errors"
	"fmt"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerService is the single point of truth for balance mutation.
// Every order, recalculation, sponsoring and payment funnels its signed
// delta through ApplyDelta; nothing else writes balance columns.
type LedgerService struct {
	DB      *gorm.DB
	EmpRepo *repository.EmployeeRepository
}

func NewLedgerService(db *gorm.DB, empRepo *repository.EmployeeRepository) *LedgerService {
	return &LedgerService{DB: db, EmpRepo: empRepo}
}

// ApplyDelta adds a signed amount to the employee's balance of the
// given type, scoped to a department: the home department hits the main
// balance, any other department a subaccount (created on first use).
// The write is a single atomic UPDATE, so concurrent deltas against the
// same employee serialize instead of overwriting each other.
func (s *LedgerService) ApplyDelta(tx *gorm.DB, employeeID uint, balanceType string, delta decimal.Decimal, scopeDeptID uint) error {
	if delta.IsZero() {
		return nil
	}

	emp, err := s.EmpRepo.Get(tx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("employee %d: %w", employeeID, apperr.ErrNotFound)
		}
		return err
	}

	if emp.DepartmentID == scopeDeptID {
		if err := s.EmpRepo.AddToMainBalance(tx, employeeID, balanceType, delta); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("employee %d: %w", employeeID, apperr.ErrNotFound)
			}
			return err
		}
		return nil
	}
	return s.EmpRepo.AddToSubaccount(tx, employeeID, scopeDeptID, balanceType, delta)
}

// ResetBalance zeroes the resolved balance field and returns the value
// it held. The write is guarded (version on the employee row, value on
// the subaccount row); a lost race surfaces as ErrConflict so the
// caller can re-read and retry.
func (s *LedgerService) ResetBalance(tx *gorm.DB, employeeID uint, balanceType string, scopeDeptID uint) (decimal.Decimal, error) {
	emp, err := s.EmpRepo.Get(tx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("employee %d: %w", employeeID, apperr.ErrNotFound)
		}
		return decimal.Zero, err
	}

	if emp.DepartmentID == scopeDeptID {
		var prior decimal.Decimal
		switch balanceType {
		case entity.BalanceBreakfast:
			prior = emp.BreakfastBalance
		case entity.BalanceDrinksSweets:
			prior = emp.DrinksSweetsBalance
		default:
			return decimal.Zero, fmt.Errorf("%w: unknown balance type %q", apperr.ErrValidation, balanceType)
		}
		ok, err := s.EmpRepo.ZeroMainBalance(tx, employeeID, balanceType, emp.Version)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			return decimal.Zero, fmt.Errorf("employee %d balance reset: %w", employeeID, apperr.ErrConflict)
		}
		return prior, nil
	}

	sub, err := s.EmpRepo.GetSubaccount(tx, employeeID, scopeDeptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// nothing accrued there, nothing to clear
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	var prior decimal.Decimal
	switch balanceType {
	case entity.BalanceBreakfast:
		prior = sub.BreakfastBalance
	case entity.BalanceDrinksSweets:
		prior = sub.DrinksSweetsBalance
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown balance type %q", apperr.ErrValidation, balanceType)
	}
	if prior.IsZero() {
		return decimal.Zero, nil
	}
	ok, err := s.EmpRepo.ZeroSubaccountBalance(tx, employeeID, scopeDeptID, balanceType, prior)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, fmt.Errorf("employee %d subaccount reset: %w", employeeID, apperr.ErrConflict)
	}
	return prior, nil
}

// ---------------- Read API ----------------

type SubaccountBalance struct {
	DepartmentID        uint            `json:"departmentId"`
	BreakfastBalance    decimal.Decimal `json:"breakfastBalance"`
	DrinksSweetsBalance decimal.Decimal `json:"drinksSweetsBalance"`
}

type BalanceSnapshot struct {
	DepartmentID        uint                `json:"departmentId"`
	BreakfastBalance    decimal.Decimal     `json:"breakfastBalance"`
	DrinksSweetsBalance decimal.Decimal     `json:"drinksSweetsBalance"`
	Subaccounts         []SubaccountBalance `json:"subaccounts"`
}

// Total is the sum over main and all subaccount balances: everything
// the employee currently owes.
func (b *BalanceSnapshot) Total() decimal.Decimal {
	total := b.BreakfastBalance.Add(b.DrinksSweetsBalance)
	for _, sub := range b.Subaccounts {
		total = total.Add(sub.BreakfastBalance).Add(sub.DrinksSweetsBalance)
	}
	return total
}

func (s *LedgerService) BalancesOf(tx *gorm.DB, employeeID uint) (*BalanceSnapshot, error) {
	emp, err := s.EmpRepo.Get(tx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %d: %w", employeeID, apperr.ErrNotFound)
		}
		return nil, err
	}
	subs, err := s.EmpRepo.ListSubaccounts(tx, employeeID)
	if err != nil {
		return nil, err
	}
	snap := &BalanceSnapshot{
		DepartmentID:        emp.DepartmentID,
		BreakfastBalance:    emp.BreakfastBalance,
		DrinksSweetsBalance: emp.DrinksSweetsBalance,
	}
	for _, sub := range subs {
		snap.Subaccounts = append(snap.Subaccounts, SubaccountBalance{
			DepartmentID:        sub.DepartmentID,
			BreakfastBalance:    sub.BreakfastBalance,
			DrinksSweetsBalance: sub.DrinksSweetsBalance,
		})
	}
	return snap, nil
}
