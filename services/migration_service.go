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

// MigrationService moves an employee's home department. Balances are
// only relabeled between main and subaccount buckets; the total owed is
// identical before and after.
type MigrationService struct {
	DB      *gorm.DB
	EmpRepo *repository.EmployeeRepository
	Ledger  *LedgerService
}

func NewMigrationService(db *gorm.DB, empRepo *repository.EmployeeRepository, ledger *LedgerService) *MigrationService {
	return &MigrationService{DB: db, EmpRepo: empRepo, Ledger: ledger}
}

type MoveResult struct {
	OldBalances *BalanceSnapshot `json:"oldBalances"`
	NewBalances *BalanceSnapshot `json:"newBalances"`
}

// MoveEmployee folds the current main balances into a subaccount keyed
// by the old department (additive, migrations accumulate) and promotes
// an existing subaccount for the new department to the main balances.
// There is no automatic undo; moving back is just another move.
func (s *MigrationService) MoveEmployee(employeeID, newDeptID uint) (*MoveResult, error) {
	ok, err := s.EmpRepo.DepartmentExists(newDeptID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("department %d: %w", newDeptID, apperr.ErrNotFound)
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	result, err := s.moveInTx(tx, employeeID, newDeptID)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return nil, fmt.Errorf("%w: migration failed (%v) and rollback failed (%v)", apperr.ErrReconcileFailed, err, rbErr)
		}
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (s *MigrationService) moveInTx(tx *gorm.DB, employeeID, newDeptID uint) (*MoveResult, error) {
	emp, err := s.EmpRepo.Get(tx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %d: %w", employeeID, apperr.ErrNotFound)
		}
		return nil, err
	}
	if emp.DepartmentID == newDeptID {
		return nil, fmt.Errorf("%w: employee already belongs to department %d", apperr.ErrValidation, newDeptID)
	}
	oldDeptID := emp.DepartmentID

	before, err := s.Ledger.BalancesOf(tx, employeeID)
	if err != nil {
		return nil, err
	}

	// fold mains into the old department's subaccount, additively
	if !emp.BreakfastBalance.IsZero() {
		if err := s.EmpRepo.AddToSubaccount(tx, employeeID, oldDeptID, entity.BalanceBreakfast, emp.BreakfastBalance); err != nil {
			return nil, err
		}
	}
	if !emp.DrinksSweetsBalance.IsZero() {
		if err := s.EmpRepo.AddToSubaccount(tx, employeeID, oldDeptID, entity.BalanceDrinksSweets, emp.DrinksSweetsBalance); err != nil {
			return nil, err
		}
	}

	// promote an existing subaccount at the new department, if any
	newBreakfast, newDrinksSweets := decimal.Zero, decimal.Zero
	sub, err := s.EmpRepo.GetSubaccount(tx, employeeID, newDeptID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if sub != nil {
		newBreakfast = sub.BreakfastBalance
		newDrinksSweets = sub.DrinksSweetsBalance
		if err := s.EmpRepo.DeleteSubaccount(tx, sub.ID); err != nil {
			return nil, err
		}
	}

	ok, err := s.EmpRepo.MoveGuarded(tx, employeeID, emp.Version, newDeptID, newBreakfast, newDrinksSweets)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("employee %d migration: %w", employeeID, apperr.ErrConflict)
	}

	after, err := s.Ledger.BalancesOf(tx, employeeID)
	if err != nil {
		return nil, err
	}
	if !before.Total().Equal(after.Total()) {
		return nil, fmt.Errorf("%w: migration would change total owed from %s to %s",
			apperr.ErrReconcileFailed, before.Total(), after.Total())
	}
	return &MoveResult{OldBalances: before, NewBalances: after}, nil
}
