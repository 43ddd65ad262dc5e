package repository

import (
	"fmt"

	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

// Maps a balance type to its column on employees/subaccounts.
func BalanceColumn(balanceType string) (string, error) {
	switch balanceType {
	case entity.BalanceBreakfast:
		return "breakfast_balance", nil
	case entity.BalanceDrinksSweets:
		return "drinks_sweets_balance", nil
	default:
		return "", fmt.Errorf("unknown balance type %q", balanceType)
	}
}

func (r *EmployeeRepository) Get(tx *gorm.DB, id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := tx.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("email = ?", email).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(e *entity.Employee) error {
	return r.DB.Create(e).Error
}

func (r *EmployeeRepository) DepartmentExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Department{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Balance writes ----------------

// AddToMainBalance applies a signed delta to one of the employee's main
// balance columns as a single atomic UPDATE, so concurrent deltas on
// the same employee never overwrite each other. It bumps the version,
// so a guarded write (reset, migration) that read the row before this
// delta landed fails its version check instead of destroying the delta.
func (r *EmployeeRepository) AddToMainBalance(tx *gorm.DB, employeeID uint, balanceType string, delta decimal.Decimal) error {
	col, err := BalanceColumn(balanceType)
	if err != nil {
		return err
	}
	res := tx.Model(&entity.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]any{
			col:       gorm.Expr(col+" + ?", delta),
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddToSubaccount applies a signed delta to the guest balance for
// (employee, department), creating the row if it does not exist yet.
func (r *EmployeeRepository) AddToSubaccount(tx *gorm.DB, employeeID, departmentID uint, balanceType string, delta decimal.Decimal) error {
	col, err := BalanceColumn(balanceType)
	if err != nil {
		return err
	}
	sub := entity.Subaccount{EmployeeID: employeeID, DepartmentID: departmentID}
	switch balanceType {
	case entity.BalanceBreakfast:
		sub.BreakfastBalance = delta
	case entity.BalanceDrinksSweets:
		sub.DrinksSweetsBalance = delta
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "department_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			col: gorm.Expr("subaccounts." + col + " + excluded." + col),
		}),
	}).Create(&sub).Error
}

// ZeroMainBalance sets the column to 0 under the employee's version
// guard. Returns false when another writer got there first.
func (r *EmployeeRepository) ZeroMainBalance(tx *gorm.DB, employeeID uint, balanceType string, version uint) (bool, error) {
	col, err := BalanceColumn(balanceType)
	if err != nil {
		return false, err
	}
	res := tx.Model(&entity.Employee{}).
		Where("id = ? AND version = ?", employeeID, version).
		Updates(map[string]any{
			col:       decimal.Zero,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *EmployeeRepository) ZeroSubaccountBalance(tx *gorm.DB, employeeID, departmentID uint, balanceType string, prior decimal.Decimal) (bool, error) {
	col, err := BalanceColumn(balanceType)
	if err != nil {
		return false, err
	}
	res := tx.Model(&entity.Subaccount{}).
		Where("employee_id = ? AND department_id = ? AND "+col+" = ?", employeeID, departmentID, prior).
		Update(col, decimal.Zero)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Subaccounts ----------------

func (r *EmployeeRepository) GetSubaccount(tx *gorm.DB, employeeID, departmentID uint) (*entity.Subaccount, error) {
	var sub entity.Subaccount
	err := tx.Where("employee_id = ? AND department_id = ?", employeeID, departmentID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *EmployeeRepository) ListSubaccounts(tx *gorm.DB, employeeID uint) ([]entity.Subaccount, error) {
	var subs []entity.Subaccount
	err := tx.Where("employee_id = ?", employeeID).Order("department_id").Find(&subs).Error
	return subs, err
}

// Hard delete: the unique (employee, department) index must stay free
// for a later guest order to recreate the row.
func (r *EmployeeRepository) DeleteSubaccount(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Subaccount{}, id).Error
}

// MoveGuarded rewrites home department and main balances in one
// version-checked UPDATE. Returns false on a version mismatch.
func (r *EmployeeRepository) MoveGuarded(tx *gorm.DB, employeeID, version, newDeptID uint, breakfast, drinksSweets decimal.Decimal) (bool, error) {
	res := tx.Model(&entity.Employee{}).
		Where("id = ? AND version = ?", employeeID, version).
		Updates(map[string]any{
			"department_id":         newDeptID,
			"breakfast_balance":     breakfast,
			"drinks_sweets_balance": drinksSweets,
			"version":               gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
