package repository

import (
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Roll varieties ----------------

func (r *MenuRepository) ListRollVarieties(tx *gorm.DB) ([]entity.RollVariety, error) {
	var out []entity.RollVariety
	err := tx.Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetRollVarietyByCode(tx *gorm.DB, code string) (*entity.RollVariety, error) {
	var v entity.RollVariety
	if err := tx.Where("code = ?", code).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *MenuRepository) UpdateRollPrice(tx *gorm.DB, varietyID uint, price decimal.Decimal) error {
	return tx.Model(&entity.RollVariety{}).Where("id = ?", varietyID).
		Update("price_per_half", price).Error
}

// ---------------- Department settings ----------------

func (r *MenuRepository) GetSettings(tx *gorm.DB, deptID uint) (*entity.DepartmentSettings, error) {
	var s entity.DepartmentSettings
	if err := tx.Where("department_id = ?", deptID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MenuRepository) UpdateSettingsPrice(tx *gorm.DB, deptID uint, column string, price decimal.Decimal) error {
	return tx.Model(&entity.DepartmentSettings{}).Where("department_id = ?", deptID).
		Update(column, price).Error
}

// ---------------- Price change events ----------------

func (r *MenuRepository) CreatePriceChange(tx *gorm.DB, pc *entity.PriceChange) error {
	return tx.Create(pc).Error
}

func (r *MenuRepository) ListPriceChanges(deptID uint, limit int) ([]entity.PriceChange, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.PriceChange
	q := r.DB.Order("id DESC").Limit(limit)
	if deptID != 0 {
		q = q.Where("department_id = ?", deptID)
	}
	err := q.Find(&out).Error
	return out, err
}

// ---------------- Toppings / menu items ----------------

func (r *MenuRepository) ListToppings() ([]entity.Topping, error) {
	var out []entity.Topping
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateTopping(t *entity.Topping) error {
	return r.DB.Create(t).Error
}

func (r *MenuRepository) ListMenuItems(deptID uint, kind string) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	q := r.DB.Where("department_id = ?", deptID).Order("id")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
