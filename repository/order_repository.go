package repository

import (
	"errors"
	"time"

	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) SaveOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetActiveBreakfast finds the single non-cancelled breakfast order for
// (employee, department, date), if any.
func (r *OrderRepository) GetActiveBreakfast(tx *gorm.DB, employeeID, deptID uint, date string) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where(
		"employee_id = ? AND department_id = ? AND order_date = ? AND order_type = ? AND is_cancelled = ?",
		employeeID, deptID, date, entity.OrderBreakfast, false,
	).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) MarkCancelled(tx *gorm.DB, o *entity.Order, actor string) error {
	now := time.Now()
	o.IsCancelled = true
	o.CancelledAt = &now
	o.CancelledBy = actor
	return tx.Model(o).Updates(map[string]any{
		"is_cancelled": true,
		"cancelled_at": now,
		"cancelled_by": actor,
	}).Error
}

// HardDelete removes the order and its child rows entirely.
func (r *OrderRepository) HardDelete(tx *gorm.DB, orderID uint) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderTopping{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
}

// ---------------- Recalculation / aggregation scopes ----------------

// ListActiveBreakfastForDept returns the non-cancelled breakfast orders
// of one department on one day. The recalculation and sponsoring scopes.
func (r *OrderRepository) ListActiveBreakfastForDept(tx *gorm.DB, deptID uint, date string) ([]entity.Order, error) {
	var out []entity.Order
	err := tx.Where(
		"department_id = ? AND order_date = ? AND order_type = ? AND is_cancelled = ?",
		deptID, date, entity.OrderBreakfast, false,
	).Order("id").Find(&out).Error
	return out, err
}

// ListActiveBreakfastAll is the scope for a roll price change: roll
// varieties are shared, so every department's day is affected.
func (r *OrderRepository) ListActiveBreakfastAll(tx *gorm.DB, date string) ([]entity.Order, error) {
	var out []entity.Order
	err := tx.Where(
		"order_date = ? AND order_type = ? AND is_cancelled = ?",
		date, entity.OrderBreakfast, false,
	).Order("id").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListActiveForDeptDate(tx *gorm.DB, deptID uint, date string) ([]entity.Order, error) {
	var out []entity.Order
	err := tx.Where(
		"department_id = ? AND order_date = ? AND is_cancelled = ?",
		deptID, date, false,
	).Order("id").Find(&out).Error
	return out, err
}

type OrderSummary struct {
	ID           uint            `json:"id"`
	DepartmentID uint            `json:"departmentId"`
	OrderDate    string          `json:"orderDate"`
	OrderType    string          `json:"orderType"`
	RecordedCost decimal.Decimal `json:"recordedCost"`
	IsCancelled  bool            `json:"isCancelled"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForEmployee(employeeID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, department_id, order_date, order_type, recorded_cost, is_cancelled, created_at").
		Where("employee_id = ?", employeeID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ---------------- Order children ----------------

func (r *OrderRepository) ReplaceToppings(tx *gorm.DB, orderID uint, toppingIDs []uint) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderTopping{}).Error; err != nil {
		return err
	}
	for _, id := range toppingIDs {
		if err := tx.Create(&entity.OrderTopping{OrderID: orderID, ToppingID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetOrderToppings(orderID uint) ([]entity.OrderTopping, error) {
	var tops []entity.OrderTopping
	err := r.DB.Where("order_id = ?", orderID).Find(&tops).Error
	return tops, err
}

// ---------------- Validations / helpers ----------------

func (r *OrderRepository) ToppingsExist(ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	distinct := map[uint]struct{}{}
	for _, id := range ids {
		distinct[id] = struct{}{}
	}
	keys := make([]uint, 0, len(distinct))
	for id := range distinct {
		keys = append(keys, id)
	}
	var cnt int64
	if err := r.DB.Model(&entity.Topping{}).Where("id IN ?", keys).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt == int64(len(keys)), nil
}

// GetMenuItemsForDept loads the requested items and checks they belong
// to the department and kind.
func (r *OrderRepository) GetMenuItemsForDept(deptID uint, kind string, ids []uint) (map[uint]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.DB.Where("id IN ? AND department_id = ? AND kind = ?", ids, deptID, kind).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]entity.MenuItem, len(items))
	for _, it := range items {
		out[it.ID] = it
	}
	return out, nil
}
