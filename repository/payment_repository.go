package repository

import (
	"github.com/creativeyMedia/fwkantine/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// Append-only: there is deliberately no update or delete here.
func (r *PaymentRepository) CreateLog(tx *gorm.DB, p *entity.PaymentLog) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) ListForEmployee(employeeID uint) ([]entity.PaymentLog, error) {
	var out []entity.PaymentLog
	err := r.DB.Where("employee_id = ?", employeeID).
		Order("id DESC").Find(&out).Error
	return out, err
}
