package services

import (
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService clears a balance and writes the audit trail entry.
type PaymentService struct {
	DB     *gorm.DB
	Repo   *repository.PaymentRepository
	Ledger *LedgerService
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, ledger *LedgerService) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, Ledger: ledger}
}

type RecordPaymentRes struct {
	AmountCleared decimal.Decimal `json:"amountCleared"`
}

// RecordPayment zeroes the resolved balance and appends the cleared
// amount to the payment log, in one transaction.
func (s *PaymentService) RecordPayment(employeeID uint, balanceType string, scopeDeptID uint, adminName string) (*RecordPaymentRes, error) {
	var out RecordPaymentRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		prior, err := s.Ledger.ResetBalance(tx, employeeID, balanceType, scopeDeptID)
		if err != nil {
			return err
		}
		entry := &entity.PaymentLog{
			EmployeeID:   employeeID,
			DepartmentID: scopeDeptID,
			BalanceType:  balanceType,
			Amount:       prior,
			AdminName:    adminName,
		}
		if err := s.Repo.CreateLog(tx, entry); err != nil {
			return err
		}
		out.AmountCleared = prior
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentLogs returns the employee's audit trail, newest first.
func (s *PaymentService) PaymentLogs(employeeID uint) ([]entity.PaymentLog, error) {
	return s.Repo.ListForEmployee(employeeID)
}
