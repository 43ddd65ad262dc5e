package services

import (
	"fmt"
	"strings"

	"github.com/creativeyMedia/fwkantine/apperr"
	"github.com/creativeyMedia/fwkantine/entity"
	"github.com/creativeyMedia/fwkantine/repository"
	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SponsorService reassigns one cost category of a whole day/department
// to a single sponsor. The operation is all-or-nothing: either every
// participant is credited and the sponsor debited, or nothing changes.
type SponsorService struct {
	DB          *gorm.DB
	OrderRepo   *repository.OrderRepository
	SponsorRepo *repository.SponsorshipRepository
	EmpRepo     *repository.EmployeeRepository
	Ledger      *LedgerService
}

func NewSponsorService(db *gorm.DB, orderRepo *repository.OrderRepository, sponsorRepo *repository.SponsorshipRepository, empRepo *repository.EmployeeRepository, ledger *LedgerService) *SponsorService {
	return &SponsorService{DB: db, OrderRepo: orderRepo, SponsorRepo: sponsorRepo, EmpRepo: empRepo, Ledger: ledger}
}

type SponsorResult struct {
	TotalSponsored    decimal.Decimal `json:"totalSponsored"`
	EmployeesAffected int             `json:"employeesAffected"`
}

// Sponsor moves the given category's cost for a (department, date) onto
// the sponsor. Each participant's order only loses that category's
// recorded portion; coffee and anything else stays billed to them. The
// sponsor's own order keeps its charge.
func (s *SponsorService) Sponsor(deptID uint, date, category string, sponsorEmployeeID uint) (*SponsorResult, error) {
	if category != entity.SponsorRollsEggs && category != entity.SponsorLunch {
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, category)
	}
	date, ok := utils.NormalizeDate(date)
	if !ok {
		return nil, fmt.Errorf("%w: bad date", apperr.ErrValidation)
	}
	if _, err := s.EmpRepo.Get(s.DB, sponsorEmployeeID); err != nil {
		return nil, fmt.Errorf("sponsor %d: %w", sponsorEmployeeID, apperr.ErrNotFound)
	}

	marker, err := s.SponsorRepo.GetMarker(s.DB, deptID, date, category)
	if err != nil {
		return nil, err
	}
	if marker != nil {
		return nil, fmt.Errorf("%s on %s: %w", category, date, apperr.ErrAlreadySponsored)
	}

	// Manual transaction: a failed rollback must surface as its own
	// fatal condition, never as an ordinary error.
	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	result, err := s.sponsorInTx(tx, deptID, date, category, sponsorEmployeeID)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return nil, fmt.Errorf("%w: sponsoring failed (%v) and rollback failed (%v)", apperr.ErrReconcileFailed, err, rbErr)
		}
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SponsorService) sponsorInTx(tx *gorm.DB, deptID uint, date, category string, sponsorEmployeeID uint) (*SponsorResult, error) {
	orders, err := s.OrderRepo.ListActiveBreakfastForDept(tx, deptID, date)
	if err != nil {
		return nil, err
	}

	result := &SponsorResult{TotalSponsored: decimal.Zero}
	for i := range orders {
		order := &orders[i]
		if order.EmployeeID == sponsorEmployeeID {
			continue
		}

		var portion decimal.Decimal
		switch category {
		case entity.SponsorRollsEggs:
			portion = order.RollsCost.Add(order.EggsCost)
		case entity.SponsorLunch:
			portion = order.LunchCost
		}
		if portion.IsZero() {
			continue
		}

		if err := s.Ledger.ApplyDelta(tx, order.EmployeeID, entity.BalanceBreakfast, portion.Neg(), deptID); err != nil {
			return nil, err
		}
		switch category {
		case entity.SponsorRollsEggs:
			order.RollsCost = decimal.Zero
			order.EggsCost = decimal.Zero
		case entity.SponsorLunch:
			order.LunchCost = decimal.Zero
		}
		order.RecordedCost = order.RecordedCost.Sub(portion)
		if err := s.OrderRepo.SaveOrder(tx, order); err != nil {
			return nil, err
		}

		result.TotalSponsored = result.TotalSponsored.Add(portion)
		result.EmployeesAffected++
	}

	if err := s.Ledger.ApplyDelta(tx, sponsorEmployeeID, entity.BalanceBreakfast, result.TotalSponsored, deptID); err != nil {
		return nil, err
	}

	// marker goes in last; the unique index catches a concurrent racer
	marker := &entity.SponsorshipMarker{
		DepartmentID:      deptID,
		OrderDate:         date,
		Category:          category,
		SponsorEmployeeID: sponsorEmployeeID,
		TotalSponsored:    result.TotalSponsored,
	}
	if err := s.SponsorRepo.CreateMarker(tx, marker); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fmt.Errorf("%s on %s: %w", category, date, apperr.ErrAlreadySponsored)
		}
		return nil, err
	}
	return result, nil
}
