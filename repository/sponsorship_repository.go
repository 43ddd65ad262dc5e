package repository

import (
	"errors"

	"github.com/creativeyMedia/fwkantine/entity"
	"gorm.io/gorm"
)

type SponsorshipRepository struct {
	DB *gorm.DB
}

func NewSponsorshipRepository(db *gorm.DB) *SponsorshipRepository {
	return &SponsorshipRepository{DB: db}
}

func (r *SponsorshipRepository) GetMarker(tx *gorm.DB, deptID uint, date, category string) (*entity.SponsorshipMarker, error) {
	var m entity.SponsorshipMarker
	err := tx.Where("department_id = ? AND order_date = ? AND category = ?", deptID, date, category).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMarkersForDate returns every department's marker of one category
// on one day. The repricing scope check for shared roll prices.
func (r *SponsorshipRepository) ListMarkersForDate(tx *gorm.DB, date, category string) ([]entity.SponsorshipMarker, error) {
	var out []entity.SponsorshipMarker
	err := tx.Where("order_date = ? AND category = ?", date, category).Find(&out).Error
	return out, err
}

// CreateMarker relies on the unique (department, date, category) index
// as the final race guard.
func (r *SponsorshipRepository) CreateMarker(tx *gorm.DB, m *entity.SponsorshipMarker) error {
	return tx.Create(m).Error
}
