package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// InterfaceFundService defines the society fund interface
type InterfaceFundService interface {
	GetOrCreate(adminID uint) (*models.SocietyFund, error)
	Update(adminID uint, amount float64) (*models.SocietyFund, error)
}

// FundService maintains the per-society fund balance. The balance is set
// manually by the admin; it is not derived from bill sums.
type FundService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFundService creates a new fund service
func NewFundService(db *gorm.DB, cfg *config.Config) InterfaceFundService {
	return &FundService{
		DB:     db,
		Config: cfg,
	}
}

// GetOrCreate returns the society's fund, creating a zero wallet on first use
func (s *FundService) GetOrCreate(adminID uint) (*models.SocietyFund, error) {
	var fund models.SocietyFund
	err := s.DB.Where("admin_id = ?", adminID).First(&fund).Error
	if err == nil {
		return &fund, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fund = models.SocietyFund{AdminID: adminID, Amount: 0}
	if err := s.DB.Create(&fund).Error; err != nil {
		return nil, err
	}
	return &fund, nil
}

// Update sets the fund balance of the acting admin
func (s *FundService) Update(adminID uint, amount float64) (*models.SocietyFund, error) {
	fund, err := s.GetOrCreate(adminID)
	if err != nil {
		return nil, err
	}
	fund.Amount = amount
	if err := s.DB.Save(fund).Error; err != nil {
		return nil, err
	}
	return fund, nil
}
