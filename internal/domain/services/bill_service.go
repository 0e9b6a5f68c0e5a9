package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// BillRow is a bill joined with its resident's email for admin listings
type BillRow struct {
	ID     uint    `json:"id"`
	Email  string  `json:"email"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// BillTotals are the derived per-society sums shown on the dashboard.
// They are statistics only; the society fund is maintained separately.
type BillTotals struct {
	Billed      float64 `json:"billed"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

// InterfaceBillService defines the billing service interface
type InterfaceBillService interface {
	CreateBill(adminID, residentID uint, amount float64) (*models.Bill, error)
	DeleteBill(adminID, billID uint) error
	MarkPaid(adminID, billID uint) (*models.Bill, error)
	ListByAdmin(adminID uint, page, pageSize int) ([]BillRow, int64, error)
	ListByResident(residentID uint) ([]models.Bill, error)
	TotalsByAdmin(adminID uint) (*BillTotals, error)
}

// BillService provides the billing ledger operations
type BillService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBillService creates a new bill service
func NewBillService(db *gorm.DB, cfg *config.Config) InterfaceBillService {
	return &BillService{
		DB:     db,
		Config: cfg,
	}
}

// CreateBill adds an Unpaid bill for a resident of the acting admin
func (s *BillService) CreateBill(adminID, residentID uint, amount float64) (*models.Bill, error) {
	var resident models.Resident
	err := s.DB.Where("id = ? AND admin_id = ?", residentID, adminID).First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("resident belongs to a different society")
		}
		return nil, err
	}

	bill := &models.Bill{
		UserID: residentID,
		Amount: amount,
		Status: models.BillStatusUnpaid,
	}
	if err := s.DB.Create(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

// getOwnedBill loads a bill only when its resident belongs to the admin
func (s *BillService) getOwnedBill(adminID, billID uint) (*models.Bill, error) {
	var bill models.Bill
	err := s.DB.
		Joins("JOIN residents ON residents.id = bills.user_id").
		Where("bills.id = ? AND residents.admin_id = ?", billID, adminID).
		First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("bill not found")
		}
		return nil, err
	}
	return &bill, nil
}

// DeleteBill removes a bill of the acting admin's society
func (s *BillService) DeleteBill(adminID, billID uint) error {
	bill, err := s.getOwnedBill(adminID, billID)
	if err != nil {
		return err
	}
	return s.DB.Delete(bill).Error
}

// MarkPaid settles a bill
func (s *BillService) MarkPaid(adminID, billID uint) (*models.Bill, error) {
	bill, err := s.getOwnedBill(adminID, billID)
	if err != nil {
		return nil, err
	}
	bill.Status = models.BillStatusPaid
	if err := s.DB.Save(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

// ListByAdmin pages through the society's bills joined with resident emails
func (s *BillService) ListByAdmin(adminID uint, page, pageSize int) ([]BillRow, int64, error) {
	var total int64
	err := s.DB.Model(&models.Bill{}).
		Joins("JOIN residents ON residents.id = bills.user_id").
		Where("residents.admin_id = ?", adminID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []BillRow
	offset := (page - 1) * pageSize
	err = s.DB.Model(&models.Bill{}).
		Joins("JOIN residents ON residents.id = bills.user_id").
		Where("residents.admin_id = ?", adminID).
		Select("bills.id AS id, residents.email AS email, bills.amount AS amount, bills.status AS status").
		Order("bills.id DESC").
		Limit(pageSize).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListByResident lists the resident's own bills, newest first
func (s *BillService) ListByResident(residentID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := s.DB.Where("user_id = ?", residentID).Order("id DESC").Find(&bills).Error
	return bills, err
}

// TotalsByAdmin derives the society's billed, collected and outstanding sums
func (s *BillService) TotalsByAdmin(adminID uint) (*BillTotals, error) {
	totals := &BillTotals{}

	err := s.DB.Model(&models.Bill{}).
		Joins("JOIN residents ON residents.id = bills.user_id").
		Where("residents.admin_id = ?", adminID).
		Select("COALESCE(SUM(bills.amount), 0)").
		Scan(&totals.Billed).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Bill{}).
		Joins("JOIN residents ON residents.id = bills.user_id").
		Where("residents.admin_id = ? AND bills.status = ?", adminID, models.BillStatusPaid).
		Select("COALESCE(SUM(bills.amount), 0)").
		Scan(&totals.Collected).Error
	if err != nil {
		return nil, err
	}

	totals.Outstanding = totals.Billed - totals.Collected
	return totals, nil
}
