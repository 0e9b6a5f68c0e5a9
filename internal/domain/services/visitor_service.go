package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// VisitorRow is a gate-pass entry joined with its resident's email for
// admin listings
type VisitorRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	VisitDate string    `json:"visit_date"`
	VisitTime string    `json:"visit_time"`
	Status    string    `json:"status"`
	PassCode  string    `json:"pass_code"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// InterfaceVisitorService defines the visitor log interface
type InterfaceVisitorService interface {
	Create(residentID uint, name, phone, visitDate, visitTime string) (*models.Visitor, error)
	ListByResident(residentID uint) ([]models.Visitor, error)
	ListByAdmin(adminID uint) ([]VisitorRow, error)
	UpdateStatus(adminID, visitorID uint, status string) (*models.Visitor, error)
}

// VisitorService provides the gate-pass log operations
type VisitorService struct {
	DB     *gorm.DB
	Config *config.Config
	Gate   InterfaceGateService // optional, nil disables gate publishing
}

// NewVisitorService creates a new visitor service
func NewVisitorService(db *gorm.DB, cfg *config.Config, gate InterfaceGateService) InterfaceVisitorService {
	return &VisitorService{
		DB:     db,
		Config: cfg,
		Gate:   gate,
	}
}

// Create appends a gate-pass entry to the resident's visitor log and
// notifies the gate station. The uuid pass code is what the visitor quotes
// at the gate.
func (s *VisitorService) Create(residentID uint, name, phone, visitDate, visitTime string) (*models.Visitor, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		return nil, err
	}

	visitor := &models.Visitor{
		UserID:    residentID,
		Name:      name,
		Phone:     phone,
		VisitDate: visitDate,
		VisitTime: visitTime,
		Status:    models.VisitorStatusExpected,
		PassCode:  uuid.NewString(),
	}
	if err := s.DB.Create(visitor).Error; err != nil {
		return nil, err
	}

	// Best effort: a dead broker never fails the request
	if s.Gate != nil {
		s.Gate.PublishGatePass(resident.AdminID, visitor)
	}
	return visitor, nil
}

// ListByResident lists the resident's own visitor entries, newest first
func (s *VisitorService) ListByResident(residentID uint) ([]models.Visitor, error) {
	var visitors []models.Visitor
	err := s.DB.Where("user_id = ?", residentID).Order("id DESC").Find(&visitors).Error
	return visitors, err
}

// ListByAdmin lists all gate passes of the society's residents, most
// recent visit first
func (s *VisitorService) ListByAdmin(adminID uint) ([]VisitorRow, error) {
	var rows []VisitorRow
	err := s.DB.Model(&models.Visitor{}).
		Joins("JOIN residents ON residents.id = visitors.user_id").
		Where("residents.admin_id = ?", adminID).
		Select("visitors.id AS id, visitors.name AS name, visitors.phone AS phone, visitors.visit_date AS visit_date, visitors.visit_time AS visit_time, visitors.status AS status, visitors.pass_code AS pass_code, residents.email AS email, visitors.created_at AS created_at").
		Order("visitors.visit_date DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateStatus moves a gate pass through its lifecycle; only the owning
// admin may do so
func (s *VisitorService) UpdateStatus(adminID, visitorID uint, status string) (*models.Visitor, error) {
	var visitor models.Visitor
	err := s.DB.
		Joins("JOIN residents ON residents.id = visitors.user_id").
		Where("visitors.id = ? AND residents.admin_id = ?", visitorID, adminID).
		First(&visitor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("visitor entry not found")
		}
		return nil, err
	}

	visitor.Status = status
	if err := s.DB.Save(&visitor).Error; err != nil {
		return nil, err
	}
	return &visitor, nil
}
