package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// ComplaintRow is a complaint joined with its resident's email for admin
// listings
type ComplaintRow struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// InterfaceComplaintService defines the complaint desk interface
type InterfaceComplaintService interface {
	Create(residentID uint, subject, description string) (*models.Complaint, error)
	ListByResident(residentID uint) ([]models.Complaint, error)
	ListByAdmin(adminID uint) ([]ComplaintRow, error)
	UpdateStatus(adminID, complaintID uint, status string) (*models.Complaint, error)
}

// ComplaintService provides the complaint desk operations
type ComplaintService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewComplaintService creates a new complaint service
func NewComplaintService(db *gorm.DB, cfg *config.Config) InterfaceComplaintService {
	return &ComplaintService{
		DB:     db,
		Config: cfg,
	}
}

// Create files a new Pending complaint for the resident
func (s *ComplaintService) Create(residentID uint, subject, description string) (*models.Complaint, error) {
	complaint := &models.Complaint{
		UserID:      residentID,
		Subject:     subject,
		Description: description,
		Status:      models.ComplaintStatusPending,
	}
	if err := s.DB.Create(complaint).Error; err != nil {
		return nil, err
	}
	return complaint, nil
}

// ListByResident lists the resident's own complaints, newest first
func (s *ComplaintService) ListByResident(residentID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Where("user_id = ?", residentID).Order("id DESC").Find(&complaints).Error
	return complaints, err
}

// ListByAdmin lists all complaints of the society's residents, unresolved
// first
func (s *ComplaintService) ListByAdmin(adminID uint) ([]ComplaintRow, error) {
	var rows []ComplaintRow
	err := s.DB.Model(&models.Complaint{}).
		Joins("JOIN residents ON residents.id = complaints.user_id").
		Where("residents.admin_id = ?", adminID).
		Select("complaints.id AS id, residents.email AS email, complaints.subject AS subject, complaints.description AS description, complaints.status AS status, complaints.created_at AS created_at").
		Order("complaints.status ASC, complaints.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// UpdateStatus transitions a complaint; only the owning admin may do so
func (s *ComplaintService) UpdateStatus(adminID, complaintID uint, status string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.
		Joins("JOIN residents ON residents.id = complaints.user_id").
		Where("complaints.id = ? AND residents.admin_id = ?", complaintID, adminID).
		First(&complaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("complaint not found")
		}
		return nil, err
	}

	complaint.Status = status
	if err := s.DB.Save(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}
