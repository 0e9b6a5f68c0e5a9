package services

import (
	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
	"github.com/Ayushman2005/SocietyPro/pkg/logger"
)

// InterfaceContactService defines the contact form interface
type InterfaceContactService interface {
	Submit(name, email, message string) (*models.ContactInquiry, error)
	List(page, pageSize int) ([]models.ContactInquiry, int64, error)
}

// ContactService stores public contact form submissions and notifies the
// operator inbox. The inquiry is persisted first; a mail failure never
// loses the submission.
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
	Mail   InterfaceMailService
}

// NewContactService creates a new contact service
func NewContactService(db *gorm.DB, cfg *config.Config, mail InterfaceMailService) InterfaceContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
		Mail:   mail,
	}
}

// Submit records an inquiry and sends a best-effort notification
func (s *ContactService) Submit(name, email, message string) (*models.ContactInquiry, error) {
	inquiry := models.ContactInquiry{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.DB.Create(&inquiry).Error; err != nil {
		return nil, err
	}

	if err := s.Mail.SendContactNotification(&inquiry); err != nil {
		logger.Warning("contact notification for inquiry %d not delivered: %v", inquiry.ID, err)
	}
	return &inquiry, nil
}

// List returns inquiries newest first
func (s *ContactService) List(page, pageSize int) ([]models.ContactInquiry, int64, error) {
	var total int64
	if err := s.DB.Model(&models.ContactInquiry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiries []models.ContactInquiry
	err := s.DB.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&inquiries).Error
	if err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}
