package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// InterfaceEmergencyContactService defines the emergency directory interface
type InterfaceEmergencyContactService interface {
	Create(adminID uint, name, role, phone, theme string) (*models.EmergencyContact, error)
	Update(adminID, contactID uint, name, role, phone, theme string) (*models.EmergencyContact, error)
	Delete(adminID, contactID uint) error
	ListByAdmin(adminID uint) ([]models.EmergencyContact, error)
	ListForResident(residentID uint) ([]models.EmergencyContact, error)
}

// EmergencyContactService manages a society's emergency directory
type EmergencyContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmergencyContactService creates a new emergency contact service
func NewEmergencyContactService(db *gorm.DB, cfg *config.Config) InterfaceEmergencyContactService {
	return &EmergencyContactService{
		DB:     db,
		Config: cfg,
	}
}

func (s *EmergencyContactService) getOwned(adminID, contactID uint) (*models.EmergencyContact, error) {
	var contact models.EmergencyContact
	err := s.DB.Where("id = ? AND admin_id = ?", contactID, adminID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("emergency contact not found")
		}
		return nil, err
	}
	return &contact, nil
}

// Create adds an entry to the society's directory
func (s *EmergencyContactService) Create(adminID uint, name, role, phone, theme string) (*models.EmergencyContact, error) {
	contact := models.EmergencyContact{
		AdminID: adminID,
		Name:    name,
		Role:    role,
		Phone:   phone,
		Theme:   theme,
	}
	if err := s.DB.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update modifies an entry in the society's own directory
func (s *EmergencyContactService) Update(adminID, contactID uint, name, role, phone, theme string) (*models.EmergencyContact, error) {
	contact, err := s.getOwned(adminID, contactID)
	if err != nil {
		return nil, err
	}

	contact.Name = name
	contact.Role = role
	contact.Phone = phone
	contact.Theme = theme

	if err := s.DB.Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes an entry from the society's own directory
func (s *EmergencyContactService) Delete(adminID, contactID uint) error {
	contact, err := s.getOwned(adminID, contactID)
	if err != nil {
		return err
	}
	return s.DB.Delete(contact).Error
}

// ListByAdmin returns the society's directory
func (s *EmergencyContactService) ListByAdmin(adminID uint) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	err := s.DB.Where("admin_id = ?", adminID).Order("id ASC").Find(&contacts).Error
	return contacts, err
}

// ListForResident returns the directory of the resident's own society
func (s *EmergencyContactService) ListForResident(residentID uint) ([]models.EmergencyContact, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("resident not found")
		}
		return nil, err
	}
	return s.ListByAdmin(resident.AdminID)
}
