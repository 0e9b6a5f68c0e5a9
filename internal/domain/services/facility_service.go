package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// InterfaceFacilityService defines the amenity catalogue interface
type InterfaceFacilityService interface {
	Create(adminID uint, name string) (*models.Facility, error)
	Delete(adminID, facilityID uint) error
	ListByAdmin(adminID uint) ([]models.Facility, error)
	ListForResident(residentID uint) ([]models.Facility, error)
	Slots() []string
}

// FacilityService manages each society's reservable amenities
type FacilityService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFacilityService creates a new facility service
func NewFacilityService(db *gorm.DB, cfg *config.Config) InterfaceFacilityService {
	return &FacilityService{
		DB:     db,
		Config: cfg,
	}
}

// Create adds an amenity to the society's catalogue
func (s *FacilityService) Create(adminID uint, name string) (*models.Facility, error) {
	var count int64
	if err := s.DB.Model(&models.Facility{}).Where("admin_id = ? AND name = ?", adminID, name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("facility already exists")
	}

	facility := &models.Facility{AdminID: adminID, Name: name}
	if err := s.DB.Create(facility).Error; err != nil {
		return nil, err
	}
	return facility, nil
}

// Delete removes an amenity from the society's catalogue
func (s *FacilityService) Delete(adminID, facilityID uint) error {
	res := s.DB.Where("id = ? AND admin_id = ?", facilityID, adminID).Delete(&models.Facility{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("facility not found")
	}
	return nil
}

// ListByAdmin lists the society's amenities
func (s *FacilityService) ListByAdmin(adminID uint) ([]models.Facility, error) {
	var facilities []models.Facility
	err := s.DB.Where("admin_id = ?", adminID).Order("id ASC").Find(&facilities).Error
	return facilities, err
}

// ListForResident lists the amenities of the resident's society
func (s *FacilityService) ListForResident(residentID uint) ([]models.Facility, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		return nil, err
	}
	return s.ListByAdmin(resident.AdminID)
}

// Slots returns the fixed reservable windows
func (s *FacilityService) Slots() []string {
	return models.BookingSlots
}
