package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// InterfaceResidentService defines the resident service interface
type InterfaceResidentService interface {
	RegisterWithJoinCode(name, email, password, joinCode string) (*models.Resident, error)
	CreateTenant(adminID uint, name, email, password string) (*models.Resident, error)
	GetResidentByID(id uint) (*models.Resident, error)
	GetTenant(adminID, residentID uint) (*models.Resident, error)
	ListTenants(adminID uint) ([]models.Resident, error)
	UpdateTenant(adminID, residentID uint, name, email, password string) (*models.Resident, error)
	DeleteTenant(adminID, residentID uint) error
	UpdateProfile(id uint, email, password string) (*models.Resident, error)
}

// ResidentService provides tenant account operations
type ResidentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResidentService creates a new resident service
func NewResidentService(db *gorm.DB, cfg *config.Config) InterfaceResidentService {
	return &ResidentService{
		DB:     db,
		Config: cfg,
	}
}

// RegisterWithJoinCode self-registers a resident into the society the join
// code resolves to
func (s *ResidentService) RegisterWithJoinCode(name, email, password, joinCode string) (*models.Resident, error) {
	var admin models.Admin
	if err := s.DB.Where("join_code = ?", joinCode).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("society code not recognised")
		}
		return nil, err
	}
	return s.CreateTenant(admin.ID, name, email, password)
}

// CreateTenant creates a resident under the given admin. The resident row
// and its zero-amount Paid welcome bill are written in one transaction.
func (s *ResidentService) CreateTenant(adminID uint, name, email, password string) (*models.Resident, error) {
	var count int64
	if err := s.DB.Model(&models.Resident{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	resident := &models.Resident{
		Name:     name,
		Email:    email,
		Password: password, // hashed by the BeforeSave hook
		AdminID:  adminID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(resident).Error; err != nil {
			return err
		}
		welcome := &models.Bill{
			UserID: resident.ID,
			Amount: 0,
			Status: models.BillStatusPaid,
		}
		return tx.Create(welcome).Error
	})
	if err != nil {
		return nil, err
	}
	return resident, nil
}

// GetResidentByID returns the resident with the given id
func (s *ResidentService) GetResidentByID(id uint) (*models.Resident, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("resident not found")
		}
		return nil, err
	}
	return &resident, nil
}

// GetTenant returns the resident only if it belongs to the acting admin
func (s *ResidentService) GetTenant(adminID, residentID uint) (*models.Resident, error) {
	var resident models.Resident
	err := s.DB.Where("id = ? AND admin_id = ?", residentID, adminID).First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("resident not found")
		}
		return nil, err
	}
	return &resident, nil
}

// ListTenants lists the acting admin's residents, newest first
func (s *ResidentService) ListTenants(adminID uint) ([]models.Resident, error) {
	var residents []models.Resident
	err := s.DB.Where("admin_id = ?", adminID).Order("id DESC").Find(&residents).Error
	return residents, err
}

// UpdateTenant updates a tenant's details; a blank password leaves the
// current one in place
func (s *ResidentService) UpdateTenant(adminID, residentID uint, name, email, password string) (*models.Resident, error) {
	resident, err := s.GetTenant(adminID, residentID)
	if err != nil {
		return nil, err
	}

	if email != resident.Email {
		var count int64
		if err := s.DB.Model(&models.Resident{}).Where("email = ? AND id != ?", email, residentID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("email already registered")
		}
	}

	resident.Name = name
	resident.Email = email
	if password != "" {
		resident.Password = password // rehashed by the BeforeSave hook
	}
	if err := s.DB.Save(resident).Error; err != nil {
		return nil, err
	}
	return resident, nil
}

// DeleteTenant removes a tenant and everything it owns. Bills go first so
// no orphaned rows remain.
func (s *ResidentService) DeleteTenant(adminID, residentID uint) error {
	resident, err := s.GetTenant(adminID, residentID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", resident.ID).Delete(&models.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", resident.ID).Delete(&models.Visitor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", resident.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", resident.ID).Delete(&models.Complaint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", resident.ID).Delete(&models.PollVote{}).Error; err != nil {
			return err
		}
		return tx.Delete(resident).Error
	})
}

// UpdateProfile updates the resident's own email and optionally password
func (s *ResidentService) UpdateProfile(id uint, email, password string) (*models.Resident, error) {
	resident, err := s.GetResidentByID(id)
	if err != nil {
		return nil, err
	}

	if email != resident.Email {
		var count int64
		if err := s.DB.Model(&models.Resident{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("email already registered")
		}
	}

	directory := NewAccountDirectory(s.DB)
	if err := directory.UpdateCredentials(models.RoleResident, id, email, password); err != nil {
		return nil, err
	}
	return s.GetResidentByID(id)
}
