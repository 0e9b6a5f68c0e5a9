package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// InterfaceAdminService defines the admin service interface
type InterfaceAdminService interface {
	Register(name, email, societyName, password string) (*models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	GetAdminByJoinCode(joinCode string) (*models.Admin, error)
	UpdateProfile(id uint, email, password string) (*models.Admin, error)
}

// AdminService provides admin account operations
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// Register creates a new society operator. The email must be unused in the
// admin table; the society gets a join code for resident self-registration
// and its default facility and emergency-contact seeds.
func (s *AdminService) Register(name, email, societyName, password string) (*models.Admin, error) {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	admin := &models.Admin{
		Name:        name,
		Email:       email,
		SocietyName: societyName,
		Password:    password, // hashed by the BeforeSave hook
		JoinCode:    uuid.NewString(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		for _, name := range models.DefaultFacilities {
			if err := tx.Create(&models.Facility{AdminID: admin.ID, Name: name}).Error; err != nil {
				return err
			}
		}

		for _, contact := range models.DefaultEmergencyContacts {
			seed := contact
			seed.AdminID = admin.ID
			if err := tx.Create(&seed).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// GetAdminByID returns the admin with the given id
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("admin not found")
		}
		return nil, err
	}
	return &admin, nil
}

// GetAdminByJoinCode resolves a society join code
func (s *AdminService) GetAdminByJoinCode(joinCode string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("join_code = ?", joinCode).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("society code not recognised")
		}
		return nil, err
	}
	return &admin, nil
}

// UpdateProfile updates the admin's own email and optionally password
func (s *AdminService) UpdateProfile(id uint, email, password string) (*models.Admin, error) {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	// New email must not collide with another admin
	if email != admin.Email {
		var count int64
		if err := s.DB.Model(&models.Admin{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("email already registered")
		}
	}

	directory := NewAccountDirectory(s.DB)
	if err := directory.UpdateCredentials(models.RoleAdmin, id, email, password); err != nil {
		return nil, err
	}
	return s.GetAdminByID(id)
}
