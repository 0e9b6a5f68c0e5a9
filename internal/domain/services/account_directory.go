package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/utils"
)

// Account is the role-neutral view of an admin or resident record
type Account struct {
	ID    uint
	Name  string
	Email string
	Role  models.Role
}

// InterfaceAccountDirectory resolves and mutates accounts across the two
// account tables, dispatching on the role enum
type InterfaceAccountDirectory interface {
	FindByEmail(email string) (*Account, error)
	UpdatePassword(role models.Role, email, newPassword string) error
	UpdateCredentials(role models.Role, id uint, email, newPassword string) error
}

// AccountDirectory is the gorm-backed implementation
type AccountDirectory struct {
	DB *gorm.DB
}

// NewAccountDirectory creates a new account directory
func NewAccountDirectory(db *gorm.DB) InterfaceAccountDirectory {
	return &AccountDirectory{DB: db}
}

// FindByEmail looks the email up in the admin table first, then the
// resident table
func (d *AccountDirectory) FindByEmail(email string) (*Account, error) {
	var admin models.Admin
	err := d.DB.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return &Account{ID: admin.ID, Name: admin.Name, Email: admin.Email, Role: models.RoleAdmin}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var resident models.Resident
	err = d.DB.Where("email = ?", email).First(&resident).Error
	if err == nil {
		return &Account{ID: resident.ID, Name: resident.Name, Email: resident.Email, Role: models.RoleResident}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, gorm.ErrRecordNotFound
}

// UpdatePassword rehashes and stores a new password for the account the
// email resolves to under the given role
func (d *AccountDirectory) UpdatePassword(role models.Role, email, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	var res *gorm.DB
	switch role {
	case models.RoleAdmin:
		res = d.DB.Model(&models.Admin{}).Where("email = ?", email).Update("password", hashed)
	case models.RoleResident:
		res = d.DB.Model(&models.Resident{}).Where("email = ?", email).Update("password", hashed)
	default:
		return errors.New("unknown role")
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateCredentials updates email and, when non-empty, password of the
// account identified by role and id
func (d *AccountDirectory) UpdateCredentials(role models.Role, id uint, email, newPassword string) error {
	updates := map[string]interface{}{"email": email}
	if newPassword != "" {
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		updates["password"] = hashed
	}

	var res *gorm.DB
	switch role {
	case models.RoleAdmin:
		res = d.DB.Model(&models.Admin{}).Where("id = ?", id).Updates(updates)
	case models.RoleResident:
		res = d.DB.Model(&models.Resident{}).Where("id = ?", id).Updates(updates)
	default:
		return errors.New("unknown role")
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
