package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/utils"
)

// Resident represents a tenant account scoped to exactly one Admin
type Resident struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	AdminID   uint      `gorm:"index;not null" json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Admin      *Admin      `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Bills      []Bill      `gorm:"foreignKey:UserID" json:"bills,omitempty"`
	Complaints []Complaint `gorm:"foreignKey:UserID" json:"complaints,omitempty"`
	Visitors   []Visitor   `gorm:"foreignKey:UserID" json:"visitors,omitempty"`
	Bookings   []Booking   `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}

// BeforeSave is a GORM hook that hashes the password unless it already is one
func (r *Resident) BeforeSave(tx *gorm.DB) error {
	if r.Password != "" && !utils.IsBcryptHash(r.Password) {
		hashedPassword, err := utils.HashPassword(r.Password)
		if err != nil {
			return err
		}
		r.Password = hashedPassword
	}
	return nil
}
