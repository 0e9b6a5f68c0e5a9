package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/utils"
)

// Admin represents the operator of one society instance
type Admin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	Email       string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password    string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	SocietyName string    `gorm:"type:varchar(100);not null" json:"society_name"`
	JoinCode    string    `gorm:"type:varchar(36);unique;not null" json:"join_code"` // residents register with this code
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Residents []Resident `gorm:"foreignKey:AdminID" json:"residents,omitempty"`
	Notices   []Notice   `gorm:"foreignKey:AdminID" json:"notices,omitempty"`
	Polls     []Poll     `gorm:"foreignKey:AdminID" json:"polls,omitempty"`
}

// BeforeSave is a GORM hook that hashes the password unless it already is one
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	if a.Password != "" && !utils.IsBcryptHash(a.Password) {
		hashedPassword, err := utils.HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashedPassword
	}
	return nil
}
