package models

import "time"

// PasswordReset holds the active OTP for one email address. The row is
// replaced on every new request and deleted after a successful reset.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	OTP       string    `gorm:"type:varchar(6);not null" json:"-"`
	Role      Role      `gorm:"type:varchar(10);not null" json:"role"` // which account table the email resolved to
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the OTP is past its validity window
func (p *PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
