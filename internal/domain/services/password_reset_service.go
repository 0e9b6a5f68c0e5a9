package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
	"github.com/Ayushman2005/SocietyPro/pkg/logger"
	"github.com/Ayushman2005/SocietyPro/utils"
)

// OTPValidity is how long a reset code stays usable
const OTPValidity = 10 * time.Minute

// ErrOTPInvalid covers wrong, expired and already-used codes alike, so the
// caller cannot distinguish them
var ErrOTPInvalid = errors.New("invalid or expired OTP")

// InterfacePasswordResetService defines the OTP reset flow interface
type InterfacePasswordResetService interface {
	RequestOTP(email string) error
	VerifyAndReset(email, otp, newPassword string) error
	PurgeExpired(now time.Time) (int64, error)
}

// PasswordResetService implements the two-step OTP reset: a 6-digit code
// stored keyed by email (replacing any prior code), verified by exact
// match within its validity window, then deleted after a single use.
type PasswordResetService struct {
	DB        *gorm.DB
	Config    *config.Config
	Mail      InterfaceMailService
	Directory InterfaceAccountDirectory
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(db *gorm.DB, cfg *config.Config, mail InterfaceMailService) InterfacePasswordResetService {
	return &PasswordResetService{
		DB:        db,
		Config:    cfg,
		Mail:      mail,
		Directory: NewAccountDirectory(db),
	}
}

// RequestOTP generates and delivers a reset code if the email belongs to
// any account. The stored row records which account table the email
// resolved to, so the later reset touches exactly that account.
func (s *PasswordResetService) RequestOTP(email string) error {
	account, err := s.Directory.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("account not found")
		}
		return err
	}

	reset := models.PasswordReset{
		Email:     email,
		OTP:       utils.RandomOTP(6),
		Role:      account.Role,
		ExpiresAt: time.Now().Add(OTPValidity),
	}

	// Replace any prior code for this email
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp", "role", "expires_at", "created_at"}),
	}).Create(&reset).Error
	if err != nil {
		return err
	}

	if err := s.Mail.SendOTP(email, reset.OTP); err != nil {
		logger.Error("failed to deliver OTP to %s: %v", email, err)
		return errors.New("failed to deliver OTP")
	}
	return nil
}

// VerifyAndReset checks the code and, on an exact unexpired match, updates
// the account's password and deletes the used code
func (s *PasswordResetService) VerifyAndReset(email, otp, newPassword string) error {
	var reset models.PasswordReset
	err := s.DB.Where("email = ?", email).First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOTPInvalid
		}
		return err
	}

	if reset.OTP != otp || reset.Expired(time.Now()) {
		return ErrOTPInvalid
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		directory := NewAccountDirectory(tx)
		if err := directory.UpdatePassword(reset.Role, email, newPassword); err != nil {
			return err
		}
		// Single use: the code dies with the reset
		return tx.Where("email = ?", email).Delete(&models.PasswordReset{}).Error
	})
}

// PurgeExpired deletes rows past their validity window. Run by the
// scheduler.
func (s *PasswordResetService) PurgeExpired(now time.Time) (int64, error) {
	res := s.DB.Where("expires_at < ?", now).Delete(&models.PasswordReset{})
	return res.RowsAffected, res.Error
}
