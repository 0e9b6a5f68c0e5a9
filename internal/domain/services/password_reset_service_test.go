package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestPasswordResetFlow(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	mail := newMailRecorder()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewPasswordResetService(db, cfg, mail)

	assert.NoError(t, svc.RequestOTP("rahul@example.com"))
	otp := mail.otps["rahul@example.com"]
	assert.Len(t, otp, 6)

	assert.NoError(t, svc.VerifyAndReset("rahul@example.com", otp, "newSecret456"))

	// Old password dead, new one live
	jwtService := services.NewJWTService(cfg, db)
	_, err := jwtService.Login("rahul@example.com", "secret123", models.RoleResident)
	assert.EqualError(t, err, "invalid credentials")
	login, err := jwtService.Login("rahul@example.com", "newSecret456", models.RoleResident)
	assert.NoError(t, err)
	assert.Equal(t, resident.ID, login.UserID)

	// Single use: the same code cannot reset twice
	err = svc.VerifyAndReset("rahul@example.com", otp, "thirdSecret789")
	assert.ErrorIs(t, err, services.ErrOTPInvalid)
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := services.NewPasswordResetService(db, cfg, newMailRecorder())

	assert.EqualError(t, svc.RequestOTP("nobody@example.com"), "account not found")
}

func TestPasswordResetWrongCode(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	mail := newMailRecorder()

	seedSociety(t, db, cfg, "admin@greenwood.in")
	svc := services.NewPasswordResetService(db, cfg, mail)

	assert.NoError(t, svc.RequestOTP("admin@greenwood.in"))

	err := svc.VerifyAndReset("admin@greenwood.in", "000000", "newSecret456")
	assert.ErrorIs(t, err, services.ErrOTPInvalid)

	// The wrong attempt does not burn the real code
	assert.NoError(t, svc.VerifyAndReset("admin@greenwood.in", mail.otps["admin@greenwood.in"], "newSecret456"))
}

func TestPasswordResetReplacesPriorCode(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	mail := newMailRecorder()

	seedSociety(t, db, cfg, "admin@greenwood.in")
	svc := services.NewPasswordResetService(db, cfg, mail)

	assert.NoError(t, svc.RequestOTP("admin@greenwood.in"))
	first := mail.otps["admin@greenwood.in"]

	assert.NoError(t, svc.RequestOTP("admin@greenwood.in"))
	second := mail.otps["admin@greenwood.in"]

	var count int64
	assert.NoError(t, db.Model(&models.PasswordReset{}).Where("email = ?", "admin@greenwood.in").Count(&count).Error)
	assert.Equal(t, int64(1), count, "one active code per email")

	if first != second {
		err := svc.VerifyAndReset("admin@greenwood.in", first, "newSecret456")
		assert.ErrorIs(t, err, services.ErrOTPInvalid)
	}
	assert.NoError(t, svc.VerifyAndReset("admin@greenwood.in", second, "newSecret456"))
}

func TestPasswordResetExpiry(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	mail := newMailRecorder()

	seedSociety(t, db, cfg, "admin@greenwood.in")
	svc := services.NewPasswordResetService(db, cfg, mail)

	assert.NoError(t, svc.RequestOTP("admin@greenwood.in"))

	// Age the stored row past its validity window
	expired := time.Now().Add(-time.Minute)
	assert.NoError(t, db.Model(&models.PasswordReset{}).
		Where("email = ?", "admin@greenwood.in").
		Update("expires_at", expired).Error)

	err := svc.VerifyAndReset("admin@greenwood.in", mail.otps["admin@greenwood.in"], "newSecret456")
	assert.ErrorIs(t, err, services.ErrOTPInvalid)

	purged, err := svc.PurgeExpired(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func TestPasswordResetDeliveryFailure(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	mail := newMailRecorder()
	mail.fail = true

	seedSociety(t, db, cfg, "admin@greenwood.in")
	svc := services.NewPasswordResetService(db, cfg, mail)

	assert.EqualError(t, svc.RequestOTP("admin@greenwood.in"), "failed to deliver OTP")
}
