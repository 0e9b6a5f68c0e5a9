package services_test

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Resident{},
		&models.SocietyFund{},
		&models.Bill{},
		&models.Notice{},
		&models.Complaint{},
		&models.Visitor{},
		&models.Booking{},
		&models.Facility{},
		&models.Poll{},
		&models.PollVote{},
		&models.EmergencyContact{},
		&models.ContactInquiry{},
		&models.PasswordReset{},
	)
	assert.NoError(t, err)
	return db
}

func testConfig() *config.Config {
	return &config.Config{JWTSecretKey: "unit-test-secret"}
}

// mailRecorder stands in for the SMTP mail service and records what would
// have been sent
type mailRecorder struct {
	otps      map[string]string
	inquiries int
	fail      bool
}

func newMailRecorder() *mailRecorder {
	return &mailRecorder{otps: make(map[string]string)}
}

func (m *mailRecorder) SendOTP(email, otp string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.otps[email] = otp
	return nil
}

func (m *mailRecorder) SendContactNotification(inquiry *models.ContactInquiry) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.inquiries++
	return nil
}

func seedSociety(t *testing.T, db *gorm.DB, cfg *config.Config, email string) *models.Admin {
	admin, err := services.NewAdminService(db, cfg).Register("Test Admin", email, "Greenwood Heights", "secret123")
	assert.NoError(t, err)
	return admin
}

func seedResident(t *testing.T, db *gorm.DB, cfg *config.Config, adminID uint, email string) *models.Resident {
	resident, err := services.NewResidentService(db, cfg).CreateTenant(adminID, "Test Resident", email, "secret123")
	assert.NoError(t, err)
	return resident
}
