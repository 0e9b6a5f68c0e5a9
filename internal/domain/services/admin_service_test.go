package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/utils"
)

func TestAdminRegisterSeedsSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin, err := services.NewAdminService(db, cfg).Register("Priya Sharma", "priya@greenwood.in", "Greenwood Heights", "Admin@123")
	assert.NoError(t, err)
	assert.NotZero(t, admin.ID)
	assert.NotEmpty(t, admin.JoinCode)

	// Password stored hashed, never plaintext
	var stored models.Admin
	assert.NoError(t, db.First(&stored, admin.ID).Error)
	assert.NotEqual(t, "Admin@123", stored.Password)
	assert.True(t, utils.CheckPasswordHash("Admin@123", stored.Password))

	var facilities []models.Facility
	assert.NoError(t, db.Where("admin_id = ?", admin.ID).Find(&facilities).Error)
	assert.Len(t, facilities, len(models.DefaultFacilities))

	var contacts []models.EmergencyContact
	assert.NoError(t, db.Where("admin_id = ?", admin.ID).Find(&contacts).Error)
	assert.Len(t, contacts, len(models.DefaultEmergencyContacts))
}

func TestAdminRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := services.NewAdminService(db, cfg)

	_, err := svc.Register("First", "admin@greenwood.in", "Greenwood", "secret123")
	assert.NoError(t, err)

	_, err = svc.Register("Second", "admin@greenwood.in", "Other Society", "secret123")
	assert.EqualError(t, err, "email already registered")
}

func TestAdminJoinCodesAreDistinct(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := services.NewAdminService(db, cfg)

	a, err := svc.Register("A", "a@example.com", "Society A", "secret123")
	assert.NoError(t, err)
	b, err := svc.Register("B", "b@example.com", "Society B", "secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, a.JoinCode, b.JoinCode)
}

func TestAdminUpdateProfileEmailCollision(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := services.NewAdminService(db, cfg)

	a := seedSociety(t, db, cfg, "a@example.com")
	seedSociety(t, db, cfg, "b@example.com")

	_, err := svc.UpdateProfile(a.ID, "b@example.com", "")
	assert.EqualError(t, err, "email already registered")

	// Changing to a free address works, blank password keeps the old one
	updated, err := svc.UpdateProfile(a.ID, "new@example.com", "")
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	var stored models.Admin
	assert.NoError(t, db.First(&stored, a.ID).Error)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.Password))
}

func TestLoginIssuesScopedToken(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")

	jwtService := services.NewJWTService(cfg, db)

	adminLogin, err := jwtService.Login("admin@greenwood.in", "secret123", models.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, admin.ID, adminLogin.UserID)
	assert.Equal(t, admin.ID, adminLogin.AdminID)

	residentLogin, err := jwtService.Login("rahul@example.com", "secret123", models.RoleResident)
	assert.NoError(t, err)
	assert.Equal(t, resident.ID, residentLogin.UserID)
	assert.Equal(t, admin.ID, residentLogin.AdminID)

	claims, err := jwtService.ExtractClaims(residentLogin.Token)
	assert.NoError(t, err)
	assert.Equal(t, resident.ID, claims.UserID)
	assert.Equal(t, models.RoleResident, claims.Role)
	assert.Equal(t, admin.ID, claims.AdminID)
}

func TestLoginRejectsWrongPasswordAndRole(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	seedSociety(t, db, cfg, "admin@greenwood.in")
	jwtService := services.NewJWTService(cfg, db)

	_, err := jwtService.Login("admin@greenwood.in", "wrong", models.RoleAdmin)
	assert.EqualError(t, err, "invalid credentials")

	// The admin email does not exist in the resident table
	_, err = jwtService.Login("admin@greenwood.in", "secret123", models.RoleResident)
	assert.EqualError(t, err, "invalid credentials")
}
