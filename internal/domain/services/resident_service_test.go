package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/utils"
)

func TestRegisterWithJoinCode(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	svc := services.NewResidentService(db, cfg)

	resident, err := svc.RegisterWithJoinCode("Rahul Verma", "rahul@example.com", "secret123", admin.JoinCode)
	assert.NoError(t, err)
	assert.Equal(t, admin.ID, resident.AdminID)

	_, err = svc.RegisterWithJoinCode("Nobody", "nobody@example.com", "secret123", "not-a-real-code")
	assert.EqualError(t, err, "society code not recognised")
}

func TestCreateTenantWritesWelcomeBill(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")

	var bills []models.Bill
	assert.NoError(t, db.Where("user_id = ?", resident.ID).Find(&bills).Error)
	assert.Len(t, bills, 1)
	assert.Equal(t, float64(0), bills[0].Amount)
	assert.Equal(t, models.BillStatusPaid, bills[0].Status)
}

func TestCreateTenantRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	svc := services.NewResidentService(db, cfg)

	_, err := svc.CreateTenant(admin.ID, "Rahul", "rahul@example.com", "secret123")
	assert.NoError(t, err)

	// The collision holds across societies too
	_, err = svc.CreateTenant(other.ID, "Impostor", "rahul@example.com", "secret123")
	assert.EqualError(t, err, "email already registered")
}

func TestTenantListingIsScopedToSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	a := seedSociety(t, db, cfg, "a@example.com")
	b := seedSociety(t, db, cfg, "b@example.com")
	svc := services.NewResidentService(db, cfg)

	mine := seedResident(t, db, cfg, a.ID, "mine@example.com")
	seedResident(t, db, cfg, b.ID, "theirs@example.com")

	tenants, err := svc.ListTenants(a.ID)
	assert.NoError(t, err)
	assert.Len(t, tenants, 1)
	assert.Equal(t, mine.ID, tenants[0].ID)

	// Another society's admin cannot address my resident by id
	_, err = svc.GetTenant(b.ID, mine.ID)
	assert.EqualError(t, err, "resident not found")

	_, err = svc.UpdateTenant(b.ID, mine.ID, "Hacked", "hacked@example.com", "")
	assert.EqualError(t, err, "resident not found")

	err = svc.DeleteTenant(b.ID, mine.ID)
	assert.EqualError(t, err, "resident not found")
}

func TestDeleteTenantCascades(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewResidentService(db, cfg)

	_, err := services.NewBillService(db, cfg).CreateBill(admin.ID, resident.ID, 1500)
	assert.NoError(t, err)
	_, err = services.NewVisitorService(db, cfg, nil).Create(resident.ID, "Guest", "9876543210", "2026-09-10", "18:00")
	assert.NoError(t, err)
	_, err = services.NewComplaintService(db, cfg).Create(resident.ID, "Leaky tap", "The kitchen tap leaks")
	assert.NoError(t, err)
	_, err = services.NewBookingService(db, cfg, nil).Request(resident.ID, "Clubhouse", "2026-09-12", models.BookingSlots[0])
	assert.NoError(t, err)

	poll, err := services.NewPollService(db, cfg).Create(admin.ID, "Repaint the lobby?", "Yes", "No")
	assert.NoError(t, err)
	assert.NoError(t, services.NewPollService(db, cfg).Vote(resident.ID, poll.ID, models.PollChoiceOption1))

	assert.NoError(t, svc.DeleteTenant(admin.ID, resident.ID))

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"bills", &models.Bill{}},
		{"visitors", &models.Visitor{}},
		{"complaints", &models.Complaint{}},
		{"bookings", &models.Booking{}},
		{"poll votes", &models.PollVote{}},
	} {
		var count int64
		assert.NoError(t, db.Model(probe.model).Where("user_id = ?", resident.ID).Count(&count).Error)
		assert.Zero(t, count, "expected no %s left for the deleted tenant", probe.name)
	}

	var residents int64
	assert.NoError(t, db.Model(&models.Resident{}).Where("id = ?", resident.ID).Count(&residents).Error)
	assert.Zero(t, residents)
}

func TestLongPasswordsAreHashed(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	svc := services.NewResidentService(db, cfg)

	long := strings.Repeat("a", 64)
	resident, err := svc.CreateTenant(admin.ID, "Long Pass", "long@example.com", long)
	assert.NoError(t, err)

	var stored models.Resident
	assert.NoError(t, db.First(&stored, resident.ID).Error)
	assert.NotEqual(t, long, stored.Password)
	assert.True(t, utils.CheckPasswordHash(long, stored.Password))

	login, err := services.NewJWTService(cfg, db).Login("long@example.com", long, models.RoleResident)
	assert.NoError(t, err)
	assert.Equal(t, resident.ID, login.UserID)
}
