package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestEmergencyDirectory(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	svc := services.NewEmergencyContactService(db, cfg)

	contacts, err := svc.ListByAdmin(admin.ID)
	assert.NoError(t, err)
	assert.Len(t, contacts, len(models.DefaultEmergencyContacts))

	created, err := svc.Create(admin.ID, "Lift Technician", "Maintenance", "+91 90000 00000", "orange")
	assert.NoError(t, err)

	updated, err := svc.Update(admin.ID, created.ID, "Lift Technician", "Maintenance", "+91 90000 11111", "orange")
	assert.NoError(t, err)
	assert.Equal(t, "+91 90000 11111", updated.Phone)

	_, err = svc.Update(other.ID, created.ID, "x", "x", "x", "red")
	assert.EqualError(t, err, "emergency contact not found")
	assert.EqualError(t, svc.Delete(other.ID, created.ID), "emergency contact not found")

	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	directory, err := svc.ListForResident(resident.ID)
	assert.NoError(t, err)
	assert.Len(t, directory, len(models.DefaultEmergencyContacts)+1)

	assert.NoError(t, svc.Delete(admin.ID, created.ID))
}
