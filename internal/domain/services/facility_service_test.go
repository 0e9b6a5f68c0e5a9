package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestFacilityCatalogue(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	svc := services.NewFacilityService(db, cfg)

	facilities, err := svc.ListByAdmin(admin.ID)
	assert.NoError(t, err)
	assert.Len(t, facilities, len(models.DefaultFacilities))

	created, err := svc.Create(admin.ID, "Badminton Court")
	assert.NoError(t, err)

	_, err = svc.Create(admin.ID, "Badminton Court")
	assert.EqualError(t, err, "facility already exists")

	assert.NoError(t, svc.Delete(admin.ID, created.ID))
	assert.EqualError(t, svc.Delete(admin.ID, created.ID), "facility not found")

	assert.Equal(t, models.BookingSlots, svc.Slots())
}

func TestFacilityNameUniquePerSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	a := seedSociety(t, db, cfg, "a@example.com")
	b := seedSociety(t, db, cfg, "b@example.com")
	svc := services.NewFacilityService(db, cfg)

	// The same name can exist in two different societies
	_, err := svc.Create(a.ID, "Badminton Court")
	assert.NoError(t, err)
	_, err = svc.Create(b.ID, "Badminton Court")
	assert.NoError(t, err)

	resident := seedResident(t, db, cfg, a.ID, "rahul@example.com")
	mine, err := svc.ListForResident(resident.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, len(models.DefaultFacilities)+1)
}
