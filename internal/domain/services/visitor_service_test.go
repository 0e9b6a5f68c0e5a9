package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestVisitorGatePassLifecycle(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewVisitorService(db, cfg, nil)

	visitor, err := svc.Create(resident.ID, "Sunita Rao", "9876543210", "2026-09-10", "18:00")
	assert.NoError(t, err)
	assert.Equal(t, models.VisitorStatusExpected, visitor.Status)
	assert.NotEmpty(t, visitor.PassCode)

	second, err := svc.Create(resident.ID, "Courier", "9000000000", "2026-09-11", "11:00")
	assert.NoError(t, err)
	assert.NotEqual(t, visitor.PassCode, second.PassCode)

	checkedIn, err := svc.UpdateStatus(admin.ID, visitor.ID, models.VisitorStatusCheckedIn)
	assert.NoError(t, err)
	assert.Equal(t, models.VisitorStatusCheckedIn, checkedIn.Status)

	checkedOut, err := svc.UpdateStatus(admin.ID, visitor.ID, models.VisitorStatusCheckedOut)
	assert.NoError(t, err)
	assert.Equal(t, models.VisitorStatusCheckedOut, checkedOut.Status)
}

func TestVisitorScopedToSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewVisitorService(db, cfg, nil)

	visitor, err := svc.Create(resident.ID, "Sunita Rao", "9876543210", "2026-09-10", "18:00")
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(other.ID, visitor.ID, models.VisitorStatusCheckedIn)
	assert.EqualError(t, err, "visitor entry not found")

	rows, err := svc.ListByAdmin(admin.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "rahul@example.com", rows[0].Email)

	rows, err = svc.ListByAdmin(other.ID)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
