package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestComplaintLifecycle(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewComplaintService(db, cfg)

	complaint, err := svc.Create(resident.ID, "Leaky tap", "The kitchen tap leaks since Monday")
	assert.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusPending, complaint.Status)

	updated, err := svc.UpdateStatus(admin.ID, complaint.ID, models.ComplaintStatusInProgress)
	assert.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusInProgress, updated.Status)

	updated, err = svc.UpdateStatus(admin.ID, complaint.ID, models.ComplaintStatusResolved)
	assert.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, updated.Status)
}

func TestComplaintScopedToSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewComplaintService(db, cfg)

	complaint, err := svc.Create(resident.ID, "Leaky tap", "The kitchen tap leaks")
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(other.ID, complaint.ID, models.ComplaintStatusResolved)
	assert.EqualError(t, err, "complaint not found")

	rows, err := svc.ListByAdmin(other.ID)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = svc.ListByAdmin(admin.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "rahul@example.com", rows[0].Email)
}
