package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestNoticeBoard(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	svc := services.NewNoticeService(db, cfg)

	notice, err := svc.Create(admin.ID, "Water Supply", "Maintenance on Saturday morning")
	assert.NoError(t, err)

	updated, err := svc.Update(admin.ID, notice.ID, "Water Supply", "Rescheduled to Sunday morning")
	assert.NoError(t, err)
	assert.Equal(t, "Rescheduled to Sunday morning", updated.Content)

	_, err = svc.Update(other.ID, notice.ID, "Hijacked", "x")
	assert.EqualError(t, err, "notice not found")
	assert.EqualError(t, svc.Delete(other.ID, notice.ID), "notice not found")

	// Residents read their own society's board only
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	outsider := seedResident(t, db, cfg, other.ID, "outsider@example.com")

	board, err := svc.ListForResident(resident.ID)
	assert.NoError(t, err)
	assert.Len(t, board, 1)

	board, err = svc.ListForResident(outsider.ID)
	assert.NoError(t, err)
	assert.Empty(t, board)

	assert.NoError(t, svc.Delete(admin.ID, notice.ID))
}
