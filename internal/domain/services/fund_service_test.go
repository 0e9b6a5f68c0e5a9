package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestFundGetOrCreateAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	svc := services.NewFundService(db, cfg)

	fund, err := svc.GetOrCreate(admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), fund.Amount)

	updated, err := svc.Update(admin.ID, 250000)
	assert.NoError(t, err)
	assert.Equal(t, float64(250000), updated.Amount)

	// Repeated reads return the same wallet, not a new row
	again, err := svc.GetOrCreate(admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, fund.ID, again.ID)
	assert.Equal(t, float64(250000), again.Amount)

	// Each society keeps its own balance
	theirs, err := svc.GetOrCreate(other.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), theirs.Amount)
}
