package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestCreateBillScopedToSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBillService(db, cfg)

	bill, err := svc.CreateBill(admin.ID, resident.ID, 1500)
	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusUnpaid, bill.Status)

	_, err = svc.CreateBill(other.ID, resident.ID, 1500)
	assert.EqualError(t, err, "resident belongs to a different society")
}

func TestMarkPaidAndDelete(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBillService(db, cfg)

	bill, err := svc.CreateBill(admin.ID, resident.ID, 1500)
	assert.NoError(t, err)

	_, err = svc.MarkPaid(other.ID, bill.ID)
	assert.EqualError(t, err, "bill not found")

	paid, err := svc.MarkPaid(admin.ID, bill.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, paid.Status)

	assert.EqualError(t, svc.DeleteBill(other.ID, bill.ID), "bill not found")
	assert.NoError(t, svc.DeleteBill(admin.ID, bill.ID))

	var count int64
	assert.NoError(t, db.Model(&models.Bill{}).Where("id = ?", bill.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBillTotals(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBillService(db, cfg)

	b1, err := svc.CreateBill(admin.ID, resident.ID, 1500)
	assert.NoError(t, err)
	_, err = svc.CreateBill(admin.ID, resident.ID, 2500)
	assert.NoError(t, err)

	_, err = svc.MarkPaid(admin.ID, b1.ID)
	assert.NoError(t, err)

	totals, err := svc.TotalsByAdmin(admin.ID)
	assert.NoError(t, err)
	// The welcome bill contributes zero to every figure
	assert.Equal(t, float64(4000), totals.Billed)
	assert.Equal(t, float64(1500), totals.Collected)
	assert.Equal(t, float64(2500), totals.Outstanding)
}

func TestListByAdminPaging(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBillService(db, cfg)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateBill(admin.ID, resident.ID, float64(100*(i+1)))
		assert.NoError(t, err)
	}

	// 5 created plus the welcome bill
	rows, total, err := svc.ListByAdmin(admin.ID, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, rows, 4)
	assert.Equal(t, "rahul@example.com", rows[0].Email)

	rows, _, err = svc.ListByAdmin(admin.ID, 2, 4)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
}
