package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestBuildInvoiceData(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")

	billService := services.NewBillService(db, cfg)
	svc := services.NewInvoiceService(db, cfg)

	bill, err := billService.CreateBill(admin.ID, resident.ID, 1500)
	assert.NoError(t, err)

	data, err := svc.BuildInvoiceData(admin.ID, bill.ID)
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("#%04d", bill.ID), data.NumberLabel)
	assert.Equal(t, "rahul@example.com", data.Email)
	assert.Equal(t, "Rs. 1,500.00", data.AmountLabel)
	assert.Equal(t, "UNPAID", data.Watermark)
	assert.Equal(t, fmt.Sprintf("Invoice_%d.pdf", bill.ID), data.Filename)

	_, err = billService.MarkPaid(admin.ID, bill.ID)
	assert.NoError(t, err)

	data, err = svc.BuildInvoiceData(admin.ID, bill.ID)
	assert.NoError(t, err)
	assert.Equal(t, "PAID", data.Watermark)

	// Another society's admin cannot resolve the bill
	_, err = svc.BuildInvoiceData(other.ID, bill.ID)
	assert.EqualError(t, err, "bill not found")
}

func TestRenderProducesPDF(t *testing.T) {
	svc := services.NewInvoiceService(nil, testConfig())

	pdf, err := svc.Render(&services.InvoiceData{
		BillID:      7,
		NumberLabel: "#0007",
		DateLabel:   "September 01, 2026",
		Email:       "rahul@example.com",
		Status:      "Paid",
		AmountLabel: "Rs. 1,500.00",
		Watermark:   "PAID",
		Filename:    "Invoice_7.pdf",
	})
	assert.NoError(t, err)
	assert.True(t, len(pdf) > 500)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rs. 0.00"},
		{999, "Rs. 999.00"},
		{1500, "Rs. 1,500.00"},
		{1234567.5, "Rs. 1,234,567.50"},
		{-2500, "Rs. -2,500.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, services.FormatRupees(c.in))
	}
}
