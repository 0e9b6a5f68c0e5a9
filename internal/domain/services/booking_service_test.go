package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestBookingRequestAndApprove(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBookingService(db, cfg, nil)

	booking, err := svc.Request(resident.ID, "Clubhouse", "2026-09-12", models.BookingSlots[0])
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	decided, err := svc.Decide(admin.ID, booking.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, decided.Status)
}

func TestBookingRequestRejectsUnknownFacility(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBookingService(db, cfg, nil)

	_, err := svc.Request(resident.ID, "Helipad", "2026-09-12", models.BookingSlots[0])
	assert.EqualError(t, err, "facility not found")
}

func TestBookingSlotConflict(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	first := seedResident(t, db, cfg, admin.ID, "first@example.com")
	second := seedResident(t, db, cfg, admin.ID, "second@example.com")
	svc := services.NewBookingService(db, cfg, nil)

	const date = "2026-09-12"
	slot := models.BookingSlots[1]

	b1, err := svc.Request(first.ID, "Clubhouse", date, slot)
	assert.NoError(t, err)
	b2, err := svc.Request(second.ID, "Clubhouse", date, slot)
	assert.NoError(t, err, "two pending requests for one slot are allowed")

	_, err = svc.Decide(admin.ID, b1.ID, true)
	assert.NoError(t, err)

	// The slot is now held, so a new request is refused outright
	_, err = svc.Request(second.ID, "Clubhouse", date, slot)
	assert.ErrorIs(t, err, services.ErrSlotTaken)

	// And approving the second pending request re-checks and refuses too
	_, err = svc.Decide(admin.ID, b2.ID, true)
	assert.ErrorIs(t, err, services.ErrSlotTaken)

	// A different slot on the same day is free
	_, err = svc.Request(second.ID, "Clubhouse", date, models.BookingSlots[2])
	assert.NoError(t, err)
}

func TestBookingDecideIsFinal(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBookingService(db, cfg, nil)

	booking, err := svc.Request(resident.ID, "Clubhouse", "2026-09-12", models.BookingSlots[0])
	assert.NoError(t, err)

	_, err = svc.Decide(admin.ID, booking.ID, false)
	assert.NoError(t, err)

	_, err = svc.Decide(admin.ID, booking.ID, true)
	assert.ErrorIs(t, err, services.ErrAlreadyDecided)
}

func TestBookingDecideScopedToSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBookingService(db, cfg, nil)

	booking, err := svc.Request(resident.ID, "Clubhouse", "2026-09-12", models.BookingSlots[0])
	assert.NoError(t, err)

	_, err = svc.Decide(other.ID, booking.ID, true)
	assert.EqualError(t, err, "booking not found")
}

func TestRejectStalePending(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBookingService(db, cfg, nil)

	stale, err := svc.Request(resident.ID, "Clubhouse", "2026-08-01", models.BookingSlots[0])
	assert.NoError(t, err)
	fresh, err := svc.Request(resident.ID, "Clubhouse", "2099-01-01", models.BookingSlots[0])
	assert.NoError(t, err)

	now, _ := time.Parse("2006-01-02", "2026-09-01")
	rejected, err := svc.RejectStalePending(now)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rejected)

	var reloaded models.Booking
	assert.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, models.BookingStatusRejected, reloaded.Status)

	var reloadedFresh models.Booking
	assert.NoError(t, db.First(&reloadedFresh, fresh.ID).Error)
	assert.Equal(t, models.BookingStatusPending, reloadedFresh.Status)
}

func TestBookingConfirmedSlotUniqueIndex(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewBookingService(db, cfg, nil)

	booking, err := svc.Request(resident.ID, "Clubhouse", "2026-09-12", models.BookingSlots[0])
	assert.NoError(t, err)
	_, err = svc.Decide(admin.ID, booking.ID, true)
	assert.NoError(t, err)

	var confirmed models.Booking
	assert.NoError(t, db.First(&confirmed, booking.ID).Error)
	if assert.NotNil(t, confirmed.ConfirmedSlot) {
		assert.Equal(t, "Clubhouse|2026-09-12|"+models.BookingSlots[0], *confirmed.ConfirmedSlot)
	}

	// The index must hold even for a write that bypasses the service's
	// count check, which is what a concurrent approval amounts to.
	key := *confirmed.ConfirmedSlot
	dup := models.Booking{
		UserID:        resident.ID,
		FacilityName:  "Clubhouse",
		BookingDate:   "2026-09-12",
		TimeSlot:      models.BookingSlots[0],
		Status:        models.BookingStatusConfirmed,
		ConfirmedSlot: &key,
	}
	assert.Error(t, db.Create(&dup).Error)

	// Pending rows carry no key and never collide with each other
	other, err := svc.Request(resident.ID, "Clubhouse", "2026-09-12", models.BookingSlots[1])
	assert.NoError(t, err)
	assert.Nil(t, other.ConfirmedSlot)
}
