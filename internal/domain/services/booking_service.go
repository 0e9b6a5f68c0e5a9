package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// ErrSlotTaken is returned when a Confirmed booking already holds the
// (facility, date, slot) triple
var ErrSlotTaken = errors.New("facility already booked for that slot")

// ErrAlreadyDecided is returned when a decision targets a non-Pending booking
var ErrAlreadyDecided = errors.New("booking has already been decided")

// BookingRow is a booking joined with its resident's email for admin
// listings
type BookingRow struct {
	ID           uint   `json:"id"`
	FacilityName string `json:"facility_name"`
	BookingDate  string `json:"booking_date"`
	TimeSlot     string `json:"time_slot"`
	Status       string `json:"status"`
	Email        string `json:"email"`
}

// InterfaceBookingService defines the facility booking interface
type InterfaceBookingService interface {
	Request(residentID uint, facility, date, slot string) (*models.Booking, error)
	ListByResident(residentID uint) ([]models.Booking, error)
	ListByAdmin(adminID uint) ([]BookingRow, error)
	Decide(adminID, bookingID uint, approve bool) (*models.Booking, error)
	RejectStalePending(before time.Time) (int64, error)
}

// BookingService provides facility reservations with the slot-conflict
// rule. Both the request and approve paths run their check-and-write in a
// single transaction so two concurrent requests cannot both pass the check.
type BookingService struct {
	DB     *gorm.DB
	Config *config.Config
	Gate   InterfaceGateService // optional, nil disables gate publishing
}

// NewBookingService creates a new booking service
func NewBookingService(db *gorm.DB, cfg *config.Config, gate InterfaceGateService) InterfaceBookingService {
	return &BookingService{
		DB:     db,
		Config: cfg,
		Gate:   gate,
	}
}

// slotKey is the value written to bookings.confirmed_slot on approval
func slotKey(facility, date, slot string) string {
	return facility + "|" + date + "|" + slot
}

// hasConfirmed reports whether a Confirmed row holds the exact triple.
// Pending and Rejected rows never block.
func hasConfirmed(tx *gorm.DB, facility, date, slot string) (bool, error) {
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("facility_name = ? AND booking_date = ? AND time_slot = ? AND status = ?",
			facility, date, slot, models.BookingStatusConfirmed).
		Count(&count).Error
	return count > 0, err
}

// Request files a Pending booking after verifying the facility exists in
// the resident's society and the slot is not already Confirmed
func (s *BookingService) Request(residentID uint, facility, date, slot string) (*models.Booking, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		return nil, err
	}

	var facilityCount int64
	err := s.DB.Model(&models.Facility{}).
		Where("admin_id = ? AND name = ?", resident.AdminID, facility).
		Count(&facilityCount).Error
	if err != nil {
		return nil, err
	}
	if facilityCount == 0 {
		return nil, errors.New("facility not found")
	}

	booking := &models.Booking{
		UserID:       residentID,
		FacilityName: facility,
		BookingDate:  date,
		TimeSlot:     slot,
		Status:       models.BookingStatusPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := hasConfirmed(tx, facility, date, slot)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// ListByResident lists the resident's booking history, most recent date
// first
func (s *BookingService) ListByResident(residentID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("user_id = ?", residentID).Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}

// ListByAdmin lists the booking requests of the society's residents
func (s *BookingService) ListByAdmin(adminID uint) ([]BookingRow, error) {
	var rows []BookingRow
	err := s.DB.Model(&models.Booking{}).
		Joins("JOIN residents ON residents.id = bookings.user_id").
		Where("residents.admin_id = ?", adminID).
		Select("bookings.id AS id, bookings.facility_name AS facility_name, bookings.booking_date AS booking_date, bookings.time_slot AS time_slot, bookings.status AS status, residents.email AS email").
		Order("bookings.booking_date DESC").
		Scan(&rows).Error
	return rows, err
}

// Decide confirms or rejects a Pending booking of the acting admin's
// society. Approval re-runs the conflict check inside the decision
// transaction and writes the confirmed_slot key; the unique index on that
// column is the authority, so two Pending rows for one slot can never both
// become Confirmed even under concurrent decisions on snapshot-isolation
// MySQL.
func (s *BookingService) Decide(adminID, bookingID uint, approve bool) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Joins("JOIN residents ON residents.id = bookings.user_id").
			Where("bookings.id = ? AND residents.admin_id = ?", bookingID, adminID).
			First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking not found")
			}
			return err
		}

		if booking.Status != models.BookingStatusPending {
			return ErrAlreadyDecided
		}

		if approve {
			taken, err := hasConfirmed(tx, booking.FacilityName, booking.BookingDate, booking.TimeSlot)
			if err != nil {
				return err
			}
			if taken {
				return ErrSlotTaken
			}
			booking.Status = models.BookingStatusConfirmed
			key := slotKey(booking.FacilityName, booking.BookingDate, booking.TimeSlot)
			booking.ConfirmedSlot = &key
		} else {
			booking.Status = models.BookingStatusRejected
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		// A concurrent approval may have taken the slot between the count
		// and the write; the unique index rolls this one back.
		if approve {
			if taken, checkErr := hasConfirmed(s.DB, booking.FacilityName, booking.BookingDate, booking.TimeSlot); checkErr == nil && taken {
				return nil, ErrSlotTaken
			}
		}
		return nil, err
	}

	if s.Gate != nil {
		s.Gate.PublishBookingDecision(adminID, &booking)
	}
	return &booking, nil
}

// RejectStalePending rejects Pending bookings whose date has passed. Run
// by the scheduler.
func (s *BookingService) RejectStalePending(before time.Time) (int64, error) {
	res := s.DB.Model(&models.Booking{}).
		Where("status = ? AND booking_date < ?", models.BookingStatusPending, before.Format("2006-01-02")).
		Update("status", models.BookingStatusRejected)
	return res.RowsAffected, res.Error
}
