package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceBookingController defines the facility booking controller interface
type InterfaceBookingController interface {
	GetBookings()
	DecideBooking()
	RequestBooking()
	GetMyBookings()
}

// BookingController handles facility booking requests
type BookingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBookingController creates a new booking controller
func NewBookingController(ctx *gin.Context, container *container.ServiceContainer) *BookingController {
	return &BookingController{
		Ctx:       ctx,
		Container: container,
	}
}

// RequestBookingRequest asks for a facility slot
type RequestBookingRequest struct {
	FacilityName string `json:"facility_name" binding:"required" example:"Clubhouse"`
	BookingDate  string `json:"booking_date" binding:"required" example:"2026-09-12"`
	TimeSlot     string `json:"time_slot" binding:"required" example:"Morning (9 AM - 12 PM)"`
}

// DecideBookingRequest approves or rejects a pending booking
type DecideBookingRequest struct {
	Approve *bool `json:"approve" binding:"required" example:"true"`
}

// HandleBookingFunc returns a gin handler dispatching to the named method
func HandleBookingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBookingController(ctx, container)

		switch method {
		case "getBookings":
			controller.GetBookings()
		case "decideBooking":
			controller.DecideBooking()
		case "requestBooking":
			controller.RequestBooking()
		case "getMyBookings":
			controller.GetMyBookings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetBookings lists the society's booking requests
// @Summary      List bookings
// @Tags         Booking
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/bookings [get]
// @Security     BearerAuth
func (c *BookingController) GetBookings() {
	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	rows, err := bookingService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(rows),
		"data":  rows,
	})
}

// 2. DecideBooking approves or rejects a pending booking
// @Summary      Decide booking
// @Description  Approve or reject a pending booking. Approval re-checks the slot and fails if another booking was confirmed for it in the meantime.
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Param        id path int true "Booking ID"
// @Param        request body DecideBookingRequest true "Decision"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /admin/bookings/{id} [put]
// @Security     BearerAuth
func (c *BookingController) DecideBooking() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	var req DecideBookingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking, err := bookingService.Decide(currentAdminID(c.Ctx), id, *req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotTaken):
			response.Fail(c.Ctx, code.ErrBookingConflict, nil)
		case errors.Is(err, services.ErrAlreadyDecided):
			response.Fail(c.Ctx, code.ErrBookingDecided, nil)
		case err.Error() == "booking not found":
			response.Fail(c.Ctx, code.ErrBookingNotFound, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":     booking.ID,
		"status": booking.Status,
	})
}

// 3. RequestBooking asks for a facility slot as the resident
// @Summary      Request booking
// @Description  Create a pending booking. Fails when the slot already has a confirmed booking.
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Param        request body RequestBookingRequest true "Requested slot"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /resident/bookings [post]
// @Security     BearerAuth
func (c *BookingController) RequestBooking() {
	var req RequestBookingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking, err := bookingService.Request(currentUserID(c.Ctx), req.FacilityName, req.BookingDate, req.TimeSlot)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotTaken):
			response.Fail(c.Ctx, code.ErrBookingConflict, nil)
		case err.Error() == "facility not found":
			response.Fail(c.Ctx, code.ErrFacilityNotFound, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":            booking.ID,
		"facility_name": booking.FacilityName,
		"booking_date":  booking.BookingDate,
		"time_slot":     booking.TimeSlot,
		"status":        booking.Status,
	})
}

// 4. GetMyBookings lists the resident's own bookings
// @Summary      List my bookings
// @Tags         Booking
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/bookings [get]
// @Security     BearerAuth
func (c *BookingController) GetMyBookings() {
	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	bookings, err := bookingService.ListByResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(bookings),
		"data":  bookings,
	})
}
