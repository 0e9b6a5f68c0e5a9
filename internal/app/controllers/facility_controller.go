package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/app/middleware"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceFacilityController defines the facility controller interface
type InterfaceFacilityController interface {
	GetFacilities()
	CreateFacility()
	DeleteFacility()
	GetMyFacilities()
}

// FacilityController handles reservable amenity requests
type FacilityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFacilityController creates a new facility controller
func NewFacilityController(ctx *gin.Context, container *container.ServiceContainer) *FacilityController {
	return &FacilityController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateFacilityRequest adds an amenity
type CreateFacilityRequest struct {
	Name string `json:"name" binding:"required" example:"Badminton Court"`
}

// HandleFacilityFunc returns a gin handler dispatching to the named method
func HandleFacilityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFacilityController(ctx, container)

		switch method {
		case "getFacilities":
			controller.GetFacilities()
		case "createFacility":
			controller.CreateFacility()
		case "deleteFacility":
			controller.DeleteFacility()
		case "getMyFacilities":
			controller.GetMyFacilities()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetFacilities lists the society's amenities
// @Summary      List facilities
// @Tags         Facility
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/facilities [get]
// @Security     BearerAuth
func (c *FacilityController) GetFacilities() {
	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	facilities, err := facilityService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(facilities),
		"data":  facilities,
		"slots": facilityService.Slots(),
	})
}

// 2. CreateFacility adds an amenity to the society
// @Summary      Create facility
// @Tags         Facility
// @Accept       json
// @Produce      json
// @Param        request body CreateFacilityRequest true "Facility name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/facilities [post]
// @Security     BearerAuth
func (c *FacilityController) CreateFacility() {
	var req CreateFacilityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	facility, err := facilityService.Create(currentAdminID(c.Ctx), req.Name)
	if err != nil {
		if err.Error() == "facility already exists" {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "facility already exists", nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// Catalogue listings are cached, drop them
	middleware.PurgeCache()
	response.Success(c.Ctx, facility)
}

// 3. DeleteFacility removes an amenity
// @Summary      Delete facility
// @Tags         Facility
// @Produce      json
// @Param        id path int true "Facility ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/facilities/{id} [delete]
// @Security     BearerAuth
func (c *FacilityController) DeleteFacility() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	if err := facilityService.Delete(currentAdminID(c.Ctx), id); err != nil {
		if err.Error() == "facility not found" {
			response.Fail(c.Ctx, code.ErrFacilityNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, gin.H{"message": "facility deleted"})
}

// 4. GetMyFacilities lists the amenities of the resident's society
// @Summary      List society facilities
// @Description  Facilities available to the resident along with the bookable time slots
// @Tags         Facility
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/facilities [get]
// @Security     BearerAuth
func (c *FacilityController) GetMyFacilities() {
	facilityService := c.Container.GetService("facility").(services.InterfaceFacilityService)
	facilities, err := facilityService.ListForResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(facilities),
		"data":  facilities,
		"slots": facilityService.Slots(),
	})
}
