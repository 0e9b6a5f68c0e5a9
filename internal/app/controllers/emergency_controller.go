package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/app/middleware"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceEmergencyController defines the emergency directory controller
// interface
type InterfaceEmergencyController interface {
	GetContacts()
	CreateContact()
	UpdateContact()
	DeleteContact()
	GetMyContacts()
}

// EmergencyController handles emergency directory requests
type EmergencyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmergencyController creates a new emergency controller
func NewEmergencyController(ctx *gin.Context, container *container.ServiceContainer) *EmergencyController {
	return &EmergencyController{
		Ctx:       ctx,
		Container: container,
	}
}

// EmergencyContactRequest creates or updates a directory entry
type EmergencyContactRequest struct {
	Name  string `json:"name" binding:"required" example:"Main Gate Security"`
	Role  string `json:"role" binding:"required" example:"Security"`
	Phone string `json:"phone" binding:"required" example:"+91 98765 43210"`
	Theme string `json:"theme" binding:"omitempty,oneof=red green blue orange" example:"green"`
}

// HandleEmergencyFunc returns a gin handler dispatching to the named method
func HandleEmergencyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmergencyController(ctx, container)

		switch method {
		case "getContacts":
			controller.GetContacts()
		case "createContact":
			controller.CreateContact()
		case "updateContact":
			controller.UpdateContact()
		case "deleteContact":
			controller.DeleteContact()
		case "getMyContacts":
			controller.GetMyContacts()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetContacts lists the society's emergency directory
// @Summary      List emergency contacts
// @Tags         Emergency
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/emergency-contacts [get]
// @Security     BearerAuth
func (c *EmergencyController) GetContacts() {
	emergencyService := c.Container.GetService("emergency_contact").(services.InterfaceEmergencyContactService)
	contacts, err := emergencyService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(contacts),
		"data":  contacts,
	})
}

// 2. CreateContact adds a directory entry
// @Summary      Create emergency contact
// @Tags         Emergency
// @Accept       json
// @Produce      json
// @Param        request body EmergencyContactRequest true "Contact information"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/emergency-contacts [post]
// @Security     BearerAuth
func (c *EmergencyController) CreateContact() {
	var req EmergencyContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	emergencyService := c.Container.GetService("emergency_contact").(services.InterfaceEmergencyContactService)
	contact, err := emergencyService.Create(currentAdminID(c.Ctx), req.Name, req.Role, req.Phone, req.Theme)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// Directory listings are cached, drop them
	middleware.PurgeCache()
	response.Success(c.Ctx, contact)
}

// 3. UpdateContact edits a directory entry
// @Summary      Update emergency contact
// @Tags         Emergency
// @Accept       json
// @Produce      json
// @Param        id path int true "Contact ID"
// @Param        request body EmergencyContactRequest true "Contact information"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/emergency-contacts/{id} [put]
// @Security     BearerAuth
func (c *EmergencyController) UpdateContact() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	var req EmergencyContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	emergencyService := c.Container.GetService("emergency_contact").(services.InterfaceEmergencyContactService)
	contact, err := emergencyService.Update(currentAdminID(c.Ctx), id, req.Name, req.Role, req.Phone, req.Theme)
	if err != nil {
		if err.Error() == "emergency contact not found" {
			response.Fail(c.Ctx, code.ErrContactNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, contact)
}

// 4. DeleteContact removes a directory entry
// @Summary      Delete emergency contact
// @Tags         Emergency
// @Produce      json
// @Param        id path int true "Contact ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/emergency-contacts/{id} [delete]
// @Security     BearerAuth
func (c *EmergencyController) DeleteContact() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	emergencyService := c.Container.GetService("emergency_contact").(services.InterfaceEmergencyContactService)
	if err := emergencyService.Delete(currentAdminID(c.Ctx), id); err != nil {
		if err.Error() == "emergency contact not found" {
			response.Fail(c.Ctx, code.ErrContactNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, gin.H{"message": "contact deleted"})
}

// 5. GetMyContacts lists the directory of the resident's society
// @Summary      List society emergency contacts
// @Tags         Emergency
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/emergency [get]
// @Security     BearerAuth
func (c *EmergencyController) GetMyContacts() {
	emergencyService := c.Container.GetService("emergency_contact").(services.InterfaceEmergencyContactService)
	contacts, err := emergencyService.ListForResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(contacts),
		"data":  contacts,
	})
}
