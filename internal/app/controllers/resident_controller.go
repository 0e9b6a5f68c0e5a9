package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceResidentController defines the resident controller interface
type InterfaceResidentController interface {
	Register()
	GetTenants()
	GetTenant()
	CreateTenant()
	UpdateTenant()
	DeleteTenant()
	GetProfile()
	UpdateProfile()
}

// ResidentController handles resident account requests, both the admin's
// tenant management and the resident's own profile
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController creates a new resident controller
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterResidentRequest is a resident self-registration with a society
// join code
type RegisterResidentRequest struct {
	Name     string `json:"name" binding:"required" example:"Rahul Verma"`
	Email    string `json:"email" binding:"required,email" example:"rahul@example.com"`
	Password string `json:"password" binding:"required,min=6,max=64" example:"Resident@123"`
	JoinCode string `json:"join_code" binding:"required" example:"4f9d2c1a-77aa-4b21-9c3f-5a1e8d0b2f44"`
}

// CreateTenantRequest creates a resident account inside the admin's society
type CreateTenantRequest struct {
	Name     string `json:"name" binding:"required" example:"Rahul Verma"`
	Email    string `json:"email" binding:"required,email" example:"rahul@example.com"`
	Password string `json:"password" binding:"required,min=6,max=64" example:"Resident@123"`
}

// UpdateTenantRequest updates a tenant. A blank password keeps the current
// one.
type UpdateTenantRequest struct {
	Name     string `json:"name" binding:"required" example:"Rahul Verma"`
	Email    string `json:"email" binding:"required,email" example:"rahul@example.com"`
	Password string `json:"password" binding:"omitempty,min=6,max=64" example:"NewPass@123"`
}

// UpdateResidentProfileRequest updates the resident's own credentials
type UpdateResidentProfileRequest struct {
	Email    string `json:"email" binding:"omitempty,email" example:"rahul@example.com"`
	Password string `json:"password" binding:"omitempty,min=6,max=64" example:"NewPass@123"`
}

// HandleResidentFunc returns a gin handler dispatching to the named method
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "deleteTenant":
			controller.DeleteTenant()
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Register handles resident self-registration with a join code
// @Summary      Register resident
// @Description  Create a resident account in the society identified by the join code
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        request body RegisterResidentRequest true "Resident registration"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/register/resident [post]
func (c *ResidentController) Register() {
	var req RegisterResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.RegisterWithJoinCode(req.Name, req.Email, req.Password, req.JoinCode)
	if err != nil {
		switch err.Error() {
		case "society code not recognised":
			response.Fail(c.Ctx, code.ErrSocietyCodeInvalid, nil)
		case "email already registered":
			response.Fail(c.Ctx, code.ErrAccountAlreadyExists, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "registration failed: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":       resident.ID,
		"name":     resident.Name,
		"email":    resident.Email,
		"admin_id": resident.AdminID,
	})
}

// 2. GetTenants lists the admin's residents
// @Summary      List tenants
// @Tags         Tenant
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/tenants [get]
// @Security     BearerAuth
func (c *ResidentController) GetTenants() {
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	tenants, err := residentService.ListTenants(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	var rows []gin.H
	for _, t := range tenants {
		rows = append(rows, gin.H{
			"id":         t.ID,
			"name":       t.Name,
			"email":      t.Email,
			"created_at": t.CreatedAt,
		})
	}

	response.Success(c.Ctx, gin.H{
		"total": len(tenants),
		"data":  rows,
	})
}

// 3. GetTenant returns one of the admin's residents
// @Summary      Get tenant
// @Tags         Tenant
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/tenants/{id} [get]
// @Security     BearerAuth
func (c *ResidentController) GetTenant() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	tenant, err := residentService.GetTenant(currentAdminID(c.Ctx), id)
	if err != nil {
		response.NotFound(c.Ctx, "tenant not found")
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":         tenant.ID,
		"name":       tenant.Name,
		"email":      tenant.Email,
		"created_at": tenant.CreatedAt,
	})
}

// 4. CreateTenant creates a resident inside the admin's society
// @Summary      Create tenant
// @Description  Create a resident account with a zero-amount settled welcome bill
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        request body CreateTenantRequest true "Tenant information"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/tenants [post]
// @Security     BearerAuth
func (c *ResidentController) CreateTenant() {
	var req CreateTenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	tenant, err := residentService.CreateTenant(currentAdminID(c.Ctx), req.Name, req.Email, req.Password)
	if err != nil {
		if err.Error() == "email already registered" {
			response.Fail(c.Ctx, code.ErrAccountAlreadyExists, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), currentAdminID(c.Ctx))

	response.Success(c.Ctx, gin.H{
		"id":    tenant.ID,
		"name":  tenant.Name,
		"email": tenant.Email,
	})
}

// 5. UpdateTenant updates one of the admin's residents
// @Summary      Update tenant
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Param        request body UpdateTenantRequest true "Tenant changes"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/tenants/{id} [put]
// @Security     BearerAuth
func (c *ResidentController) UpdateTenant() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	var req UpdateTenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	tenant, err := residentService.UpdateTenant(currentAdminID(c.Ctx), id, req.Name, req.Email, req.Password)
	if err != nil {
		switch err.Error() {
		case "resident not found":
			response.NotFound(c.Ctx, "tenant not found")
		case "email already registered":
			response.Fail(c.Ctx, code.ErrAccountAlreadyExists, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":    tenant.ID,
		"name":  tenant.Name,
		"email": tenant.Email,
	})
}

// 6. DeleteTenant removes a resident and all their records
// @Summary      Delete tenant
// @Description  Delete the resident along with their bills, visitors, bookings, complaints and votes
// @Tags         Tenant
// @Produce      json
// @Param        id path int true "Tenant ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/tenants/{id} [delete]
// @Security     BearerAuth
func (c *ResidentController) DeleteTenant() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.DeleteTenant(currentAdminID(c.Ctx), id); err != nil {
		if err.Error() == "resident not found" {
			response.NotFound(c.Ctx, "tenant not found")
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), currentAdminID(c.Ctx))

	response.Success(c.Ctx, gin.H{"message": "tenant deleted"})
}

// 7. GetProfile returns the resident's own account
// @Summary      Get resident profile
// @Tags         Resident
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /resident/profile [get]
// @Security     BearerAuth
func (c *ResidentController) GetProfile() {
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.GetResidentByID(currentUserID(c.Ctx))
	if err != nil {
		response.NotFound(c.Ctx, "resident not found")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	societyName := ""
	if admin, err := adminService.GetAdminByID(resident.AdminID); err == nil {
		societyName = admin.SocietyName
	}

	response.Success(c.Ctx, gin.H{
		"id":           resident.ID,
		"name":         resident.Name,
		"email":        resident.Email,
		"society_name": societyName,
		"created_at":   resident.CreatedAt,
	})
}

// 8. UpdateProfile updates the resident's own credentials
// @Summary      Update resident profile
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        request body UpdateResidentProfileRequest true "Profile changes"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /resident/profile [put]
// @Security     BearerAuth
func (c *ResidentController) UpdateProfile() {
	var req UpdateResidentProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.UpdateProfile(currentUserID(c.Ctx), req.Email, req.Password)
	if err != nil {
		if err.Error() == "email already registered" {
			response.Fail(c.Ctx, code.ErrAccountAlreadyExists, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":    resident.ID,
		"email": resident.Email,
	})
}
