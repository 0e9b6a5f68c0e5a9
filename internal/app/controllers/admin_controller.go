package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceAdminController defines the admin controller interface
type InterfaceAdminController interface {
	Register()
	Dashboard()
	GetFund()
	UpdateFund()
	GetProfile()
	UpdateProfile()
}

// AdminController handles society admin requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterAdminRequest creates a new society with its admin account
type RegisterAdminRequest struct {
	Name        string `json:"name" binding:"required" example:"Priya Sharma"`
	Email       string `json:"email" binding:"required,email" example:"admin@greenwood.in"`
	SocietyName string `json:"society_name" binding:"required" example:"Greenwood Heights"`
	Password    string `json:"password" binding:"required,min=6,max=64" example:"Admin@123"`
}

// UpdateFundRequest sets the society fund balance
type UpdateFundRequest struct {
	Amount *float64 `json:"amount" binding:"required" example:"250000"`
}

// UpdateAdminProfileRequest updates the admin's own credentials
type UpdateAdminProfileRequest struct {
	Email    string `json:"email" binding:"omitempty,email" example:"admin@greenwood.in"`
	Password string `json:"password" binding:"omitempty,min=6,max=64" example:"NewPass@123"`
}

// HandleAdminFunc returns a gin handler dispatching to the named method
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "dashboard":
			controller.Dashboard()
		case "getFund":
			controller.GetFund()
		case "updateFund":
			controller.UpdateFund()
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Register creates a new society and its admin account
// @Summary      Register society admin
// @Description  Create a society with its admin account, default facilities and emergency directory
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body RegisterAdminRequest true "Admin registration"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/register/admin [post]
func (c *AdminController) Register() {
	var req RegisterAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Register(req.Name, req.Email, req.SocietyName, req.Password)
	if err != nil {
		if err.Error() == "email already registered" {
			response.Fail(c.Ctx, code.ErrAccountAlreadyExists, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "registration failed: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":           admin.ID,
		"name":         admin.Name,
		"email":        admin.Email,
		"society_name": admin.SocietyName,
		"join_code":    admin.JoinCode,
	})
}

// 2. Dashboard returns the society's headline figures
// @Summary      Admin dashboard
// @Description  Resident count, fund balance, billing totals, open complaints and active polls
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/dashboard [get]
// @Security     BearerAuth
func (c *AdminController) Dashboard() {
	adminID := currentAdminID(c.Ctx)

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if cached, err := redisService.GetDashboardSummary(c.Ctx.Request.Context(), adminID); err == nil && cached != nil {
		response.Success(c.Ctx, cached)
		return
	}

	db := c.Container.GetDB()

	var residents int64
	if err := db.Model(&models.Resident{}).Where("admin_id = ?", adminID).Count(&residents).Error; err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	fundService := c.Container.GetService("fund").(services.InterfaceFundService)
	fund, err := fundService.GetOrCreate(adminID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	totals, err := billService.TotalsByAdmin(adminID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	var openComplaints int64
	err = db.Model(&models.Complaint{}).
		Joins("JOIN residents ON residents.id = complaints.user_id").
		Where("residents.admin_id = ? AND complaints.status <> ?", adminID, models.ComplaintStatusResolved).
		Count(&openComplaints).Error
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	var activePolls int64
	err = db.Model(&models.Poll{}).
		Where("admin_id = ? AND status = ?", adminID, models.PollStatusActive).
		Count(&activePolls).Error
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	summary := &services.DashboardSummary{
		Residents:     residents,
		FundBalance:   fund.Amount,
		Billed:        totals.Billed,
		Collected:     totals.Collected,
		Outstanding:   totals.Outstanding,
		OpenComplaint: openComplaints,
		ActivePolls:   activePolls,
	}

	// Best effort, the response does not depend on the cache
	_ = redisService.CacheDashboardSummary(c.Ctx.Request.Context(), adminID, summary)

	response.Success(c.Ctx, summary)
}

// 3. GetFund returns the society fund balance
// @Summary      Get society fund
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/fund [get]
// @Security     BearerAuth
func (c *AdminController) GetFund() {
	adminID := currentAdminID(c.Ctx)

	fundService := c.Container.GetService("fund").(services.InterfaceFundService)
	fund, err := fundService.GetOrCreate(adminID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"amount": fund.Amount})
}

// 4. UpdateFund sets the society fund balance
// @Summary      Update society fund
// @Description  Set the manually maintained fund balance
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body UpdateFundRequest true "New balance"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/fund [put]
// @Security     BearerAuth
func (c *AdminController) UpdateFund() {
	var req UpdateFundRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}
	if *req.Amount < 0 {
		response.ParamError(c.Ctx, "amount must not be negative")
		return
	}

	adminID := currentAdminID(c.Ctx)

	fundService := c.Container.GetService("fund").(services.InterfaceFundService)
	fund, err := fundService.Update(adminID, *req.Amount)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), adminID)

	response.Success(c.Ctx, gin.H{"amount": fund.Amount})
}

// 5. GetProfile returns the admin's own account
// @Summary      Get admin profile
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/profile [get]
// @Security     BearerAuth
func (c *AdminController) GetProfile() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(currentUserID(c.Ctx))
	if err != nil {
		response.NotFound(c.Ctx, "admin not found")
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":           admin.ID,
		"name":         admin.Name,
		"email":        admin.Email,
		"society_name": admin.SocietyName,
		"join_code":    admin.JoinCode,
		"created_at":   admin.CreatedAt,
	})
}

// 6. UpdateProfile updates the admin's own credentials
// @Summary      Update admin profile
// @Description  Change email and/or password. Blank fields keep the current value.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body UpdateAdminProfileRequest true "Profile changes"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/profile [put]
// @Security     BearerAuth
func (c *AdminController) UpdateProfile() {
	var req UpdateAdminProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateProfile(currentUserID(c.Ctx), req.Email, req.Password)
	if err != nil {
		if err.Error() == "email already registered" {
			response.Fail(c.Ctx, code.ErrAccountAlreadyExists, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":    admin.ID,
		"email": admin.Email,
	})
}
