package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfacePasswordController defines the password reset controller interface
type InterfacePasswordController interface {
	ForgotPassword()
	ResetPassword()
}

// PasswordController handles the OTP password reset flow
type PasswordController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPasswordController creates a new password controller
func NewPasswordController(ctx *gin.Context, container *container.ServiceContainer) *PasswordController {
	return &PasswordController{
		Ctx:       ctx,
		Container: container,
	}
}

// ForgotPasswordRequest asks for an OTP to be mailed
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"resident@greenwood.in"`
}

// ResetPasswordRequest completes the reset with the mailed OTP
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email" example:"resident@greenwood.in"`
	OTP         string `json:"otp" binding:"required,len=6" example:"482913"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=64" example:"NewPass@123"`
}

// HandlePasswordFunc returns a gin handler dispatching to the named method
func HandlePasswordFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPasswordController(ctx, container)

		switch method {
		case "forgotPassword":
			controller.ForgotPassword()
		case "resetPassword":
			controller.ResetPassword()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. ForgotPassword mails a reset OTP
// @Summary      Request password reset OTP
// @Description  Generate a 6-digit code, store it for 10 minutes and mail it to the account's address
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "Account email"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/forgot-password [post]
func (c *PasswordController) ForgotPassword() {
	var req ForgotPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	resetService := c.Container.GetService("password_reset").(services.InterfacePasswordResetService)
	if err := resetService.RequestOTP(req.Email); err != nil {
		if err.Error() == "account not found" {
			response.Fail(c.Ctx, code.ErrAccountNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrOTPDelivery, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "OTP sent to registered email"})
}

// 2. ResetPassword verifies the OTP and sets a new password
// @Summary      Reset password with OTP
// @Description  Verify the mailed code and update the account password. The code is single use.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "Reset parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/reset-password [post]
func (c *PasswordController) ResetPassword() {
	var req ResetPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	resetService := c.Container.GetService("password_reset").(services.InterfacePasswordResetService)
	if err := resetService.VerifyAndReset(req.Email, req.OTP, req.NewPassword); err != nil {
		if err == services.ErrOTPInvalid {
			response.Fail(c.Ctx, code.ErrOTPInvalid, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "password updated"})
}
