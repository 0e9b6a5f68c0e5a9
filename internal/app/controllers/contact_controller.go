package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceContactController defines the contact form controller interface
type InterfaceContactController interface {
	Submit()
	GetInquiries()
}

// ContactController handles public contact form requests
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController creates a new contact controller
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// ContactRequest is a public contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Sunita Rao"`
	Email   string `json:"email" binding:"required,email" example:"sunita@example.com"`
	Message string `json:"message" binding:"required" example:"How do I register my society?"`
}

// HandleContactFunc returns a gin handler dispatching to the named method
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "submit":
			controller.Submit()
		case "getInquiries":
			controller.GetInquiries()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Submit stores a contact form submission
// @Summary      Submit contact form
// @Description  Store the inquiry and notify the operator inbox. The inquiry is kept even if mail delivery fails.
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body ContactRequest true "Inquiry"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /contact [post]
func (c *ContactController) Submit() {
	var req ContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	inquiry, err := contactService.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":      inquiry.ID,
		"message": "inquiry received",
	})
}

// 2. GetInquiries pages through stored inquiries
// @Summary      List contact inquiries
// @Tags         Contact
// @Produce      json
// @Param        page query int false "Page, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/inquiries [get]
// @Security     BearerAuth
func (c *ContactController) GetInquiries() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	inquiries, total, err := contactService.List(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"data":      inquiries,
	})
}
