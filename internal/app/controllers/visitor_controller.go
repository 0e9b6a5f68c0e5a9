package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceVisitorController defines the visitor log controller interface
type InterfaceVisitorController interface {
	GetVisitors()
	UpdateVisitorStatus()
	CreateVisitor()
	GetMyVisitors()
}

// VisitorController handles gate-pass visitor log requests
type VisitorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitorController creates a new visitor controller
func NewVisitorController(ctx *gin.Context, container *container.ServiceContainer) *VisitorController {
	return &VisitorController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateVisitorRequest pre-registers an expected visitor
type CreateVisitorRequest struct {
	Name      string `json:"name" binding:"required" example:"Amit Kumar"`
	Phone     string `json:"phone" binding:"required" example:"+91 98765 43210"`
	VisitDate string `json:"visit_date" binding:"required" example:"2026-09-05"`
	VisitTime string `json:"visit_time" binding:"required" example:"15:30"`
}

// UpdateVisitorStatusRequest records a gate check-in or check-out
type UpdateVisitorStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Checked In"`
}

// HandleVisitorFunc returns a gin handler dispatching to the named method
func HandleVisitorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitorController(ctx, container)

		switch method {
		case "getVisitors":
			controller.GetVisitors()
		case "updateVisitorStatus":
			controller.UpdateVisitorStatus()
		case "createVisitor":
			controller.CreateVisitor()
		case "getMyVisitors":
			controller.GetMyVisitors()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetVisitors lists the society's visitor log
// @Summary      List visitors
// @Tags         Visitor
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/visitors [get]
// @Security     BearerAuth
func (c *VisitorController) GetVisitors() {
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	rows, err := visitorService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(rows),
		"data":  rows,
	})
}

// 2. UpdateVisitorStatus records a gate event for a visitor
// @Summary      Update visitor status
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Param        id path int true "Visitor ID"
// @Param        request body UpdateVisitorStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/visitors/{id} [put]
// @Security     BearerAuth
func (c *VisitorController) UpdateVisitorStatus() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	var req UpdateVisitorStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	switch req.Status {
	case models.VisitorStatusExpected, models.VisitorStatusCheckedIn, models.VisitorStatusCheckedOut:
	default:
		response.ParamError(c.Ctx, "status must be Expected, Checked In or Checked Out")
		return
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitor, err := visitorService.UpdateStatus(currentAdminID(c.Ctx), id, req.Status)
	if err != nil {
		if err.Error() == "visitor entry not found" {
			response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":     visitor.ID,
		"status": visitor.Status,
	})
}

// 3. CreateVisitor pre-registers a visitor and issues a gate pass
// @Summary      Add visitor
// @Description  Append a visitor to the resident's log with a unique pass code
// @Tags         Visitor
// @Accept       json
// @Produce      json
// @Param        request body CreateVisitorRequest true "Visitor information"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /resident/visitors [post]
// @Security     BearerAuth
func (c *VisitorController) CreateVisitor() {
	var req CreateVisitorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitor, err := visitorService.Create(currentUserID(c.Ctx), req.Name, req.Phone, req.VisitDate, req.VisitTime)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":         visitor.ID,
		"name":       visitor.Name,
		"pass_code":  visitor.PassCode,
		"visit_date": visitor.VisitDate,
		"visit_time": visitor.VisitTime,
		"status":     visitor.Status,
	})
}

// 4. GetMyVisitors lists the resident's own visitor log
// @Summary      List my visitors
// @Tags         Visitor
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/visitors [get]
// @Security     BearerAuth
func (c *VisitorController) GetMyVisitors() {
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitors, err := visitorService.ListByResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(visitors),
		"data":  visitors,
	})
}
