package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceComplaintController defines the complaint desk controller interface
type InterfaceComplaintController interface {
	GetComplaints()
	UpdateComplaintStatus()
	CreateComplaint()
	GetMyComplaints()
}

// ComplaintController handles complaint desk requests
type ComplaintController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComplaintController creates a new complaint controller
func NewComplaintController(ctx *gin.Context, container *container.ServiceContainer) *ComplaintController {
	return &ComplaintController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateComplaintRequest files a complaint
type CreateComplaintRequest struct {
	Subject     string `json:"subject" binding:"required" example:"Lift out of order"`
	Description string `json:"description" binding:"required" example:"Tower B lift has been stuck since Monday"`
}

// UpdateComplaintStatusRequest moves a complaint through its workflow
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required" example:"In Progress"`
}

// HandleComplaintFunc returns a gin handler dispatching to the named method
func HandleComplaintFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComplaintController(ctx, container)

		switch method {
		case "getComplaints":
			controller.GetComplaints()
		case "updateComplaintStatus":
			controller.UpdateComplaintStatus()
		case "createComplaint":
			controller.CreateComplaint()
		case "getMyComplaints":
			controller.GetMyComplaints()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetComplaints lists the society's complaints, open first
// @Summary      List complaints
// @Tags         Complaint
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/complaints [get]
// @Security     BearerAuth
func (c *ComplaintController) GetComplaints() {
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	rows, err := complaintService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(rows),
		"data":  rows,
	})
}

// 2. UpdateComplaintStatus moves a complaint to a new status
// @Summary      Update complaint status
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        id path int true "Complaint ID"
// @Param        request body UpdateComplaintStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/complaints/{id} [put]
// @Security     BearerAuth
func (c *ComplaintController) UpdateComplaintStatus() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	var req UpdateComplaintStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	switch req.Status {
	case models.ComplaintStatusPending, models.ComplaintStatusInProgress, models.ComplaintStatusResolved:
	default:
		response.ParamError(c.Ctx, "status must be Pending, In Progress or Resolved")
		return
	}

	adminID := currentAdminID(c.Ctx)

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.UpdateStatus(adminID, id, req.Status)
	if err != nil {
		if err.Error() == "complaint not found" {
			response.Fail(c.Ctx, code.ErrComplaintNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), adminID)

	response.Success(c.Ctx, gin.H{
		"id":     complaint.ID,
		"status": complaint.Status,
	})
}

// 3. CreateComplaint files a complaint as the resident
// @Summary      File complaint
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        request body CreateComplaintRequest true "Complaint content"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /resident/complaints [post]
// @Security     BearerAuth
func (c *ComplaintController) CreateComplaint() {
	var req CreateComplaintRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.Create(currentUserID(c.Ctx), req.Subject, req.Description)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), currentAdminID(c.Ctx))

	response.Success(c.Ctx, complaint)
}

// 4. GetMyComplaints lists the resident's own complaints
// @Summary      List my complaints
// @Tags         Complaint
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/complaints [get]
// @Security     BearerAuth
func (c *ComplaintController) GetMyComplaints() {
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaints, err := complaintService.ListByResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(complaints),
		"data":  complaints,
	})
}
