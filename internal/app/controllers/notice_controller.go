package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceNoticeController defines the notice board controller interface
type InterfaceNoticeController interface {
	GetNotices()
	CreateNotice()
	UpdateNotice()
	DeleteNotice()
	GetMyNotices()
}

// NoticeController handles notice board requests
type NoticeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNoticeController creates a new notice controller
func NewNoticeController(ctx *gin.Context, container *container.ServiceContainer) *NoticeController {
	return &NoticeController{
		Ctx:       ctx,
		Container: container,
	}
}

// NoticeRequest creates or updates a notice
type NoticeRequest struct {
	Title   string `json:"title" binding:"required" example:"Water supply interruption"`
	Content string `json:"content" binding:"required" example:"Maintenance work on Saturday 10:00-14:00"`
}

// HandleNoticeFunc returns a gin handler dispatching to the named method
func HandleNoticeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNoticeController(ctx, container)

		switch method {
		case "getNotices":
			controller.GetNotices()
		case "createNotice":
			controller.CreateNotice()
		case "updateNotice":
			controller.UpdateNotice()
		case "deleteNotice":
			controller.DeleteNotice()
		case "getMyNotices":
			controller.GetMyNotices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetNotices lists the society's notices
// @Summary      List notices
// @Tags         Notice
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/notices [get]
// @Security     BearerAuth
func (c *NoticeController) GetNotices() {
	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notices, err := noticeService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(notices),
		"data":  notices,
	})
}

// 2. CreateNotice posts a notice to the society board
// @Summary      Create notice
// @Tags         Notice
// @Accept       json
// @Produce      json
// @Param        request body NoticeRequest true "Notice content"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/notices [post]
// @Security     BearerAuth
func (c *NoticeController) CreateNotice() {
	var req NoticeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notice, err := noticeService.Create(currentAdminID(c.Ctx), req.Title, req.Content)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, notice)
}

// 3. UpdateNotice edits a notice
// @Summary      Update notice
// @Tags         Notice
// @Accept       json
// @Produce      json
// @Param        id path int true "Notice ID"
// @Param        request body NoticeRequest true "Notice content"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/notices/{id} [put]
// @Security     BearerAuth
func (c *NoticeController) UpdateNotice() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	var req NoticeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notice, err := noticeService.Update(currentAdminID(c.Ctx), id, req.Title, req.Content)
	if err != nil {
		if err.Error() == "notice not found" {
			response.Fail(c.Ctx, code.ErrNoticeNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, notice)
}

// 4. DeleteNotice removes a notice
// @Summary      Delete notice
// @Tags         Notice
// @Produce      json
// @Param        id path int true "Notice ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/notices/{id} [delete]
// @Security     BearerAuth
func (c *NoticeController) DeleteNotice() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	if err := noticeService.Delete(currentAdminID(c.Ctx), id); err != nil {
		if err.Error() == "notice not found" {
			response.Fail(c.Ctx, code.ErrNoticeNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "notice deleted"})
}

// 5. GetMyNotices lists the notices of the resident's society
// @Summary      List society notices
// @Tags         Notice
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/notices [get]
// @Security     BearerAuth
func (c *NoticeController) GetMyNotices() {
	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notices, err := noticeService.ListForResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(notices),
		"data":  notices,
	})
}
