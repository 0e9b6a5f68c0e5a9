package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfacePollController defines the poll controller interface
type InterfacePollController interface {
	GetPolls()
	CreatePoll()
	ClosePoll()
	GetMyPolls()
	Vote()
}

// PollController handles community poll requests
type PollController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPollController creates a new poll controller
func NewPollController(ctx *gin.Context, container *container.ServiceContainer) *PollController {
	return &PollController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreatePollRequest opens a two-option poll
type CreatePollRequest struct {
	Question string `json:"question" binding:"required" example:"Should the gym stay open until midnight?"`
	Option1  string `json:"option1" binding:"required" example:"Yes"`
	Option2  string `json:"option2" binding:"required" example:"No"`
}

// VoteRequest casts a vote
type VoteRequest struct {
	Choice string `json:"choice" binding:"required" example:"option1"`
}

// HandlePollFunc returns a gin handler dispatching to the named method
func HandlePollFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPollController(ctx, container)

		switch method {
		case "getPolls":
			controller.GetPolls()
		case "createPoll":
			controller.CreatePoll()
		case "closePoll":
			controller.ClosePoll()
		case "getMyPolls":
			controller.GetMyPolls()
		case "vote":
			controller.Vote()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetPolls lists the society's polls with live tallies
// @Summary      List polls
// @Tags         Poll
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/polls [get]
// @Security     BearerAuth
func (c *PollController) GetPolls() {
	pollService := c.Container.GetService("poll").(services.InterfacePollService)
	results, err := pollService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(results),
		"data":  results,
	})
}

// 2. CreatePoll opens a poll for the society
// @Summary      Create poll
// @Tags         Poll
// @Accept       json
// @Produce      json
// @Param        request body CreatePollRequest true "Poll content"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/polls [post]
// @Security     BearerAuth
func (c *PollController) CreatePoll() {
	var req CreatePollRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}

	adminID := currentAdminID(c.Ctx)

	pollService := c.Container.GetService("poll").(services.InterfacePollService)
	poll, err := pollService.Create(adminID, req.Question, req.Option1, req.Option2)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), adminID)

	response.Success(c.Ctx, poll)
}

// 3. ClosePoll stops a poll from accepting votes
// @Summary      Close poll
// @Tags         Poll
// @Produce      json
// @Param        id path int true "Poll ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/polls/{id}/close [put]
// @Security     BearerAuth
func (c *PollController) ClosePoll() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	adminID := currentAdminID(c.Ctx)

	pollService := c.Container.GetService("poll").(services.InterfacePollService)
	poll, err := pollService.Close(adminID, id)
	if err != nil {
		if err.Error() == "poll not found" {
			response.Fail(c.Ctx, code.ErrPollNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), adminID)

	response.Success(c.Ctx, gin.H{
		"id":     poll.ID,
		"status": poll.Status,
	})
}

// 4. GetMyPolls lists the society's polls for the resident
// @Summary      List society polls
// @Description  Polls of the resident's society with tallies and whether this resident has voted
// @Tags         Poll
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/polls [get]
// @Security     BearerAuth
func (c *PollController) GetMyPolls() {
	pollService := c.Container.GetService("poll").(services.InterfacePollService)
	results, err := pollService.ListForResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(results),
		"data":  results,
	})
}

// 5. Vote casts the resident's single vote on a poll
// @Summary      Vote on poll
// @Description  Record one vote per resident per poll. A repeat vote is ignored.
// @Tags         Poll
// @Accept       json
// @Produce      json
// @Param        id path int true "Poll ID"
// @Param        request body VoteRequest true "Chosen option"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /resident/polls/{id}/vote [post]
// @Security     BearerAuth
func (c *PollController) Vote() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	var req VoteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters", nil)
		return
	}

	pollService := c.Container.GetService("poll").(services.InterfacePollService)
	if err := pollService.Vote(currentUserID(c.Ctx), id, req.Choice); err != nil {
		switch err.Error() {
		case "poll not found":
			response.Fail(c.Ctx, code.ErrPollNotFound, nil)
		case "poll is closed":
			response.Fail(c.Ctx, code.ErrPollClosed, nil)
		case "choice must be option1 or option2":
			response.Fail(c.Ctx, code.ErrPollChoiceInvalid, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"message": "vote recorded"})
}
