package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceBillController defines the billing controller interface
type InterfaceBillController interface {
	GetBills()
	CreateBill()
	MarkPaid()
	DeleteBill()
	GetMyBills()
}

// BillController handles billing requests
type BillController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBillController creates a new bill controller
func NewBillController(ctx *gin.Context, container *container.ServiceContainer) *BillController {
	return &BillController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateBillRequest raises a bill against a resident
type CreateBillRequest struct {
	ResidentID uint     `json:"resident_id" binding:"required" example:"3"`
	Amount     *float64 `json:"amount" binding:"required" example:"1500"`
}

// HandleBillFunc returns a gin handler dispatching to the named method
func HandleBillFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBillController(ctx, container)

		switch method {
		case "getBills":
			controller.GetBills()
		case "createBill":
			controller.CreateBill()
		case "markPaid":
			controller.MarkPaid()
		case "deleteBill":
			controller.DeleteBill()
		case "getMyBills":
			controller.GetMyBills()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetBills pages through the society's bills
// @Summary      List bills
// @Description  Paged bills of the admin's society joined with resident emails
// @Tags         Bill
// @Produce      json
// @Param        page query int false "Page, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/bills [get]
// @Security     BearerAuth
func (c *BillController) GetBills() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	rows, total, err := billService.ListByAdmin(currentAdminID(c.Ctx), page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"data":      rows,
	})
}

// 2. CreateBill raises an unpaid bill against a resident
// @Summary      Create bill
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill information"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/bills [post]
// @Security     BearerAuth
func (c *BillController) CreateBill() {
	var req CreateBillRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error(), nil)
		return
	}
	if *req.Amount < 0 {
		response.ParamError(c.Ctx, "amount must not be negative")
		return
	}

	adminID := currentAdminID(c.Ctx)

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bill, err := billService.CreateBill(adminID, req.ResidentID, *req.Amount)
	if err != nil {
		if err.Error() == "resident belongs to a different society" {
			response.Fail(c.Ctx, code.ErrResidentNotOwned, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), adminID)

	response.Success(c.Ctx, gin.H{
		"id":     bill.ID,
		"amount": bill.Amount,
		"status": bill.Status,
	})
}

// 3. MarkPaid settles a bill
// @Summary      Mark bill paid
// @Tags         Bill
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/bills/{id}/pay [put]
// @Security     BearerAuth
func (c *BillController) MarkPaid() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	adminID := currentAdminID(c.Ctx)

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bill, err := billService.MarkPaid(adminID, id)
	if err != nil {
		if err.Error() == "bill not found" {
			response.Fail(c.Ctx, code.ErrBillNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), adminID)

	response.Success(c.Ctx, gin.H{
		"id":     bill.ID,
		"status": bill.Status,
	})
}

// 4. DeleteBill removes a bill
// @Summary      Delete bill
// @Tags         Bill
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/bills/{id} [delete]
// @Security     BearerAuth
func (c *BillController) DeleteBill() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	adminID := currentAdminID(c.Ctx)

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	if err := billService.DeleteBill(adminID, id); err != nil {
		if err.Error() == "bill not found" {
			response.Fail(c.Ctx, code.ErrBillNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateDashboard(c.Ctx.Request.Context(), adminID)

	response.Success(c.Ctx, gin.H{"message": "bill deleted"})
}

// 5. GetMyBills lists the resident's own bills
// @Summary      List my bills
// @Tags         Bill
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /resident/bills [get]
// @Security     BearerAuth
func (c *BillController) GetMyBills() {
	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bills, err := billService.ListByResident(currentUserID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(bills),
		"data":  bills,
	})
}
