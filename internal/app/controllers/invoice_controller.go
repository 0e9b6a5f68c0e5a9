package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/error/code"
	"github.com/Ayushman2005/SocietyPro/internal/error/response"
)

// InterfaceInvoiceController defines the invoice controller interface
type InterfaceInvoiceController interface {
	GetInvoices()
	DownloadInvoice()
}

// InvoiceController handles PDF invoice requests
type InvoiceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInvoiceController creates a new invoice controller
func NewInvoiceController(ctx *gin.Context, container *container.ServiceContainer) *InvoiceController {
	return &InvoiceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleInvoiceFunc returns a gin handler dispatching to the named method
func HandleInvoiceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInvoiceController(ctx, container)

		switch method {
		case "getInvoices":
			controller.GetInvoices()
		case "downloadInvoice":
			controller.DownloadInvoice()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetInvoices lists the society's bills as invoice candidates
// @Summary      List invoices
// @Tags         Invoice
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/invoices [get]
// @Security     BearerAuth
func (c *InvoiceController) GetInvoices() {
	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	rows, err := invoiceService.ListByAdmin(currentAdminID(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total": len(rows),
		"data":  rows,
	})
}

// 2. DownloadInvoice renders a bill as a PDF attachment
// @Summary      Download invoice PDF
// @Description  Render the bill as a fixed-layout PDF with a PAID or UNPAID watermark
// @Tags         Invoice
// @Produce      application/pdf
// @Param        id path int true "Bill ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/invoices/{id}/download [get]
// @Security     BearerAuth
func (c *InvoiceController) DownloadInvoice() {
	id, ok := idParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid id parameter")
		return
	}

	invoiceService := c.Container.GetService("invoice").(services.InterfaceInvoiceService)
	data, err := invoiceService.BuildInvoiceData(currentAdminID(c.Ctx), id)
	if err != nil {
		response.Fail(c.Ctx, code.ErrBillNotFound, nil)
		return
	}

	pdf, err := invoiceService.Render(data)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "invoice rendering failed", nil)
		return
	}

	c.Ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", data.Filename))
	c.Ctx.Data(200, "application/pdf", pdf)
}
