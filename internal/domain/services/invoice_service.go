package services

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// Letter page in points
const (
	pageWidth  = 612.0
	pageHeight = 792.0
)

// InvoiceData is the resolved layout input for one invoice page
type InvoiceData struct {
	BillID      uint
	NumberLabel string // "#0007"
	DateLabel   string // "January 02, 2006"
	Email       string
	Status      string
	AmountLabel string // "Rs. 1,500.00"
	Watermark   string // "PAID" or "UNPAID"
	Filename    string // "Invoice_7.pdf"
}

// InterfaceInvoiceService defines the invoice renderer interface
type InterfaceInvoiceService interface {
	ListByAdmin(adminID uint) ([]BillRow, error)
	BuildInvoiceData(adminID, billID uint) (*InvoiceData, error)
	Render(data *InvoiceData) ([]byte, error)
}

// InvoiceService renders bills as fixed-layout PDF invoices
type InvoiceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(db *gorm.DB, cfg *config.Config) InterfaceInvoiceService {
	return &InvoiceService{
		DB:     db,
		Config: cfg,
	}
}

// ListByAdmin lists the society's bills for the invoice screen
func (s *InvoiceService) ListByAdmin(adminID uint) ([]BillRow, error) {
	var rows []BillRow
	err := s.DB.Model(&models.Bill{}).
		Joins("JOIN residents ON residents.id = bills.user_id").
		Where("residents.admin_id = ?", adminID).
		Select("bills.id AS id, residents.email AS email, bills.amount AS amount, bills.status AS status").
		Order("bills.id DESC").
		Scan(&rows).Error
	return rows, err
}

// BuildInvoiceData resolves a bill of the acting admin's society into the
// strings the page layout needs
func (s *InvoiceService) BuildInvoiceData(adminID, billID uint) (*InvoiceData, error) {
	var row BillRow
	err := s.DB.Model(&models.Bill{}).
		Joins("JOIN residents ON residents.id = bills.user_id").
		Where("bills.id = ? AND residents.admin_id = ?", billID, adminID).
		Select("bills.id AS id, residents.email AS email, bills.amount AS amount, bills.status AS status").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, errors.New("bill not found")
	}

	watermark := "UNPAID"
	if row.Status == models.BillStatusPaid {
		watermark = "PAID"
	}

	return &InvoiceData{
		BillID:      row.ID,
		NumberLabel: fmt.Sprintf("#%04d", row.ID),
		DateLabel:   time.Now().Format("January 02, 2006"),
		Email:       row.Email,
		Status:      row.Status,
		AmountLabel: FormatRupees(row.Amount),
		Watermark:   watermark,
		Filename:    fmt.Sprintf("Invoice_%d.pdf", row.ID),
	}, nil
}

// Render lays out the invoice page: branded header band, bill-to block,
// line-item table and the diagonal status watermark
func (s *InvoiceService) Render(data *InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(255, 140, 0)
	pdf.Rect(0, 0, pageWidth, 100, "F")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(50, 60, "Society Management System")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(50, 80, "Sector 62, Noida, India - 201309")

	// Invoice number block, right aligned
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	title := "INVOICE"
	pdf.Text(pageWidth-50-pdf.GetStringWidth(title), 140, title)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pageWidth-50-pdf.GetStringWidth(data.NumberLabel), 160, data.NumberLabel)
	dateLine := "Date: " + data.DateLabel
	pdf.Text(pageWidth-50-pdf.GetStringWidth(dateLine), 175, dateLine)

	// Bill-to block
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(50, 160, "Bill To:")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(50, 175, data.Email)

	// Line-item table
	rows := [][2]string{
		{"Description", "Amount (INR)"},
		{"Monthly Society Maintenance", data.AmountLabel},
		{"Late Fees", "Rs. 0.00"},
		{"TOTAL", data.AmountLabel},
	}
	s.drawTable(pdf, 50, 230, rows)

	// Diagonal status watermark, centred on the page
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageWidth/2, pageHeight/2)
	pdf.SetFont("Helvetica", "B", 80)
	if data.Watermark == "PAID" {
		pdf.SetAlpha(0.3, "Normal")
		pdf.SetTextColor(0, 255, 0)
	} else {
		pdf.SetAlpha(0.1, "Normal")
		pdf.SetTextColor(255, 0, 0)
	}
	pdf.Text(pageWidth/2-pdf.GetStringWidth(data.Watermark)/2, pageHeight/2, data.Watermark)
	pdf.TransformEnd()
	pdf.SetAlpha(1.0, "Normal")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawTable draws the fixed two-column grid: dark header row, plain body
// rows, orange total row
func (s *InvoiceService) drawTable(pdf *gofpdf.Fpdf, x, y float64, rows [][2]string) {
	const (
		descWidth   = 400.0
		amountWidth = 100.0
		rowHeight   = 28.0
	)

	for i, row := range rows {
		pdf.SetXY(x, y+float64(i)*rowHeight)

		border := "1"
		switch i {
		case 0:
			// Header row
			pdf.SetFillColor(51, 51, 51)
			pdf.SetTextColor(245, 245, 245)
			pdf.SetFont("Helvetica", "B", 12)
		case len(rows) - 1:
			// Total row
			pdf.SetFillColor(255, 140, 0)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "B", 12)
			border = "0"
		default:
			pdf.SetFillColor(255, 255, 255)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 12)
		}

		pdf.CellFormat(descWidth, rowHeight, row[0], border, 0, "L", true, 0, "")
		pdf.CellFormat(amountWidth, rowHeight, row[1], border, 0, "C", true, 0, "")
	}
}

// FormatRupees formats an amount as "Rs. 1,500.00" with comma thousands
func FormatRupees(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := strings.Join(grouped, ",") + "." + fracPart
	if negative {
		out = "-" + out
	}
	return "Rs. " + out
}
