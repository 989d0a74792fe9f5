package report

import (
	"bytes"
	"strconv"

	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/go-pdf/fpdf"
)

// InvoicePDFRenderer renders a single order as a downloadable invoice
type InvoicePDFRenderer struct {
	companyName string
}

// NewInvoicePDFRenderer creates an InvoicePDFRenderer
func NewInvoicePDFRenderer(companyName string) *InvoicePDFRenderer {
	return &InvoicePDFRenderer{companyName: companyName}
}

// ContentType returns the pdf MIME type
func (r *InvoicePDFRenderer) ContentType() string {
	return pdfContentType
}

// Render writes the order into a one-page invoice
func (r *InvoicePDFRenderer) Render(o *order.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(r.companyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, tr("Factura de venta"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Pedido: "+o.ID.String()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Fecha: "+o.CreatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Cliente: "+o.Customer.FullName()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Cédula: "+o.Customer.NationalID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Correo: "+o.Customer.Email), "", 1, "L", false, 0, "")
	address := o.Customer.Address
	if o.Customer.AddressExtra != "" {
		address += ", " + o.Customer.AddressExtra
	}
	pdf.CellFormat(0, 6, tr("Dirección: "+address+", "+o.Customer.Municipality+", "+o.Customer.Department), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 8, tr("Producto"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, tr("Cantidad"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, tr("Precio"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, tr("Subtotal"), "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i := range o.Lines {
		line := &o.Lines[i]
		pdf.CellFormat(100, 7, tr(line.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, strconv.Itoa(line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, line.Amount().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(155, 9, tr("Total"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 9, o.Total.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
