package report

import (
	"bytes"
	"strconv"

	appreport "github.com/barrovivo/backend/internal/application/report"
	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/go-pdf/fpdf"
)

const pdfContentType = "application/pdf"

// PDFRenderer renders the sales report as a landscape table with one row
// per order line.
type PDFRenderer struct {
	companyName string
}

// NewPDFRenderer creates a PDFRenderer titled with the company name
func NewPDFRenderer(companyName string) *PDFRenderer {
	return &PDFRenderer{companyName: companyName}
}

// Format returns the pdf format identifier
func (r *PDFRenderer) Format() appreport.Format {
	return appreport.FormatPDF
}

// ContentType returns the pdf MIME type
func (r *PDFRenderer) ContentType() string {
	return pdfContentType
}

// Render writes the orders into a PDF document. A nil or empty slice
// produces a valid document with only the header.
func (r *PDFRenderer) Render(orders []order.Order) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(r.companyName+" - Reporte de ventas"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	columns := []struct {
		title string
		width float64
	}{
		{"Pedido", 28},
		{"Fecha", 28},
		{"Cliente", 42},
		{"Municipio", 32},
		{"Producto", 60},
		{"Cantidad", 22},
		{"Precio", 32},
		{"Total pedido", 32},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for i := range orders {
		o := &orders[i]
		for j := range o.Lines {
			line := &o.Lines[j]
			pdf.CellFormat(columns[0].width, 7, shortID(o.ID.String()), "1", 0, "L", false, 0, "")
			pdf.CellFormat(columns[1].width, 7, o.CreatedAt.Format("2006-01-02"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(columns[2].width, 7, tr(o.Customer.FullName()), "1", 0, "L", false, 0, "")
			pdf.CellFormat(columns[3].width, 7, tr(o.Customer.Municipality), "1", 0, "L", false, 0, "")
			pdf.CellFormat(columns[4].width, 7, tr(line.ProductName), "1", 0, "L", false, 0, "")
			pdf.CellFormat(columns[5].width, 7, strconv.Itoa(line.Quantity), "1", 0, "R", false, 0, "")
			pdf.CellFormat(columns[6].width, 7, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.CellFormat(columns[7].width, 7, o.Total.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// shortID keeps report cells readable by truncating the UUID
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Ensure PDFRenderer implements the report renderer boundary
var _ appreport.Renderer = (*PDFRenderer)(nil)
