package report

import (
	"bytes"

	appreport "github.com/barrovivo/backend/internal/application/report"
	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/tealeg/xlsx/v3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// salesColumnWidth is the width applied to every column of the sheet
const salesColumnWidth = 18

var salesHeaders = []string{
	"ID Pedido", "Fecha", "Cliente", "Correo", "Departamento", "Municipio",
	"Dirección", "Total", "ID Item", "Producto", "Cantidad", "Precio",
}

// XLSXRenderer renders the sales report as a spreadsheet with one row per
// order line.
type XLSXRenderer struct{}

// NewXLSXRenderer creates an XLSXRenderer
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// Format returns the xlsx format identifier
func (r *XLSXRenderer) Format() appreport.Format {
	return appreport.FormatXLSX
}

// ContentType returns the xlsx MIME type
func (r *XLSXRenderer) ContentType() string {
	return xlsxContentType
}

// Render writes the orders into a workbook. A nil or empty slice produces
// a valid sheet with only the header row.
func (r *XLSXRenderer) Render(orders []order.Order) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Ventas")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, title := range salesHeaders {
		header.AddCell().Value = title
	}
	sheet.SetColWidth(1, len(salesHeaders), salesColumnWidth)

	for i := range orders {
		o := &orders[i]
		for j := range o.Lines {
			line := &o.Lines[j]
			row := sheet.AddRow()
			row.AddCell().Value = o.ID.String()
			row.AddCell().Value = o.CreatedAt.Format("2006-01-02 15:04")
			row.AddCell().Value = o.Customer.FullName()
			row.AddCell().Value = o.Customer.Email
			row.AddCell().Value = o.Customer.Department
			row.AddCell().Value = o.Customer.Municipality
			row.AddCell().Value = o.Customer.Address
			row.AddCell().Value = o.Total.StringFixed(2)
			row.AddCell().Value = line.ID.String()
			row.AddCell().Value = line.ProductName
			row.AddCell().SetInt(line.Quantity)
			row.AddCell().Value = line.UnitPrice.StringFixed(2)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure XLSXRenderer implements the report renderer boundary
var _ appreport.Renderer = (*XLSXRenderer)(nil)
