package report

import (
	"bytes"
	"testing"

	appreport "github.com/barrovivo/backend/internal/application/report"
	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	o := &order.Order{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     uuid.New(),
		Customer: order.Customer{
			FirstName:    "María",
			LastName:     "Quintero",
			NationalID:   "1012345678",
			Email:        "maria@example.com",
			Phone:        "3001234567",
			Department:   "Antioquia",
			Municipality: "Medellín",
			Address:      "Cra 45 # 10-20",
		},
	}
	o.Lines = []order.OrderLine{
		{
			BaseEntity:  shared.NewBaseEntity(),
			OrderID:     o.ID,
			ProductID:   uuid.New(),
			ProductName: "Matera grande",
			Quantity:    2,
			UnitPrice:   decimal.NewFromInt(45000),
		},
		{
			BaseEntity:  shared.NewBaseEntity(),
			OrderID:     o.ID,
			ProductID:   uuid.New(),
			ProductName: "Pocillo esmaltado",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(18000),
		},
	}
	o.Total = decimal.NewFromInt(108000)
	return o
}

func TestXLSXRenderer_Render(t *testing.T) {
	renderer := NewXLSXRenderer()
	assert.Equal(t, appreport.FormatXLSX, renderer.Format())

	data, err := renderer.Render([]order.Order{*sampleOrder(t)})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Ventas", sheet.Name)
	// header plus one row per order line
	assert.Equal(t, 3, sheet.MaxRow)

	header, err := sheet.Row(0)
	require.NoError(t, err)
	first := header.GetCell(0)
	assert.Equal(t, "ID Pedido", first.Value)
	last := header.GetCell(11)
	assert.Equal(t, "Precio", last.Value)

	row, err := sheet.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "María Quintero", row.GetCell(2).Value)
	assert.Equal(t, "Matera grande", row.GetCell(9).Value)
	assert.Equal(t, "45000.00", row.GetCell(11).Value)
}

func TestXLSXRenderer_RenderEmpty(t *testing.T) {
	data, err := NewXLSXRenderer().Render(nil)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Equal(t, 1, file.Sheets[0].MaxRow)
}

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer("Barrovivo")
	assert.Equal(t, appreport.FormatPDF, renderer.Format())
	assert.Equal(t, "application/pdf", renderer.ContentType())

	data, err := renderer.Render([]order.Order{*sampleOrder(t)})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFRenderer_RenderEmpty(t *testing.T) {
	data, err := NewPDFRenderer("Barrovivo").Render(nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestInvoicePDFRenderer_Render(t *testing.T) {
	renderer := NewInvoicePDFRenderer("Barrovivo")

	data, err := renderer.Render(sampleOrder(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "application/pdf", renderer.ContentType())
}
