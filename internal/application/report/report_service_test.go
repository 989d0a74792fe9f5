package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	orders   []order.Order
	lastFrom time.Time
	lastTo   time.Time
}

func (r *fakeOrderRepo) FindByID(_ context.Context, _ uuid.UUID) (*order.Order, error) {
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindByUserID(_ context.Context, _ uuid.UUID) ([]order.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) FindAllInRange(_ context.Context, from, to time.Time) ([]order.Order, error) {
	r.lastFrom, r.lastTo = from, to
	return r.orders, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, _ *order.Order) error { return nil }

type stubRenderer struct {
	format    Format
	fail      bool
	lastBatch []order.Order
}

func (r *stubRenderer) Format() Format      { return r.format }
func (r *stubRenderer) ContentType() string { return "application/test" }

func (r *stubRenderer) Render(orders []order.Order) ([]byte, error) {
	r.lastBatch = orders
	if r.fail && orders != nil {
		return nil, errors.New("row exploded")
	}
	return []byte("doc"), nil
}

func TestExportSales(t *testing.T) {
	repo := &fakeOrderRepo{orders: []order.Order{*order.NewOrder(uuid.New(), order.Customer{}, nil)}}
	renderer := &stubRenderer{format: FormatXLSX}
	svc := NewService(repo, []Renderer{renderer}, zap.NewNop())

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	export, err := svc.ExportSales(context.Background(), from, to, FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, []byte("doc"), export.Data)
	assert.Equal(t, "application/test", export.ContentType)
	assert.Regexp(t, `^reporte_ventas_\d{8}\.xlsx$`, export.Filename)
	assert.Equal(t, from, repo.lastFrom)
	assert.Equal(t, to, repo.lastTo)
	assert.Len(t, renderer.lastBatch, 1)
}

func TestExportSales_UnknownFormat(t *testing.T) {
	svc := NewService(&fakeOrderRepo{}, []Renderer{&stubRenderer{format: FormatPDF}}, zap.NewNop())

	_, err := svc.ExportSales(context.Background(), time.Time{}, time.Time{}, Format("csv"))
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "INVALID_INPUT", derr.Code)
}

func TestExportSales_RenderFailureDegrades(t *testing.T) {
	repo := &fakeOrderRepo{orders: []order.Order{*order.NewOrder(uuid.New(), order.Customer{}, nil)}}
	renderer := &stubRenderer{format: FormatPDF, fail: true}
	svc := NewService(repo, []Renderer{renderer}, zap.NewNop())

	export, err := svc.ExportSales(context.Background(), time.Time{}, time.Time{}, FormatPDF)
	require.NoError(t, err, "a broken row degrades to an empty document")
	assert.Equal(t, []byte("doc"), export.Data)
	assert.Nil(t, renderer.lastBatch, "second render ran with no orders")
}

func TestFormats(t *testing.T) {
	svc := NewService(&fakeOrderRepo{}, []Renderer{
		&stubRenderer{format: FormatPDF},
		&stubRenderer{format: FormatXLSX},
	}, zap.NewNop())

	assert.ElementsMatch(t, []Format{FormatPDF, FormatXLSX}, svc.Formats())
}
