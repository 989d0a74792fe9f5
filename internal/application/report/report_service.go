package report

import (
	"context"
	"fmt"
	"time"

	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Format identifies a sales report output format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Renderer turns a batch of orders into a downloadable document.
// Implementations must produce a valid (possibly empty) document even
// when individual rows cannot be rendered.
type Renderer interface {
	Format() Format
	ContentType() string
	Render(orders []order.Order) ([]byte, error)
}

// Export is a rendered sales report ready for download
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Service assembles sales reports from the order store
type Service struct {
	orders    order.OrderRepository
	renderers map[Format]Renderer
	logger    *zap.Logger
}

// NewService creates a report Service with the given renderers
func NewService(orders order.OrderRepository, renderers []Renderer, logger *zap.Logger) *Service {
	byFormat := make(map[Format]Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &Service{
		orders:    orders,
		renderers: byFormat,
		logger:    logger,
	}
}

// Formats lists the registered output formats
func (s *Service) Formats() []Format {
	out := make([]Format, 0, len(s.renderers))
	for f := range s.renderers {
		out = append(out, f)
	}
	return out
}

// ExportSales renders all orders in [from, to) in the requested format.
// Zero times mean no bound.
func (s *Service) ExportSales(ctx context.Context, from, to time.Time, format Format) (*Export, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Unknown report format %q", format))
	}

	orders, err := s.orders.FindAllInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	data, err := renderer.Render(orders)
	if err != nil {
		// Degrade to an empty-but-valid document instead of failing the
		// download.
		s.logger.Error("Report rendering failed, returning empty document",
			zap.String("format", string(format)),
			zap.Error(err))
		data, err = renderer.Render(nil)
		if err != nil {
			return nil, err
		}
	}

	return &Export{
		Data:        data,
		ContentType: renderer.ContentType(),
		Filename:    fmt.Sprintf("reporte_ventas_%s.%s", time.Now().Format("20060102"), format),
	}, nil
}
