package checkout

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillingInput holds the billing details submitted at checkout
type BillingInput struct {
	Email      string `json:"correo" validate:"required,email,max=254"`
	FirstName  string `json:"nombres" validate:"required,max=120"`
	LastName   string `json:"apellidos" validate:"required,max=120"`
	NationalID string `json:"cedula" validate:"required,max=30"`
}

// ShippingInput holds the shipping details submitted at checkout
type ShippingInput struct {
	Department   string `json:"departamento" validate:"required,max=120"`
	Municipality string `json:"municipio" validate:"required,max=120"`
	Address      string `json:"direccion" validate:"required,max=255"`
	AddressExtra string `json:"apto_info" validate:"omitempty,max=255"`
	Phone        string `json:"telefono" validate:"required,max=30"`
}

// PaymentInput holds the simulated payment details. It is validated
// structurally, never authorized, and discarded after checkout.
type PaymentInput struct {
	Method         string `json:"metodo" validate:"required,oneof=credito debito"`
	CardNumber     string `json:"numero_tarjeta" validate:"required,min=12,max=19"`
	Expiry         string `json:"fecha_exp" validate:"required,datecard"`
	CVC            string `json:"cvc" validate:"required,min=3,max=4,numeric"`
	CardholderName string `json:"nombre_en_tarjeta" validate:"required,max=120"`
	NationalID     string `json:"cedula" validate:"required,max=30"`
}

// Input is the full checkout submission
type Input struct {
	Billing  BillingInput  `json:"facturacion"`
	Shipping ShippingInput `json:"envio"`
	Payment  PaymentInput  `json:"pago"`
}

// FieldError is one field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the per-field messages of a rejected submission
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout validation failed on %d field(s)", len(e.Fields))
}

// Unwrap lets errors.Is match the shared sentinel
func (e *ValidationError) Unwrap() error {
	return shared.ErrInvalidInput
}

// InsufficientStockError reports the line that made the checkout abort
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// Unwrap lets errors.Is match the shared sentinel
func (e *InsufficientStockError) Unwrap() error {
	return shared.ErrInsufficientStock
}

// PendingOrderStore keeps the order reference between checkout completion
// and the confirmation view.
type PendingOrderStore interface {
	Set(ctx context.Context, userID, orderID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

const pendingOrderTTL = 30 * time.Minute

// valid month part of a MM/YY card expiry
var expiryMonths = map[string]bool{
	"01": true, "02": true, "03": true, "04": true, "05": true, "06": true,
	"07": true, "08": true, "09": true, "10": true, "11": true, "12": true,
}

// Service converts a cart into a durable order exactly once, or fails
// leaving all state unchanged.
type Service struct {
	scope    TransactionScope
	carts    order.CartRepository
	pending  PendingOrderStore
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a checkout Service
func NewService(
	scope TransactionScope,
	carts order.CartRepository,
	pending PendingOrderStore,
	logger *zap.Logger,
) *Service {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// card expiry: MM/YY
	_ = v.RegisterValidation("datecard", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 5 || s[2] != '/' {
			return false
		}
		if !expiryMonths[s[:2]] {
			return false
		}
		for _, r := range s[3:] {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return &Service{
		scope:    scope,
		carts:    carts,
		pending:  pending,
		validate: v,
		logger:   logger,
	}
}

// Checkout validates the submission and runs the atomic conversion:
// re-read stock under lock, decrement, create the order with snapshotted
// prices, and clear the cart. Any failure rolls everything back.
func (s *Service) Checkout(ctx context.Context, userID uuid.UUID, input Input) (*order.Order, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrEmptyCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	customer := order.Customer{
		FirstName:    input.Billing.FirstName,
		LastName:     input.Billing.LastName,
		NationalID:   input.Billing.NationalID,
		Email:        input.Billing.Email,
		Phone:        input.Shipping.Phone,
		Department:   input.Shipping.Department,
		Municipality: input.Shipping.Municipality,
		Address:      input.Shipping.Address,
		AddressExtra: input.Shipping.AddressExtra,
	}

	var created *order.Order
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Re-read every product under a row lock; the cart snapshot
		// loaded above is not trusted for stock.
		lines := make([]order.CartLine, 0, len(cart.Lines))
		for i := range cart.Lines {
			line := cart.Lines[i]
			product, err := repos.ProductRepo().FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if line.Quantity > product.Stock {
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Stock,
				}
			}
			if err := product.DecrementStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
			line.Product = *product
			lines = append(lines, line)
		}

		created = order.NewOrder(userID, customer, lines)
		if err := repos.OrderRepo().Save(ctx, created); err != nil {
			return err
		}

		return repos.CartRepo().DeleteLinesByCartID(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.pending != nil {
		if err := s.pending.Set(ctx, userID, created.ID, pendingOrderTTL); err != nil {
			s.logger.Warn("Failed to store pending order reference",
				zap.String("order_id", created.ID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("Checkout completed",
		zap.String("order_id", created.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total", created.Total.StringFixed(2)),
		zap.Int("lines", len(created.Lines)))

	return created, nil
}

// PendingOrder returns the order awaiting confirmation for the user
func (s *Service) PendingOrder(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	if s.pending == nil {
		return uuid.Nil, shared.ErrNotFound
	}
	return s.pending.Get(ctx, userID)
}

// validateInput checks all three field sets and merges their errors
func (s *Service) validateInput(input Input) error {
	var fields []FieldError
	fields = append(fields, s.collect("facturacion", s.validate.Struct(input.Billing))...)
	fields = append(fields, s.collect("envio", s.validate.Struct(input.Shipping))...)
	fields = append(fields, s.collect("pago", s.validate.Struct(input.Payment))...)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// collect converts validator errors into field errors prefixed by section
func (s *Service) collect(section string, err error) []FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: section, Message: "Invalid value"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field:   section + "." + e.Field(),
			Message: validationMessage(e),
		})
	}
	return out
}

// validationMessage returns a human-readable message for a failed tag
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "max":
		return "Must be at most " + e.Param() + " characters"
	case "min":
		return "Must be at least " + e.Param() + " characters"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "numeric":
		return "Must be numeric"
	case "datecard":
		return "Must match MM/YY"
	default:
		return "Invalid value"
	}
}
