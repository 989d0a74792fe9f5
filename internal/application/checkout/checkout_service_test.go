package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, _ catalog.ProductQuery) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindAvailableByCategories(_ context.Context, _ []uuid.UUID) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindAvailableMatching(_ context.Context, _ []string) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type fakeCartRepo struct {
	carts map[uuid.UUID]*order.Cart
	lines map[uuid.UUID]*order.CartLine
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: map[uuid.UUID]*order.Cart{},
		lines: map[uuid.UUID]*order.CartLine{},
	}
}

func (r *fakeCartRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*order.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *cart
	copied.Lines = nil
	for _, l := range r.lines {
		if l.CartID == cart.ID {
			copied.Lines = append(copied.Lines, *l)
		}
	}
	return &copied, nil
}

func (r *fakeCartRepo) Save(_ context.Context, cart *order.Cart) error {
	copied := *cart
	r.carts[cart.UserID] = &copied
	return nil
}

func (r *fakeCartRepo) FindLineByID(_ context.Context, lineID uuid.UUID) (*order.CartLine, error) {
	if l, ok := r.lines[lineID]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCartRepo) FindLineByProduct(_ context.Context, cartID, productID uuid.UUID) (*order.CartLine, error) {
	for _, l := range r.lines {
		if l.CartID == cartID && l.ProductID == productID {
			copied := *l
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCartRepo) SaveLine(_ context.Context, line *order.CartLine) error {
	copied := *line
	r.lines[line.ID] = &copied
	return nil
}

func (r *fakeCartRepo) DeleteLine(_ context.Context, lineID uuid.UUID) error {
	delete(r.lines, lineID)
	return nil
}

func (r *fakeCartRepo) DeleteLinesByCartID(_ context.Context, cartID uuid.UUID) error {
	for id, l := range r.lines {
		if l.CartID == cartID {
			delete(r.lines, id)
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*order.Order{}}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]order.Order, error) {
	var out []order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAllInRange(_ context.Context, _, _ time.Time) ([]order.Order, error) {
	var out []order.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, o *order.Order) error {
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

type fakePendingStore struct {
	byUser map[uuid.UUID]uuid.UUID
}

func newFakePendingStore() *fakePendingStore {
	return &fakePendingStore{byUser: map[uuid.UUID]uuid.UUID{}}
}

func (s *fakePendingStore) Set(_ context.Context, userID, orderID uuid.UUID, _ time.Duration) error {
	s.byUser[userID] = orderID
	return nil
}

func (s *fakePendingStore) Get(_ context.Context, userID uuid.UUID) (uuid.UUID, error) {
	if id, ok := s.byUser[userID]; ok {
		return id, nil
	}
	return uuid.Nil, shared.ErrNotFound
}

func (s *fakePendingStore) Clear(_ context.Context, userID uuid.UUID) error {
	delete(s.byUser, userID)
	return nil
}

type fixture struct {
	svc      *Service
	products *fakeProductRepo
	carts    *fakeCartRepo
	orders   *fakeOrderRepo
	pending  *fakePendingStore
	userID   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	products := &fakeProductRepo{products: map[uuid.UUID]*catalog.Product{}}
	carts := newFakeCartRepo()
	orders := newFakeOrderRepo()
	pending := newFakePendingStore()

	scope := NewNoOpTransactionScope(products, carts, orders)
	return &fixture{
		svc:      NewService(scope, carts, pending, zap.NewNop()),
		products: products,
		carts:    carts,
		orders:   orders,
		pending:  pending,
		userID:   uuid.New(),
	}
}

func (f *fixture) addProduct(t *testing.T, name string, price int64, stock int) uuid.UUID {
	t.Helper()
	p, err := catalog.NewProduct(name, "", decimal.NewFromInt(price), stock)
	require.NoError(t, err)
	require.NoError(t, f.products.Save(context.Background(), p))
	return p.ID
}

func (f *fixture) fillCart(t *testing.T, productID uuid.UUID, qty int) {
	t.Helper()
	ctx := context.Background()
	cart, err := f.carts.FindByUserID(ctx, f.userID)
	if err != nil {
		cart = order.NewCart(f.userID)
		require.NoError(t, f.carts.Save(ctx, cart))
	}
	line := order.NewCartLine(cart.ID, productID)
	line.Quantity = qty
	require.NoError(t, f.carts.SaveLine(ctx, line))
}

func validInput() Input {
	return Input{
		Billing: BillingInput{
			Email:      "maria@example.com",
			FirstName:  "María",
			LastName:   "Quintero",
			NationalID: "1020304050",
		},
		Shipping: ShippingInput{
			Department:   "Antioquia",
			Municipality: "Medellín",
			Address:      "Cra 45 # 10-20",
			Phone:        "3001234567",
		},
		Payment: PaymentInput{
			Method:         "credito",
			CardNumber:     "4111111111111111",
			Expiry:         "12/27",
			CVC:            "123",
			CardholderName: "MARIA QUINTERO",
			NationalID:     "1020304050",
		},
	}
}

func TestCheckout_Succeeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	productID := f.addProduct(t, "Matera", 30000, 5)
	f.fillCart(t, productID, 2)

	created, err := f.svc.Checkout(ctx, f.userID, validInput())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "60000", created.Total.String())
	require.Len(t, created.Lines, 1)
	assert.Equal(t, "Matera", created.Lines[0].ProductName)
	assert.Equal(t, "30000", created.Lines[0].UnitPrice.String())

	product, err := f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock, "stock decremented")

	cart, err := f.carts.FindByUserID(ctx, f.userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty(), "cart cleared")

	pendingID, err := f.svc.PendingOrder(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, pendingID)

	stored, err := f.orders.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.userID, stored.UserID)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Checkout(context.Background(), f.userID, validInput())
	assert.ErrorIs(t, err, shared.ErrEmptyCart)

	cart := order.NewCart(f.userID)
	require.NoError(t, f.carts.Save(context.Background(), cart))
	_, err = f.svc.Checkout(context.Background(), f.userID, validInput())
	assert.ErrorIs(t, err, shared.ErrEmptyCart)
}

func TestCheckout_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t, "Matera", 30000, 5)
	f.fillCart(t, productID, 1)

	input := validInput()
	input.Billing.Email = "not-an-email"
	input.Shipping.Phone = ""
	input.Payment.Expiry = "13/27"

	_, err := f.svc.Checkout(context.Background(), f.userID, input)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	fields := map[string]string{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "facturacion.correo")
	assert.Contains(t, fields, "envio.telefono")
	assert.Equal(t, "Must match MM/YY", fields["pago.fecha_exp"])

	assert.Empty(t, f.orders.orders, "no order created")
}

func TestCheckout_PaymentMethodRestricted(t *testing.T) {
	f := newFixture(t)
	productID := f.addProduct(t, "Matera", 30000, 5)
	f.fillCart(t, productID, 1)

	input := validInput()
	input.Payment.Method = "efectivo"

	_, err := f.svc.Checkout(context.Background(), f.userID, input)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	productID := f.addProduct(t, "Matera", 30000, 1)
	f.fillCart(t, productID, 3)

	_, err := f.svc.Checkout(ctx, f.userID, validInput())
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Equal(t, productID, stockErr.ProductID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	assert.Empty(t, f.orders.orders, "no order created")
	cart, err := f.carts.FindByUserID(ctx, f.userID)
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty(), "cart kept")
}

func TestPendingOrder_NoneStored(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PendingOrder(context.Background(), f.userID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
