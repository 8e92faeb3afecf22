package checkout_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/internal/cart"
	"github.com/marromlanches/storefront-backend/internal/checkout"
	"github.com/marromlanches/storefront-backend/internal/orders"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/outbox"
	"github.com/marromlanches/storefront-backend/pkg/pagination"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

type stubProducts struct {
	byID map[uuid.UUID]*models.Product
}

func (s *stubProducts) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubExtras struct {
	byID map[uuid.UUID]*models.Extra
}

func (s *stubExtras) GetByID(_ context.Context, id uuid.UUID) (*models.Extra, error) {
	if e, ok := s.byID[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubAreas struct {
	byID map[uuid.UUID]*models.DeliveryArea
}

func (s *stubAreas) GetByID(_ context.Context, id uuid.UUID) (*models.DeliveryArea, error) {
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubOrderRepo struct {
	created []*models.Order
}

func (r *stubOrderRepo) WithTx(*gorm.DB) orders.Repository { return r }

func (r *stubOrderRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.created = append(r.created, order)
	return order, nil
}

func (r *stubOrderRepo) FindByID(context.Context, uuid.UUID) (*models.Order, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) List(context.Context, pagination.Params, orders.OrderFilters) (*orders.OrderList, error) {
	return &orders.OrderList{}, nil
}

func (r *stubOrderRepo) ListSince(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) UpdateStatus(context.Context, uuid.UUID, enums.OrderStatus) error {
	return nil
}

func (r *stubOrderRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubOrderRepo) CountByStatus(context.Context) (map[enums.OrderStatus]int64, error) {
	return nil, nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type stubOutbox struct {
	events []outbox.DomainEvent
}

func (s *stubOutbox) Emit(_ context.Context, _ *gorm.DB, event outbox.DomainEvent) error {
	s.events = append(s.events, event)
	return nil
}

type stubPayments struct {
	active map[string]*models.PaymentMethodOption
}

func (s *stubPayments) GetActiveByName(_ context.Context, name string) (*models.PaymentMethodOption, error) {
	if m, ok := s.active[name]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubSettings struct {
	settings *models.CompanySettings
}

func (s *stubSettings) Get(context.Context) (*models.CompanySettings, error) {
	if s.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.settings, nil
}

type fixture struct {
	svc      checkout.Service
	repo     *stubOrderRepo
	sink     *stubOutbox
	settings *stubSettings
	burger   *models.Product
	soda     *models.Product
	cheddar  *models.Extra
	downtown *models.DeliveryArea
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	burger := &models.Product{ID: uuid.New(), Name: "X-Burger", Price: dec("15.50"), Available: true, HasAddons: true}
	soda := &models.Product{ID: uuid.New(), Name: "Guaraná", Price: dec("8.00"), Available: true}
	cheddar := &models.Extra{ID: uuid.New(), Name: "Cheddar", Price: dec("3.00"), Active: true}
	downtown := &models.DeliveryArea{ID: uuid.New(), Name: "Centro", Fee: dec("5.00"), Active: true}

	pricing, err := cart.NewService(
		&stubProducts{byID: map[uuid.UUID]*models.Product{burger.ID: burger, soda.ID: soda}},
		&stubExtras{byID: map[uuid.UUID]*models.Extra{cheddar.ID: cheddar}},
		&stubAreas{byID: map[uuid.UUID]*models.DeliveryArea{downtown.ID: downtown}},
	)
	require.NoError(t, err)

	repo := &stubOrderRepo{}
	sink := &stubOutbox{}
	settings := &stubSettings{settings: &models.CompanySettings{CompanyName: "Marrom Lanches", IsOpen: true}}
	payments := &stubPayments{active: map[string]*models.PaymentMethodOption{
		"pix":      {ID: uuid.New(), Name: "pix", Active: true},
		"dinheiro": {ID: uuid.New(), Name: "dinheiro", Active: true},
	}}

	logg := logger.New(logger.Options{ServiceName: "checkout-test", Output: io.Discard})
	svc, err := checkout.NewService(pricing, repo, stubTx{}, sink, payments, settings, logg)
	require.NoError(t, err)

	return &fixture{
		svc:      svc,
		repo:     repo,
		sink:     sink,
		settings: settings,
		burger:   burger,
		soda:     soda,
		cheddar:  cheddar,
		downtown: downtown,
	}
}

func TestCheckoutDeliveryOrder(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.Checkout(context.Background(), checkout.CheckoutInput{
		CustomerName:    "Maria",
		CustomerPhone:   "11999990000",
		CustomerAddress: "Rua das Flores, 10",
		DeliveryType:    enums.DeliveryTypeDelivery,
		DeliveryAreaID:  &f.downtown.ID,
		PaymentMethod:   "pix",
		Lines: []cart.QuoteLineInput{
			{
				ProductID: f.burger.ID,
				Quantity:  2,
				Extras:    []cart.QuoteExtraInput{{ExtraID: f.cheddar.ID, Quantity: 1}},
			},
			{ProductID: f.soda.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusPending, result.Status)
	assert.Equal(t, "Pendente", result.StatusLabel)
	assert.True(t, dec("45.00").Equal(result.Subtotal))
	assert.True(t, dec("5.00").Equal(result.DeliveryFee))
	assert.True(t, dec("50.00").Equal(result.Total))
	assert.Equal(t, 3, result.ItemCount)

	require.Len(t, f.repo.created, 1)
	order := f.repo.created[0]
	assert.Equal(t, enums.OrderTypeCustomer, order.OrderType)
	require.Len(t, order.Items, 2)

	// Persisted add-on quantity is extra qty times line qty.
	require.Len(t, order.Items[0].Extras, 1)
	assert.Equal(t, 2, order.Items[0].Extras[0].Quantity)
	assert.True(t, dec("6.00").Equal(order.Items[0].Extras[0].TotalPrice))

	require.Len(t, f.sink.events, 1)
	assert.Equal(t, enums.EventOrderCreated, f.sink.events[0].EventType)
}

func TestCheckoutPickupSkipsFee(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.Checkout(context.Background(), checkout.CheckoutInput{
		CustomerName:  "João",
		CustomerPhone: "11988887777",
		DeliveryType:  enums.DeliveryTypePickup,
		PaymentMethod: "dinheiro",
		Lines:         []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.True(t, result.DeliveryFee.IsZero())
	assert.True(t, dec("16.00").Equal(result.Total))
	require.Len(t, f.repo.created, 1)
	assert.Nil(t, f.repo.created[0].DeliveryAreaID)
}

func TestCheckoutValidation(t *testing.T) {
	f := newFixture(t)
	base := checkout.CheckoutInput{
		CustomerName:  "Maria",
		CustomerPhone: "11999990000",
		DeliveryType:  enums.DeliveryTypePickup,
		PaymentMethod: "pix",
		Lines:         []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 1}},
	}

	cases := map[string]func(*checkout.CheckoutInput){
		"missing name":                 func(in *checkout.CheckoutInput) { in.CustomerName = " " },
		"missing phone":                func(in *checkout.CheckoutInput) { in.CustomerPhone = "" },
		"delivery without address":     func(in *checkout.CheckoutInput) { in.DeliveryType = enums.DeliveryTypeDelivery },
		"unknown payment method":       func(in *checkout.CheckoutInput) { in.PaymentMethod = "cheque" },
		"empty cart":                   func(in *checkout.CheckoutInput) { in.Lines = nil },
		"invalid delivery type":        func(in *checkout.CheckoutInput) { in.DeliveryType = "teleport" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := base
			mutate(&input)
			_, err := f.svc.Checkout(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
		})
	}
}

func TestCheckoutWhenClosed(t *testing.T) {
	f := newFixture(t)
	f.settings.settings.IsOpen = false

	_, err := f.svc.Checkout(context.Background(), checkout.CheckoutInput{
		CustomerName:  "Maria",
		CustomerPhone: "11999990000",
		DeliveryType:  enums.DeliveryTypePickup,
		PaymentMethod: "pix",
		Lines:         []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestCounterCheckout(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.CounterCheckout(context.Background(), checkout.CounterCheckoutInput{
		TableNumber:  7,
		Observations: "sem cebola",
		Lines:        []cart.QuoteLineInput{{ProductID: f.burger.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.True(t, dec("15.50").Equal(result.Total))
	require.Len(t, f.repo.created, 1)
	order := f.repo.created[0]
	assert.Equal(t, enums.OrderTypeCounter, order.OrderType)
	assert.Equal(t, "Mesa 7", order.CustomerName)
	assert.Equal(t, checkout.CounterPaymentMethod, order.PaymentMethod)
	require.NotNil(t, order.Notes)
	assert.Equal(t, "Mesa: 7 - sem cebola", *order.Notes)
}

func TestCounterCheckoutIgnoresOpenFlag(t *testing.T) {
	f := newFixture(t)
	f.settings.settings.IsOpen = false

	_, err := f.svc.CounterCheckout(context.Background(), checkout.CounterCheckoutInput{
		TableNumber: 2,
		Lines:       []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 1}},
	})
	require.NoError(t, err)
}

func TestCounterCheckoutRequiresTable(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CounterCheckout(context.Background(), checkout.CounterCheckoutInput{
		Lines: []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
