package cart_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/internal/cart"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
)

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

type quoteFixture struct {
	svc      cart.Service
	burger   *models.Product
	soda     *models.Product
	cheddar  *models.Extra
	downtown *models.DeliveryArea
}

func newQuoteFixture(t *testing.T) quoteFixture {
	t.Helper()

	burger := &models.Product{ID: uuid.New(), Name: "X-Burger", Price: dec("15.50"), Available: true, HasAddons: true}
	soda := &models.Product{ID: uuid.New(), Name: "Guaraná", Price: dec("8.00"), Available: true}
	cheddar := &models.Extra{ID: uuid.New(), Name: "Cheddar", Price: dec("3.00"), Active: true}
	downtown := &models.DeliveryArea{ID: uuid.New(), Name: "Centro", Fee: dec("5.00"), Active: true}

	svc, err := cart.NewService(
		&stubProducts{byID: map[uuid.UUID]*models.Product{burger.ID: burger, soda.ID: soda}},
		&stubExtras{byID: map[uuid.UUID]*models.Extra{cheddar.ID: cheddar}},
		&stubAreas{byID: map[uuid.UUID]*models.DeliveryArea{downtown.ID: downtown}},
	)
	require.NoError(t, err)

	return quoteFixture{svc: svc, burger: burger, soda: soda, cheddar: cheddar, downtown: downtown}
}

func TestQuoteDeliveryOrder(t *testing.T) {
	f := newQuoteFixture(t)

	quote, err := f.svc.Quote(context.Background(), cart.QuoteInput{
		DeliveryType:   enums.DeliveryTypeDelivery,
		DeliveryAreaID: &f.downtown.ID,
		Lines: []cart.QuoteLineInput{
			{
				ProductID: f.burger.ID,
				Quantity:  2,
				Extras:    []cart.QuoteExtraInput{{ExtraID: f.cheddar.ID, Quantity: 1}},
			},
			{
				ProductID: f.soda.ID,
				Quantity:  1,
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, quote.Lines, 2)
	assert.True(t, dec("18.50").Equal(quote.Lines[0].PerUnitPrice))
	assert.True(t, dec("37.00").Equal(quote.Lines[0].Total))
	assert.True(t, dec("8.00").Equal(quote.Lines[1].Total))
	assert.True(t, dec("45.00").Equal(quote.Subtotal))
	assert.True(t, dec("5.00").Equal(quote.DeliveryFee))
	assert.True(t, dec("50.00").Equal(quote.Total))
	assert.Equal(t, 3, quote.ItemCount)
}

func TestQuotePickupHasNoFee(t *testing.T) {
	f := newQuoteFixture(t)

	quote, err := f.svc.Quote(context.Background(), cart.QuoteInput{
		DeliveryType: enums.DeliveryTypePickup,
		Lines: []cart.QuoteLineInput{
			{ProductID: f.soda.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, quote.DeliveryFee.IsZero())
	assert.True(t, dec("16.00").Equal(quote.Total))
}

func TestQuoteRejectsEmptyCart(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.svc.Quote(context.Background(), cart.QuoteInput{DeliveryType: enums.DeliveryTypePickup})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestQuoteUnknownProduct(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.svc.Quote(context.Background(), cart.QuoteInput{
		DeliveryType: enums.DeliveryTypePickup,
		Lines:        []cart.QuoteLineInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestQuoteUnavailableProduct(t *testing.T) {
	f := newQuoteFixture(t)
	f.soda.Available = false

	_, err := f.svc.Quote(context.Background(), cart.QuoteInput{
		DeliveryType: enums.DeliveryTypePickup,
		Lines:        []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestQuoteExtrasRequireAddonSupport(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.svc.Quote(context.Background(), cart.QuoteInput{
		DeliveryType: enums.DeliveryTypePickup,
		Lines: []cart.QuoteLineInput{
			{
				ProductID: f.soda.ID,
				Quantity:  1,
				Extras:    []cart.QuoteExtraInput{{ExtraID: f.cheddar.ID, Quantity: 1}},
			},
		},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestQuoteDeliveryRequiresArea(t *testing.T) {
	f := newQuoteFixture(t)

	_, err := f.svc.Quote(context.Background(), cart.QuoteInput{
		DeliveryType: enums.DeliveryTypeDelivery,
		Lines:        []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestQuoteInactiveArea(t *testing.T) {
	f := newQuoteFixture(t)
	f.downtown.Active = false

	_, err := f.svc.Quote(context.Background(), cart.QuoteInput{
		DeliveryType:   enums.DeliveryTypeDelivery,
		DeliveryAreaID: &f.downtown.ID,
		Lines:          []cart.QuoteLineInput{{ProductID: f.soda.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
