package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/internal/cart"
	"github.com/marromlanches/storefront-backend/internal/orders"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/money"
	"github.com/marromlanches/storefront-backend/pkg/outbox"
)

// CounterPaymentMethod is recorded on staff-entered table orders, which are
// settled at the counter rather than through a storefront payment option.
const CounterPaymentMethod = "balcao"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type paymentMethodLoader interface {
	GetActiveByName(ctx context.Context, name string) (*models.PaymentMethodOption, error)
}

type settingsLoader interface {
	Get(ctx context.Context) (*models.CompanySettings, error)
}

// Service turns priced carts into persisted orders.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	CounterCheckout(ctx context.Context, input CounterCheckoutInput) (*CheckoutResult, error)
}

type service struct {
	pricing  cart.Service
	repo     orders.Repository
	tx       txRunner
	outbox   outboxPublisher
	payments paymentMethodLoader
	settings settingsLoader
	logg     *logger.Logger
}

// NewService builds a checkout service backed by the provided stack.
func NewService(pricing cart.Service, repo orders.Repository, tx txRunner, publisher outboxPublisher, payments paymentMethodLoader, settings settingsLoader, logg *logger.Logger) (Service, error) {
	if pricing == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if publisher == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment method loader required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		pricing:  pricing,
		repo:     repo,
		tx:       tx,
		outbox:   publisher,
		payments: payments,
		settings: settings,
		logg:     logg,
	}, nil
}

// Checkout validates, re-prices and persists a storefront order. All money
// comes from the catalog at submission time.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	if err := s.validateCustomer(input); err != nil {
		return nil, err
	}
	if err := s.ensureOpen(ctx); err != nil {
		return nil, err
	}
	if err := s.validatePaymentMethod(ctx, input.PaymentMethod); err != nil {
		return nil, err
	}

	order, itemCount, err := s.buildOrder(ctx, input, enums.OrderTypeCustomer)
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, order, itemCount)
}

// CounterCheckout persists a staff-entered table order. Counter orders skip
// the open check and the payment method catalog: the table settles in person.
func (s *service) CounterCheckout(ctx context.Context, input CounterCheckoutInput) (*CheckoutResult, error) {
	if input.TableNumber <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "table number must be positive")
	}

	notes := fmt.Sprintf("Mesa: %d", input.TableNumber)
	if obs := strings.TrimSpace(input.Observations); obs != "" {
		notes = fmt.Sprintf("%s - %s", notes, obs)
	}

	order, itemCount, err := s.buildOrder(ctx, CheckoutInput{
		CustomerName:  fmt.Sprintf("Mesa %d", input.TableNumber),
		DeliveryType:  enums.DeliveryTypePickup,
		PaymentMethod: CounterPaymentMethod,
		Notes:         notes,
		Lines:         input.Lines,
	}, enums.OrderTypeCounter)
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, order, itemCount)
}

func (s *service) validateCustomer(input CheckoutInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer phone is required")
	}
	if !input.DeliveryType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery type")
	}
	if input.DeliveryType == enums.DeliveryTypeDelivery && strings.TrimSpace(input.CustomerAddress) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address is required for delivery orders")
	}
	return nil
}

func (s *service) ensureOpen(ctx context.Context) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	if !settings.IsOpen {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "restaurant is closed")
	}
	return nil
}

func (s *service) validatePaymentMethod(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment method is required")
	}
	if _, err := s.payments.GetActiveByName(ctx, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("payment method %q is not accepted", name))
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment method")
	}
	return nil
}

func (s *service) buildOrder(ctx context.Context, input CheckoutInput, orderType enums.OrderType) (*models.Order, int, error) {
	if len(input.Lines) == 0 {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one line")
	}

	lines, err := s.pricing.PriceLines(ctx, input.Lines)
	if err != nil {
		return nil, 0, err
	}
	area, err := s.pricing.DeliveryFee(ctx, input.DeliveryType, input.DeliveryAreaID)
	if err != nil {
		return nil, 0, err
	}

	fee := money.Zero()
	var areaID *uuid.UUID
	if area != nil {
		fee = money.Round2(area.Fee)
		areaID = &area.ID
	}
	subtotal := money.Round2(cart.Subtotal(lines))

	order := &models.Order{
		ID:             uuid.New(),
		CustomerName:   strings.TrimSpace(input.CustomerName),
		CustomerPhone:  strings.TrimSpace(input.CustomerPhone),
		DeliveryType:   input.DeliveryType,
		PaymentMethod:  input.PaymentMethod,
		DeliveryAreaID: areaID,
		Subtotal:       subtotal,
		DeliveryFee:    fee,
		Total:          subtotal.Add(fee),
		Status:         enums.OrderStatusPending,
		OrderType:      orderType,
	}
	if addr := strings.TrimSpace(input.CustomerAddress); addr != "" {
		order.CustomerAddress = &addr
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		order.Notes = &notes
	}

	for _, line := range lines {
		productID := line.ProductID
		item := models.OrderItem{
			ProductID:  &productID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: money.Round2(cart.LineTotal(line)),
		}
		if obs := strings.TrimSpace(line.Observations); obs != "" {
			item.Observations = &obs
		}
		for _, extra := range line.Extras {
			extraID := extra.ExtraID
			// Persisted quantity is add-on qty times line qty so the row
			// states how many units the kitchen actually prepares.
			totalQty := extra.Quantity * line.Quantity
			item.Extras = append(item.Extras, models.OrderItemExtra{
				ExtraID:    &extraID,
				Quantity:   totalQty,
				UnitPrice:  extra.UnitPrice,
				TotalPrice: money.Round2(extra.UnitPrice.Mul(decimal.NewFromInt(int64(totalQty)))),
			})
		}
		order.Items = append(order.Items, item)
	}

	return order, cart.ItemCount(lines), nil
}

func (s *service) persist(ctx context.Context, order *models.Order, itemCount int) (*CheckoutResult, error) {
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		created, err := repo.Create(ctx, order)
		if err != nil {
			return err
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventOrderCreated,
			AggregateType: enums.AggregateOrder,
			AggregateID:   created.ID,
			Data: OrderCreatedData{
				OrderID:      created.ID,
				CustomerName: created.CustomerName,
				DeliveryType: created.DeliveryType,
				OrderType:    created.OrderType,
				ItemCount:    itemCount,
				Total:        created.Total,
			},
		})
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"order_id":   order.ID.String(),
		"order_type": order.OrderType,
		"total":      order.Total.StringFixed(2),
	})
	s.logg.Info(logCtx, "order created")

	return &CheckoutResult{
		OrderID:     order.ID,
		Status:      order.Status,
		StatusLabel: orders.InfoFor(string(order.Status)).Label,
		Subtotal:    order.Subtotal,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
		ItemCount:   itemCount,
	}, nil
}
