package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/outbox"
	"github.com/marromlanches/storefront-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service exposes order lifecycle operations for the back office.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*OrderDetail, error)
	List(ctx context.Context, params pagination.Params, filters OrderFilters) (*OrderList, error)
	Today(ctx context.Context) ([]OrderSummary, error)
	Summary(ctx context.Context) ([]StatusCount, error)
	Advance(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*OrderDetail, error)
	Revert(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*OrderDetail, error)
	Cancel(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*OrderDetail, error)
	SetStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus, actor *outbox.ActorRef) (*OrderDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	tx     txRunner
	outbox outboxPublisher
	logg   *logger.Logger
}

// NewService builds an orders service backed by the provided stack.
func NewService(repo Repository, tx txRunner, publisher outboxPublisher, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if publisher == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, tx: tx, outbox: publisher, logg: logg}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderDetail, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildDetail(order), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters OrderFilters) (*OrderList, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
	}
	list, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return list, nil
}

// Today returns every order created since midnight, oldest first, so the
// board can show the current working day without paging.
func (s *service) Today(ctx context.Context) ([]OrderSummary, error) {
	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rows, err := s.repo.ListSince(ctx, cutoff)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list today's orders")
	}

	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, newOrderSummary(row))
	}
	return summaries, nil
}

func (s *service) Summary(ctx context.Context) ([]StatusCount, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count orders")
	}

	summary := make([]StatusCount, 0, len(counts))
	for _, status := range enums.CanonicalOrderStatuses() {
		summary = append(summary, StatusCount{
			Status: status,
			Label:  InfoFor(string(status)).Label,
			Count:  counts[status],
		})
		delete(counts, status)
	}
	// Legacy or unexpected statuses still show up with their own rows.
	for status, count := range counts {
		summary = append(summary, StatusCount{
			Status: status,
			Label:  InfoFor(string(status)).Label,
			Count:  count,
		})
	}
	return summary, nil
}

// Advance moves the order one step forward on its lifecycle. Orders with no
// forward transition are returned unchanged.
func (s *service) Advance(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*OrderDetail, error) {
	return s.transition(ctx, id, actor, func(current enums.OrderStatus) (enums.OrderStatus, bool) {
		return NextStatus(current)
	})
}

// Revert moves the order one step backward. Orders with no backward
// transition are returned unchanged.
func (s *service) Revert(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*OrderDetail, error) {
	return s.transition(ctx, id, actor, func(current enums.OrderStatus) (enums.OrderStatus, bool) {
		return PreviousStatus(current)
	})
}

// Cancel marks the order cancelled when its status still allows it. Orders
// past the cancel window are returned unchanged.
func (s *service) Cancel(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*OrderDetail, error) {
	return s.transition(ctx, id, actor, func(current enums.OrderStatus) (enums.OrderStatus, bool) {
		if !CanCancel(current) {
			return "", false
		}
		return enums.OrderStatusCancelled, true
	})
}

// SetStatus force-sets a canonical status, bypassing the step-by-step path.
// Legacy statuses cannot be assigned to new transitions.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus, actor *outbox.ActorRef) (*OrderDetail, error) {
	if !status.IsCanonical() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("status %q cannot be assigned", status))
	}
	return s.transition(ctx, id, actor, func(current enums.OrderStatus) (enums.OrderStatus, bool) {
		if current == status {
			return "", false
		}
		return status, true
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadOrder(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	return nil
}

func (s *service) transition(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef, step func(enums.OrderStatus) (enums.OrderStatus, bool)) (*OrderDetail, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	target, ok := step(order.Status)
	if !ok {
		// No legal transition from here; the order is returned as-is.
		return buildDetail(order), nil
	}

	from := order.Status
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.UpdateStatus(ctx, id, target); err != nil {
			return err
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventOrderStatusChanged,
			AggregateType: enums.AggregateOrder,
			AggregateID:   id,
			Actor:         actor,
			Data: OrderStatusChangedData{
				OrderID:    id,
				FromStatus: from,
				ToStatus:   target,
			},
		})
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"order_id":    id.String(),
		"from_status": from,
		"to_status":   target,
	})
	s.logg.Info(logCtx, "order status changed")

	order.Status = target
	return buildDetail(order), nil
}

func (s *service) loadOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func buildDetail(order *models.Order) *OrderDetail {
	info := InfoFor(string(order.Status))

	detail := &OrderDetail{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		DeliveryType:    order.DeliveryType,
		PaymentMethod:   order.PaymentMethod,
		OrderType:       order.OrderType,
		Notes:           order.Notes,
		Subtotal:        order.Subtotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           order.Total,
		Status:          order.Status,
		StatusLabel:     info.Label,
		NextStatus:      info.Next,
		PreviousStatus:  info.Previous,
		CanCancel:       info.CanCancel,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if order.DeliveryArea != nil {
		detail.DeliveryArea = &order.DeliveryArea.Name
	}

	detail.Items = make([]OrderDetailItem, 0, len(order.Items))
	for _, item := range order.Items {
		row := OrderDetailItem{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
			Observations: item.Observations,
		}
		if item.Product != nil {
			row.ProductName = item.Product.Name
		}
		for _, extra := range item.Extras {
			addon := OrderDetailAddon{
				ExtraID:    extra.ExtraID,
				Quantity:   extra.Quantity,
				UnitPrice:  extra.UnitPrice,
				TotalPrice: extra.TotalPrice,
			}
			if extra.Extra != nil {
				addon.Name = extra.Extra.Name
			}
			row.Extras = append(row.Extras, addon)
		}
		detail.Items = append(detail.Items, row)
	}
	return detail
}
