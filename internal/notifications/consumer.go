package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/internal/orders"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/outbox"
	"github.com/marromlanches/storefront-backend/pkg/outbox/idempotency"
)

const orderNotificationConsumer = "order-notifications"

type repository interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// Consumer watches order events and turns them into back-office notifications.
type Consumer struct {
	repo         repository
	subscription *pubsub.Subscriber
	idempotency  *idempotency.Manager
	logg         *logger.Logger
}

// NewConsumer builds an order notification consumer.
func NewConsumer(repo repository, subscription *pubsub.Subscriber, manager *idempotency.Manager, logg *logger.Logger) (*Consumer, error) {
	if repo == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	if subscription == nil {
		return nil, fmt.Errorf("orders subscription required")
	}
	if manager == nil {
		return nil, fmt.Errorf("idempotency manager required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Consumer{
		repo:         repo,
		subscription: subscription,
		idempotency:  manager,
		logg:         logg,
	}, nil
}

// Run starts the consumer loop until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.subscription.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		result := c.process(ctx, msg)
		if result.nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

type processResult struct {
	ack  bool
	nack bool
}

func (c *Consumer) process(ctx context.Context, msg *pubsub.Message) processResult {
	eventType := msg.Attributes["event_type"]
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"message_id": msg.ID,
		"event_type": eventType,
	})

	if eventType != string(enums.EventOrderCreated) && eventType != string(enums.EventOrderStatusChanged) {
		c.logg.Info(logCtx, "skipping unhandled event")
		return processResult{ack: true}
	}

	var envelope outbox.PayloadEnvelope
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		c.logg.Error(logCtx, "failed to decode envelope", err)
		return processResult{ack: true}
	}

	eventID, err := uuid.Parse(envelope.EventID)
	if err != nil {
		c.logg.Error(logCtx, "invalid event id", err)
		return processResult{ack: true}
	}

	already, err := c.idempotency.CheckAndMarkProcessed(ctx, orderNotificationConsumer, eventID)
	if err != nil {
		c.logg.Error(logCtx, "idempotency check failed", err)
		return processResult{nack: true}
	}
	if already {
		c.logg.Info(logCtx, "event already processed")
		return processResult{ack: true}
	}

	notification, err := buildNotification(enums.OutboxEventType(eventType), envelope.Data)
	if err != nil {
		c.logg.Error(logCtx, "failed to parse payload", err)
		_ = c.idempotency.Delete(ctx, orderNotificationConsumer, eventID)
		return processResult{nack: true}
	}

	if err := c.repo.Create(ctx, notification); err != nil {
		c.logg.Error(logCtx, "failed to store notification", err)
		_ = c.idempotency.Delete(ctx, orderNotificationConsumer, eventID)
		return processResult{nack: true}
	}

	logCtx = c.logg.WithFields(logCtx, map[string]any{"order_id": notification.OrderID.String()})
	c.logg.Info(logCtx, "notification stored")
	return processResult{ack: true}
}

func buildNotification(eventType enums.OutboxEventType, data json.RawMessage) (*models.Notification, error) {
	switch eventType {
	case enums.EventOrderCreated:
		var payload orderCreatedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
		return newOrderNotification(payload)
	case enums.EventOrderStatusChanged:
		var payload orderStatusChangedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
		return statusChangeNotification(payload)
	default:
		return nil, fmt.Errorf("unhandled event type %q", eventType)
	}
}

func newOrderNotification(payload orderCreatedPayload) (*models.Notification, error) {
	if payload.OrderID == uuid.Nil {
		return nil, fmt.Errorf("order id missing")
	}
	body := fmt.Sprintf("%d itens - R$ %s", payload.ItemCount, payload.Total.StringFixed(2))
	if payload.ItemCount == 1 {
		body = fmt.Sprintf("1 item - R$ %s", payload.Total.StringFixed(2))
	}
	return &models.Notification{
		ID:      uuid.New(),
		Type:    enums.NotificationNewOrder,
		OrderID: payload.OrderID,
		Title:   fmt.Sprintf("Novo pedido de %s", payload.CustomerName),
		Body:    stringPtr(body),
	}, nil
}

func statusChangeNotification(payload orderStatusChangedPayload) (*models.Notification, error) {
	if payload.OrderID == uuid.Nil {
		return nil, fmt.Errorf("order id missing")
	}
	toLabel := orders.InfoFor(string(payload.ToStatus)).Label
	fromLabel := orders.InfoFor(string(payload.FromStatus)).Label
	return &models.Notification{
		ID:      uuid.New(),
		Type:    enums.NotificationStatusChanged,
		OrderID: payload.OrderID,
		Title:   fmt.Sprintf("Pedido atualizado: %s", toLabel),
		Body:    stringPtr(fmt.Sprintf("De %s para %s", fromLabel, toLabel)),
	}, nil
}

func stringPtr(value string) *string {
	return &value
}

type orderCreatedPayload struct {
	OrderID      uuid.UUID       `json:"orderId"`
	CustomerName string          `json:"customerName"`
	ItemCount    int             `json:"itemCount"`
	Total        decimal.Decimal `json:"total"`
}

type orderStatusChangedPayload struct {
	OrderID    uuid.UUID         `json:"orderId"`
	FromStatus enums.OrderStatus `json:"fromStatus"`
	ToStatus   enums.OrderStatus `json:"toStatus"`
}
