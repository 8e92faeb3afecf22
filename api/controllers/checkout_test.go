package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marromlanches/storefront-backend/internal/checkout"
	"github.com/marromlanches/storefront-backend/pkg/enums"
)

type testCheckoutService struct {
	checkoutFn func(ctx context.Context, input checkout.CheckoutInput) (*checkout.CheckoutResult, error)
	counterFn  func(ctx context.Context, input checkout.CounterCheckoutInput) (*checkout.CheckoutResult, error)
}

func (s *testCheckoutService) Checkout(ctx context.Context, input checkout.CheckoutInput) (*checkout.CheckoutResult, error) {
	if s.checkoutFn != nil {
		return s.checkoutFn(ctx, input)
	}
	return nil, nil
}

func (s *testCheckoutService) CounterCheckout(ctx context.Context, input checkout.CounterCheckoutInput) (*checkout.CheckoutResult, error) {
	if s.counterFn != nil {
		return s.counterFn(ctx, input)
	}
	return nil, nil
}

func TestCheckoutSuccess(t *testing.T) {
	orderID := uuid.New()
	productID := uuid.New()
	var captured checkout.CheckoutInput
	svc := &testCheckoutService{
		checkoutFn: func(_ context.Context, input checkout.CheckoutInput) (*checkout.CheckoutResult, error) {
			captured = input
			return &checkout.CheckoutResult{
				OrderID:     orderID,
				Status:      enums.OrderStatusPending,
				StatusLabel: "Pendente",
				Subtotal:    decimal.RequireFromString("25.90"),
				DeliveryFee: decimal.RequireFromString("5.00"),
				Total:       decimal.RequireFromString("30.90"),
				ItemCount:   2,
			}, nil
		},
	}

	body := `{
		"customer_name": "Joana",
		"customer_phone": "11 99999-0000",
		"customer_address": "Rua A, 10",
		"delivery_type": "delivery",
		"payment_method": "Pix",
		"lines": [{"product_id": "` + productID.String() + `", "quantity": 2}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	Checkout(svc, newTestLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured.DeliveryType != enums.DeliveryTypeDelivery {
		t.Fatalf("unexpected delivery type %s", captured.DeliveryType)
	}
	if len(captured.Lines) != 1 || captured.Lines[0].ProductID != productID {
		t.Fatalf("lines not forwarded: %+v", captured.Lines)
	}

	var envelope struct {
		Data checkout.CheckoutResult `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.OrderID != orderID {
		t.Fatalf("unexpected order id %s", envelope.Data.OrderID)
	}
}

func TestCheckoutInvalidDeliveryType(t *testing.T) {
	body := `{
		"customer_name": "Joana",
		"customer_phone": "11 99999-0000",
		"delivery_type": "teleport",
		"payment_method": "Pix",
		"lines": [{"product_id": "` + uuid.NewString() + `", "quantity": 1}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	Checkout(&testCheckoutService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutRejectsEmptyLines(t *testing.T) {
	body := `{
		"customer_name": "Joana",
		"customer_phone": "11 99999-0000",
		"delivery_type": "pickup",
		"payment_method": "Pix",
		"lines": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	Checkout(&testCheckoutService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCounterOrderSuccess(t *testing.T) {
	var captured checkout.CounterCheckoutInput
	svc := &testCheckoutService{
		counterFn: func(_ context.Context, input checkout.CounterCheckoutInput) (*checkout.CheckoutResult, error) {
			captured = input
			return &checkout.CheckoutResult{
				OrderID:     uuid.New(),
				Status:      enums.OrderStatusPending,
				StatusLabel: "Pendente",
				Subtotal:    decimal.RequireFromString("12.00"),
				DeliveryFee: decimal.Zero,
				Total:       decimal.RequireFromString("12.00"),
				ItemCount:   1,
			}, nil
		},
	}

	body := `{
		"table_number": 7,
		"observations": "sem cebola",
		"lines": [{"product_id": "` + uuid.NewString() + `", "quantity": 1}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/orders/counter", strings.NewReader(body))
	resp := httptest.NewRecorder()
	CounterOrder(svc, newTestLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured.TableNumber != 7 {
		t.Fatalf("unexpected table number %d", captured.TableNumber)
	}
	if captured.Observations != "sem cebola" {
		t.Fatalf("observations not forwarded: %q", captured.Observations)
	}
}

func TestCounterOrderRequiresTableNumber(t *testing.T) {
	body := `{
		"lines": [{"product_id": "` + uuid.NewString() + `", "quantity": 1}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/orders/counter", strings.NewReader(body))
	resp := httptest.NewRecorder()
	CounterOrder(&testCheckoutService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
