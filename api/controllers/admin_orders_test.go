package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/marromlanches/storefront-backend/api/middleware"
	"github.com/marromlanches/storefront-backend/internal/orders"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	"github.com/marromlanches/storefront-backend/pkg/outbox"
	"github.com/marromlanches/storefront-backend/pkg/pagination"
)

type testOrdersService struct {
	listFn      func(ctx context.Context, params pagination.Params, filters orders.OrderFilters) (*orders.OrderList, error)
	todayFn     func(ctx context.Context) ([]orders.OrderSummary, error)
	advanceFn   func(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*orders.OrderDetail, error)
	setStatusFn func(ctx context.Context, id uuid.UUID, status enums.OrderStatus, actor *outbox.ActorRef) (*orders.OrderDetail, error)
}

func (s *testOrdersService) Get(ctx context.Context, id uuid.UUID) (*orders.OrderDetail, error) {
	return &orders.OrderDetail{ID: id}, nil
}

func (s *testOrdersService) List(ctx context.Context, params pagination.Params, filters orders.OrderFilters) (*orders.OrderList, error) {
	if s.listFn != nil {
		return s.listFn(ctx, params, filters)
	}
	return &orders.OrderList{}, nil
}

func (s *testOrdersService) Today(ctx context.Context) ([]orders.OrderSummary, error) {
	if s.todayFn != nil {
		return s.todayFn(ctx)
	}
	return nil, nil
}

func (s *testOrdersService) Summary(ctx context.Context) ([]orders.StatusCount, error) {
	return nil, nil
}

func (s *testOrdersService) Advance(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*orders.OrderDetail, error) {
	if s.advanceFn != nil {
		return s.advanceFn(ctx, id, actor)
	}
	return &orders.OrderDetail{ID: id}, nil
}

func (s *testOrdersService) Revert(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*orders.OrderDetail, error) {
	return &orders.OrderDetail{ID: id}, nil
}

func (s *testOrdersService) Cancel(ctx context.Context, id uuid.UUID, actor *outbox.ActorRef) (*orders.OrderDetail, error) {
	return &orders.OrderDetail{ID: id}, nil
}

func (s *testOrdersService) SetStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus, actor *outbox.ActorRef) (*orders.OrderDetail, error) {
	if s.setStatusFn != nil {
		return s.setStatusFn(ctx, id, status, actor)
	}
	return &orders.OrderDetail{ID: id}, nil
}

func (s *testOrdersService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestAdminAdvanceOrderCarriesActor(t *testing.T) {
	orderID := uuid.New()
	adminID := uuid.New()
	var captured *outbox.ActorRef
	svc := &testOrdersService{
		advanceFn: func(_ context.Context, id uuid.UUID, actor *outbox.ActorRef) (*orders.OrderDetail, error) {
			if id != orderID {
				t.Fatalf("unexpected order id %s", id)
			}
			captured = actor
			return &orders.OrderDetail{ID: id}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/orders/"+orderID.String()+"/advance", nil)
	req = req.WithContext(middleware.WithAdmin(req.Context(), adminID.String(), "chef@example.com"))
	req = addRouteParam(req, "id", orderID.String())
	resp := httptest.NewRecorder()
	AdminAdvanceOrder(svc, newTestLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured == nil {
		t.Fatal("expected actor from context")
	}
	if captured.AdminID != adminID {
		t.Fatalf("unexpected actor id %s", captured.AdminID)
	}
	if captured.Email != "chef@example.com" {
		t.Fatalf("unexpected actor email %s", captured.Email)
	}
}

func TestAdminAdvanceOrderInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/orders/nope/advance", nil)
	req = addRouteParam(req, "id", "nope")
	resp := httptest.NewRecorder()
	AdminAdvanceOrder(&testOrdersService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminSetOrderStatusRejectsUnknownStatus(t *testing.T) {
	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/v1/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"levitating"}`))
	req = addRouteParam(req, "id", orderID.String())
	resp := httptest.NewRecorder()
	AdminSetOrderStatus(&testOrdersService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminListOrdersParsesFilters(t *testing.T) {
	var capturedParams pagination.Params
	var capturedFilters orders.OrderFilters
	svc := &testOrdersService{
		listFn: func(_ context.Context, params pagination.Params, filters orders.OrderFilters) (*orders.OrderList, error) {
			capturedParams = params
			capturedFilters = filters
			return &orders.OrderList{}, nil
		},
	}

	target := "/api/admin/v1/orders?limit=10&status=pending&order_type=estabelecimento&date_from=2026-08-01&q=joana"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	AdminListOrders(svc, newTestLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if capturedParams.Limit != 10 {
		t.Fatalf("unexpected limit %d", capturedParams.Limit)
	}
	if capturedFilters.Status == nil || *capturedFilters.Status != enums.OrderStatusPending {
		t.Fatalf("status filter not parsed: %+v", capturedFilters.Status)
	}
	if capturedFilters.OrderType == nil || *capturedFilters.OrderType != enums.OrderTypeCounter {
		t.Fatalf("order type filter not parsed: %+v", capturedFilters.OrderType)
	}
	if capturedFilters.DateFrom == nil {
		t.Fatal("date_from not parsed")
	}
	if capturedFilters.Query != "joana" {
		t.Fatalf("unexpected query %q", capturedFilters.Query)
	}
}

func TestAdminTodayOrders(t *testing.T) {
	orderID := uuid.New()
	svc := &testOrdersService{
		todayFn: func(context.Context) ([]orders.OrderSummary, error) {
			return []orders.OrderSummary{{
				ID:           orderID,
				CustomerName: "Maria",
				Status:       enums.OrderStatusPending,
				StatusLabel:  "Pendente",
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders/today", nil)
	resp := httptest.NewRecorder()
	AdminTodayOrders(svc, newTestLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data []orders.OrderSummary `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != orderID {
		t.Fatalf("unexpected rows %+v", envelope.Data)
	}
}

func TestAdminListOrdersRejectsBadStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders?status=unknown", nil)
	resp := httptest.NewRecorder()
	AdminListOrders(&testOrdersService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
