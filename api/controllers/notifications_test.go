package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/marromlanches/storefront-backend/internal/notifications"
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
)

type testNotificationsService struct {
	listFn     func(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error)
	markReadFn func(ctx context.Context, id uuid.UUID) error
}

func (s *testNotificationsService) List(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error) {
	if s.listFn != nil {
		return s.listFn(ctx, params)
	}
	return &notifications.ListResult{}, nil
}

func (s *testNotificationsService) UnreadCount(ctx context.Context) (int64, error) {
	return 3, nil
}

func (s *testNotificationsService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, id)
	}
	return nil
}

func (s *testNotificationsService) MarkAllRead(ctx context.Context) (int64, error) {
	return 2, nil
}

func TestAdminListNotificationsParsesQuery(t *testing.T) {
	var captured notifications.ListParams
	svc := &testNotificationsService{
		listFn: func(_ context.Context, params notifications.ListParams) (*notifications.ListResult, error) {
			captured = params
			return &notifications.ListResult{
				Items: []models.Notification{{
					ID:        uuid.New(),
					Type:      enums.NotificationNewOrder,
					OrderID:   uuid.New(),
					Title:     "Novo pedido",
					CreatedAt: time.Now().UTC(),
				}},
				Cursor: "next-page",
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/notifications?limit=5&unread_only=true", nil)
	resp := httptest.NewRecorder()
	AdminListNotifications(svc, newTestLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured.Limit != 5 {
		t.Fatalf("unexpected limit %d", captured.Limit)
	}
	if !captured.UnreadOnly {
		t.Fatal("unread_only not parsed")
	}

	var envelope struct {
		Data notificationListResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("unexpected item count %d", len(envelope.Data.Items))
	}
	if envelope.Data.Items[0].Title != "Novo pedido" {
		t.Fatalf("unexpected title %q", envelope.Data.Items[0].Title)
	}
	if envelope.Data.Cursor != "next-page" {
		t.Fatalf("unexpected cursor %q", envelope.Data.Cursor)
	}
}

func TestAdminListNotificationsRejectsBadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/notifications?limit=zero", nil)
	resp := httptest.NewRecorder()
	AdminListNotifications(&testNotificationsService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminMarkNotificationRead(t *testing.T) {
	notificationID := uuid.New()
	var captured uuid.UUID
	svc := &testNotificationsService{
		markReadFn: func(_ context.Context, id uuid.UUID) error {
			captured = id
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/notifications/"+notificationID.String()+"/read", nil)
	req = addRouteParam(req, "id", notificationID.String())
	resp := httptest.NewRecorder()
	AdminMarkNotificationRead(svc, newTestLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured != notificationID {
		t.Fatalf("unexpected notification id %s", captured)
	}

	var envelope struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !envelope.Data["read"] {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestAdminMarkNotificationReadInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/notifications/banana/read", nil)
	req = addRouteParam(req, "id", "banana")
	resp := httptest.NewRecorder()
	AdminMarkNotificationRead(&testNotificationsService{}, newTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
