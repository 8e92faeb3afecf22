package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/enums"
	"github.com/marromlanches/storefront-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schemas := []string{`
CREATE TABLE IF NOT EXISTS delivery_areas (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  fee NUMERIC NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  image TEXT,
  category_id TEXT,
  ingredients TEXT,
  preparation_time INTEGER,
  rating NUMERIC,
  available INTEGER NOT NULL DEFAULT 1,
  has_addons INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS extras (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_phone TEXT NOT NULL DEFAULT '',
  customer_address TEXT,
  delivery_type TEXT NOT NULL,
  payment_method TEXT NOT NULL,
  delivery_area_id TEXT,
  subtotal NUMERIC NOT NULL,
  delivery_fee NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  notes TEXT,
  order_type TEXT NOT NULL DEFAULT 'cliente',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  total_price NUMERIC NOT NULL,
  observations TEXT,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS order_item_extras (
  id TEXT PRIMARY KEY,
  order_item_id TEXT NOT NULL,
  extra_id TEXT,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  total_price NUMERIC NOT NULL,
  created_at DATETIME
);`}

	for _, schema := range schemas {
		require.NoError(t, db.Exec(schema).Error)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, status enums.OrderStatus, createdAt time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:            uuid.New(),
		CustomerName:  "Maria",
		CustomerPhone: "11999990000",
		DeliveryType:  enums.DeliveryTypePickup,
		PaymentMethod: "pix",
		Subtotal:      decimal.RequireFromString("20.00"),
		DeliveryFee:   decimal.Zero,
		Total:         decimal.RequireFromString("20.00"),
		Status:        status,
		OrderType:     enums.OrderTypeCustomer,
		Items: []models.OrderItem{
			{
				ID:         uuid.New(),
				Quantity:   2,
				UnitPrice:  decimal.RequireFromString("10.00"),
				TotalPrice: decimal.RequireFromString("20.00"),
			},
		},
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	extraID := uuid.New()
	require.NoError(t, db.Create(&models.Extra{ID: extraID, Name: "Cheddar", Price: decimal.RequireFromString("3.00"), Active: true}).Error)

	order := &models.Order{
		ID:            uuid.New(),
		CustomerName:  "João",
		CustomerPhone: "11988887777",
		DeliveryType:  enums.DeliveryTypePickup,
		PaymentMethod: "dinheiro",
		Subtotal:      decimal.RequireFromString("37.00"),
		DeliveryFee:   decimal.Zero,
		Total:         decimal.RequireFromString("37.00"),
		Status:        enums.OrderStatusPending,
		OrderType:     enums.OrderTypeCustomer,
		Items: []models.OrderItem{
			{
				ID:         uuid.New(),
				Quantity:   2,
				UnitPrice:  decimal.RequireFromString("15.50"),
				TotalPrice: decimal.RequireFromString("37.00"),
				Extras: []models.OrderItemExtra{
					{
						ID:         uuid.New(),
						ExtraID:    &extraID,
						Quantity:   2,
						UnitPrice:  decimal.RequireFromString("3.00"),
						TotalPrice: decimal.RequireFromString("6.00"),
					},
				},
			},
		},
	}

	_, err := repo.Create(ctx, order)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "João", found.CustomerName)
	require.Len(t, found.Items, 1)
	require.Len(t, found.Items[0].Extras, 1)
	require.NotNil(t, found.Items[0].Extras[0].Extra)
	assert.Equal(t, "Cheddar", found.Items[0].Extras[0].Extra.Name)
	assert.True(t, decimal.RequireFromString("37.00").Equal(found.Total))
}

func TestRepositoryListFiltersAndPaginates(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-1 * time.Hour)
	seedOrder(t, db, enums.OrderStatusPending, base)
	seedOrder(t, db, enums.OrderStatusPreparing, base.Add(10*time.Minute))
	seedOrder(t, db, enums.OrderStatusPending, base.Add(20*time.Minute))

	pending := enums.OrderStatusPending
	list, err := repo.List(ctx, pagination.Params{}, OrderFilters{Status: &pending})
	require.NoError(t, err)
	require.Len(t, list.Orders, 2)
	for _, row := range list.Orders {
		assert.Equal(t, enums.OrderStatusPending, row.Status)
		assert.Equal(t, "Pendente", row.StatusLabel)
		assert.Equal(t, 2, row.ItemCount)
	}

	page, err := repo.List(ctx, pagination.Params{Limit: 2}, OrderFilters{})
	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	require.NotEmpty(t, page.NextCursor)

	rest, err := repo.List(ctx, pagination.Params{Limit: 2, Cursor: page.NextCursor}, OrderFilters{})
	require.NoError(t, err)
	require.Len(t, rest.Orders, 1)
	assert.Empty(t, rest.NextCursor)

	// Newest first.
	assert.True(t, page.Orders[0].CreatedAt.After(page.Orders[1].CreatedAt))
}

func TestRepositoryListSince(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	cutoff := time.Now().Add(-30 * time.Minute)
	seedOrder(t, db, enums.OrderStatusDelivered, cutoff.Add(-2*time.Hour))
	older := seedOrder(t, db, enums.OrderStatusPending, cutoff.Add(5*time.Minute))
	newer := seedOrder(t, db, enums.OrderStatusPreparing, cutoff.Add(10*time.Minute))

	rows, err := repo.ListSince(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Oldest first, items preloaded.
	assert.Equal(t, older.ID, rows[0].ID)
	assert.Equal(t, newer.ID, rows[1].ID)
	require.Len(t, rows[0].Items, 1)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, enums.OrderStatusPending, time.Now())
	require.NoError(t, repo.UpdateStatus(ctx, order.ID, enums.OrderStatusPreparing))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPreparing, found.Status)
}

func TestRepositoryDelete(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, enums.OrderStatusCancelled, time.Now())
	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryCountByStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedOrder(t, db, enums.OrderStatusPending, time.Now())
	seedOrder(t, db, enums.OrderStatusPending, time.Now())
	seedOrder(t, db, enums.OrderStatusDelivered, time.Now())

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[enums.OrderStatusPending])
	assert.Equal(t, int64(1), counts[enums.OrderStatusDelivered])
}
