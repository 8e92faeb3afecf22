package delivery

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
)

func setupDeliveryTestDB(t *testing.T) *gorm.DB {
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
CREATE UNIQUE INDEX IF NOT EXISTS ux_delivery_areas_name ON delivery_areas (lower(name));`}

	for _, schema := range schemas {
		require.NoError(t, db.Exec(schema).Error)
	}
	return db
}

func newDeliveryService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupDeliveryTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestDeliveryAreaCRUD(t *testing.T) {
	svc := newDeliveryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: " Centro ", Fee: decimal.RequireFromString("5.005")})
	require.NoError(t, err)
	assert.Equal(t, "Centro", created.Name)
	assert.True(t, decimal.RequireFromString("5.01").Equal(created.Fee), "fee is rounded to cents")
	assert.True(t, created.Active)

	inactive := false
	fee := decimal.RequireFromString("6.00")
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Fee: &fee, Active: &inactive})
	require.NoError(t, err)
	assert.True(t, fee.Equal(updated.Fee))
	assert.False(t, updated.Active)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCreateDeliveryAreaValidation(t *testing.T) {
	svc := newDeliveryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: " "})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create(ctx, CreateInput{Name: "Jardins", Fee: decimal.RequireFromString("-2")})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDuplicateDeliveryAreaName(t *testing.T) {
	svc := newDeliveryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "Centro", Fee: decimal.RequireFromString("5.00")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Name: "centro", Fee: decimal.RequireFromString("4.00")})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}
