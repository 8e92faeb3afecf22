package paymentmethods

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/marromlanches/storefront-backend/pkg/errors"
)

func setupPaymentMethodsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schemas := []string{`
CREATE TABLE IF NOT EXISTS payment_methods (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE UNIQUE INDEX IF NOT EXISTS ux_payment_methods_name ON payment_methods (lower(name));`}

	for _, schema := range schemas {
		require.NoError(t, db.Exec(schema).Error)
	}
	return db
}

func newPaymentMethodsService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupPaymentMethodsTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestPaymentMethodCRUD(t *testing.T) {
	svc := newPaymentMethodsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: " Pix "})
	require.NoError(t, err)
	assert.Equal(t, "Pix", created.Name)
	assert.True(t, created.Active)

	inactive := false
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Active: &inactive})
	require.NoError(t, err)
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

func TestGetActiveByName(t *testing.T) {
	svc := newPaymentMethodsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Dinheiro"})
	require.NoError(t, err)

	found, err := svc.GetActiveByName(ctx, "dinheiro")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	inactive := false
	_, err = svc.Update(ctx, created.ID, UpdateInput{Active: &inactive})
	require.NoError(t, err)

	_, err = svc.GetActiveByName(ctx, "dinheiro")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDuplicatePaymentMethodName(t *testing.T) {
	svc := newPaymentMethodsService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "Pix"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Name: "pix"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}
