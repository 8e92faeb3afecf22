package extras

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

func setupExtrasTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schemas := []string{`
CREATE TABLE IF NOT EXISTS extras (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE UNIQUE INDEX IF NOT EXISTS ux_extras_name ON extras (lower(name));`}

	for _, schema := range schemas {
		require.NoError(t, db.Exec(schema).Error)
	}
	return db
}

func newExtrasService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupExtrasTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestExtraCRUD(t *testing.T) {
	svc := newExtrasService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: " Cheddar ", Price: decimal.RequireFromString("2.999")})
	require.NoError(t, err)
	assert.Equal(t, "Cheddar", created.Name)
	assert.True(t, decimal.RequireFromString("3.00").Equal(created.Price), "price is rounded to cents")
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

func TestCreateExtraValidation(t *testing.T) {
	svc := newExtrasService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create(ctx, CreateInput{Name: "Bacon", Price: decimal.RequireFromString("-0.50")})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDuplicateExtraName(t *testing.T) {
	svc := newExtrasService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "Bacon", Price: decimal.RequireFromString("4.00")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{Name: "Bacon", Price: decimal.RequireFromString("4.50")})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}
