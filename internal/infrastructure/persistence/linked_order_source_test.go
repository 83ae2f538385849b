package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormLinkedOrderSource(t *testing.T) {
	db := newTestDB(t)
	src := NewGormLinkedOrderSource(db)
	ctx := context.Background()
	now := time.Now().UTC()

	first := seedLinkedOrder(t, db, "SO-1001", "Jane Doe", now.Add(-2*time.Hour))
	seedLinkedOrder(t, db, "SO-1002", "John Smith", now.Add(-time.Hour))
	seedLinkedOrder(t, db, "SO-2001", "Janet Roe", now)

	t.Run("find by id", func(t *testing.T) {
		o, err := src.FindByID(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, "SO-1001", o.OrderNumber)
		assert.Equal(t, "Jane Doe", o.CustomerName)
	})

	t.Run("find missing", func(t *testing.T) {
		_, err := src.FindByID(ctx, uuid.New())
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("search by uuid", func(t *testing.T) {
		got, err := src.Search(ctx, first.String(), 20)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first, got[0].ID)
	})

	t.Run("search by customer is case insensitive", func(t *testing.T) {
		got, err := src.Search(ctx, "JANE", 20)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "SO-2001", got[0].OrderNumber)
	})

	t.Run("search by number", func(t *testing.T) {
		got, err := src.Search(ctx, "so-10", 20)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty query returns newest", func(t *testing.T) {
		got, err := src.Search(ctx, "  ", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "SO-2001", got[0].OrderNumber)
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		seedLinkedOrder(t, db, "SO_3001", "Max 100%", now.Add(-3*time.Hour))

		got, err := src.Search(ctx, "_", 20)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SO_3001", got[0].OrderNumber)

		got, err = src.Search(ctx, "%", 20)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Max 100%", got[0].CustomerName)
	})
}
