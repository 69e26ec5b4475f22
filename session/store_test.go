package session

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waco-shop/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := New()
	sess.SetUser(&models.User{ID: 7, Name: "Ana", Email: "ana@example.com", Provider: "local"})
	sess.Cart.AddLine("IC1", "Spanish Latte (16oz)", decimal.NewFromInt(89))
	sess.Cart.AddLine("IC1", "Spanish Latte (16oz)", decimal.NewFromInt(89))

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.True(t, got.Authenticated())
	require.Len(t, got.Cart.Items, 1)
	assert.Equal(t, 2, got.Cart.Items[0].Quantity)
	assert.True(t, got.Cart.Total().Equal(decimal.NewFromInt(178)))
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	got, err := store.Get(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Save(ctx, sess))

	time.Sleep(25 * time.Millisecond)

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, sess.ID))
}

func TestSetUserKeepsCart(t *testing.T) {
	sess := New()
	sess.Cart.AddLine("MT1", "Okinawa Milktea (16oz)", decimal.NewFromInt(99))

	sess.SetUser(&models.User{ID: 3, Name: "Ben", Email: "ben@example.com", Provider: "google"})

	assert.True(t, sess.Authenticated())
	assert.Equal(t, "google", sess.Provider)
	assert.Len(t, sess.Cart.Items, 1)
}
