package services

import (
	"context"
	"testing"
	"time"

	"jasit-store/models"
	"jasit-store/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCart(t *testing.T) (*CartService, *fakeProductStore, *Session) {
	t.Helper()
	store := newFakeProductStore(sampleProducts()...)
	products := NewProductService(store, nil, &fakeStorage{}, zap.NewNop())
	sess, _ := NewSessionStore(time.Hour, zap.NewNop()).GetOrCreate("")
	return NewCartService(products), store, sess
}

func TestCartService_AddProduct(t *testing.T) {
	svc, _, sess := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, sess, "p-1", 1)
	require.NoError(t, err)
	view, err := svc.AddProduct(ctx, sess, "p-2", 1)
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Instalasi Server", view.Lines[0].DisplayName)
	assert.Equal(t, "https://cdn.test/old.png", view.Lines[0].ImageRef)
	assert.Equal(t, models.PlaceholderImage, view.Lines[1].ImageRef)
	assert.Equal(t, "Rp 5.000.000", view.Lines[0].UnitPriceFormatted)

	assert.Equal(t, 2, view.Summary.TotalItems)
	assert.Equal(t, "Rp 13.000.000", view.Formatted.Subtotal)
	assert.Equal(t, "Rp 1.430.000", view.Formatted.Tax)
	assert.Equal(t, "Rp 14.430.000", view.Formatted.GrandTotal)
}

func TestCartService_AddProduct_UnknownProduct(t *testing.T) {
	svc, _, sess := newTestCart(t)

	_, err := svc.AddProduct(context.Background(), sess, "missing", 1)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.True(t, svc.View(sess).Summary.Subtotal.IsZero())
}

func TestCartService_PriceCapturedAtFirstAdd(t *testing.T) {
	svc, store, sess := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, sess, "p-1", 1)
	require.NoError(t, err)

	store.products["p-1"].Price = decimal.NewFromInt(9000000)
	view, err := svc.AddProduct(ctx, sess, "p-1", 1)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, "10000000", view.Lines[0].LineTotal)
}

func TestCartService_QuantityRemoveClear(t *testing.T) {
	svc, _, sess := newTestCart(t)
	ctx := context.Background()
	_, err := svc.AddProduct(ctx, sess, "p-1", 1)
	require.NoError(t, err)
	_, err = svc.AddProduct(ctx, sess, "p-2", 3)
	require.NoError(t, err)

	view := svc.SetQuantity(sess, "p-2", 1)
	assert.Equal(t, 2, view.Summary.TotalItems)

	view = svc.SetQuantity(sess, "p-1", 0)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "p-2", view.Lines[0].ItemID)

	view = svc.Remove(sess, "not-in-cart")
	assert.Len(t, view.Lines, 1)

	view = svc.Clear(sess)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "Rp 0", view.Formatted.GrandTotal)
}
