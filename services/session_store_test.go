package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"jasit-store/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(ttl time.Duration) (*SessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := NewSessionStore(ttl, zap.NewNop())
	store.now = clock.Now
	return store, clock
}

func addLine(t *testing.T, sess *Session, id string, qty int) {
	t.Helper()
	it, err := models.NewCartItem(id, "Layanan "+id, decimal.NewFromInt(1000), "")
	require.NoError(t, err)
	sess.Update(func(cart *models.Cart) { cart.AddItem(it, qty) })
}

func TestSessionStore_GetOrCreate(t *testing.T) {
	store, _ := newTestStore(time.Hour)

	sess, created := store.GetOrCreate("")
	require.True(t, created)
	require.NotEmpty(t, sess.ID)

	again, created := store.GetOrCreate(sess.ID)
	assert.False(t, created)
	assert.Same(t, sess, again)

	other, created := store.GetOrCreate("forged-or-unknown")
	assert.True(t, created)
	assert.NotEqual(t, "forged-or-unknown", other.ID, "unknown ids are never adopted")
	assert.Equal(t, 2, store.Len())
}

func TestSessionStore_CartsAreIsolated(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	a, _ := store.GetOrCreate("")
	b, _ := store.GetOrCreate("")

	addLine(t, a, "p-1", 2)

	b.View(func(cart models.CartReader) {
		assert.True(t, cart.IsEmpty())
	})
	a.View(func(cart models.CartReader) {
		assert.Equal(t, 2, cart.Totals().TotalItems)
	})
}

func TestSessionStore_IdleExpiry(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	sess, _ := store.GetOrCreate("")
	addLine(t, sess, "p-1", 1)

	clock.Advance(59 * time.Minute)
	_, created := store.GetOrCreate(sess.ID)
	require.False(t, created, "access refreshes the idle timer")

	clock.Advance(59 * time.Minute)
	_, ok := store.Get(sess.ID)
	assert.True(t, ok)

	clock.Advance(2 * time.Hour)
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)

	fresh, created := store.GetOrCreate(sess.ID)
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, fresh.ID)
	fresh.View(func(cart models.CartReader) {
		assert.True(t, cart.IsEmpty(), "an expired cart is not carried over")
	})
}

func TestSessionStore_Sweep(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	stale, _ := store.GetOrCreate("")
	addLine(t, stale, "p-1", 1)

	clock.Advance(30 * time.Minute)
	live, _ := store.GetOrCreate("")

	clock.Advance(45 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(live.ID)
	assert.True(t, ok)
	stale.View(func(cart models.CartReader) {
		assert.True(t, cart.IsEmpty())
	})
}

func TestSessionStore_End(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess, _ := store.GetOrCreate("")
	addLine(t, sess, "p-1", 3)

	store.End(sess.ID)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
	sess.View(func(cart models.CartReader) {
		assert.True(t, cart.IsEmpty())
	})
	store.End("unknown")
}

func TestSession_ConcurrentUpdates(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess, _ := store.GetOrCreate("")
	it, err := models.NewCartItem("p-1", "Maintenance", decimal.NewFromInt(100), "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Update(func(cart *models.Cart) { cart.AddItem(it, 1) })
		}()
	}
	wg.Wait()

	sess.View(func(cart models.CartReader) {
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 50, lines[0].Quantity)
	})
}

func TestSessionStore_RunJanitorStopsOnCancel(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	store.GetOrCreate("")
	clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestSessionStore_GetOrCreateSweepsExpiredSessions(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	store.sweepEvery = 3

	first, _ := store.GetOrCreate("")
	second, _ := store.GetOrCreate("")
	clock.Advance(2 * time.Hour)

	fresh, _ := store.GetOrCreate("")
	assert.Equal(t, 1, store.Len(), "the third creation drops the two idle sessions")
	_, ok := store.Get(fresh.ID)
	assert.True(t, ok)
	for _, id := range []string{first.ID, second.ID} {
		_, ok := store.Get(id)
		assert.False(t, ok)
	}
}

func TestSessionStore_GetRefreshesIdleTimer(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	sess, _ := store.GetOrCreate("")

	for i := 0; i < 3; i++ {
		clock.Advance(45 * time.Minute)
		_, ok := store.Get(sess.ID)
		require.True(t, ok)
	}
}

func TestSession_NilReadsEmptyAndDiscardsUpdates(t *testing.T) {
	var sess *Session

	sess.Update(func(cart *models.Cart) {
		it, err := models.NewCartItem("p-1", "Layanan", decimal.NewFromInt(1000), "")
		require.NoError(t, err)
		cart.AddItem(it, 1)
	})
	sess.View(func(cart models.CartReader) {
		assert.True(t, cart.IsEmpty())
	})
}
