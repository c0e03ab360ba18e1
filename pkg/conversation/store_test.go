package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AquaBackend/pkg/nlp"
)

func TestMemoryStoreGetCreatesIdleContext(t *testing.T) {
	store := NewMemoryStore(nil, DefaultTTL, DefaultSweepInterval)
	defer store.Shutdown()

	got := store.Get(context.Background(), "user-1")
	assert.Equal(t, StateIdle, got.State)
	assert.Nil(t, got.Pending)
	assert.WithinDuration(t, time.Now(), got.LastTouched, time.Second)
}

func TestMemoryStoreAwaitAndClear(t *testing.T) {
	store := NewMemoryStore(nil, DefaultTTL, DefaultSweepInterval)
	defer store.Shutdown()

	ctx := context.Background()
	pending := &nlp.PendingAction{
		Action:     nlp.ActionDeleteTank,
		DeleteTank: &nlp.DeleteTankParams{TankName: "004"},
	}

	store.Await(ctx, "user-1", pending)

	got := store.Get(ctx, "user-1")
	assert.Equal(t, StateAwaitingConfirmation, got.State)
	require.NotNil(t, got.Pending)
	assert.Equal(t, nlp.ActionDeleteTank, got.Pending.Action)

	store.Clear(ctx, "user-1")

	got = store.Get(ctx, "user-1")
	assert.Equal(t, StateIdle, got.State)
	assert.Nil(t, got.Pending)
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	store := NewMemoryStore(nil, DefaultTTL, DefaultSweepInterval)
	defer store.Shutdown()

	ctx := context.Background()
	store.Await(ctx, "user-1", &nlp.PendingAction{Action: nlp.ActionCreateTank})

	got := store.Get(ctx, "user-2")
	assert.Equal(t, StateIdle, got.State)
	assert.Nil(t, got.Pending)
}

func TestMemoryStoreExpiryDiscardsPendingAction(t *testing.T) {
	store := NewMemoryStore(nil, 30*time.Millisecond, time.Minute)
	defer store.Shutdown()

	ctx := context.Background()
	store.Await(ctx, "user-1", &nlp.PendingAction{Action: nlp.ActionCreateTank})

	time.Sleep(80 * time.Millisecond)

	got := store.Get(ctx, "user-1")
	assert.Equal(t, StateIdle, got.State)
	assert.Nil(t, got.Pending)
}

func TestMemoryStoreSweepRemovesExpiredEntries(t *testing.T) {
	s := &memoryStore{
		entries: map[string]*Context{
			"stale": {State: StateIdle, LastTouched: time.Now().Add(-time.Hour)},
			"live":  {State: StateIdle, LastTouched: time.Now()},
		},
		ttl: DefaultTTL,
	}

	s.removeExpired()

	assert.NotContains(t, s.entries, "stale")
	assert.Contains(t, s.entries, "live")
}
