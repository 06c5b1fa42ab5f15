package session_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/session"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestStore_CheckAndUpdate(t *testing.T) {
	t.Run("first message is accepted", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)

		assert.True(t, store.CheckAndUpdate("+1555", t0))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("second message inside window is rejected", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)

		assert.True(t, store.CheckAndUpdate("+1555", t0))
		assert.False(t, store.CheckAndUpdate("+1555", t0.Add(1999*time.Millisecond)))
	})

	t.Run("rejection does not extend the window", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)

		assert.True(t, store.CheckAndUpdate("+1555", t0))
		assert.False(t, store.CheckAndUpdate("+1555", t0.Add(1500*time.Millisecond)))
		assert.True(t, store.CheckAndUpdate("+1555", t0.Add(2*time.Second)))
	})

	t.Run("message after window is accepted", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)

		assert.True(t, store.CheckAndUpdate("+1555", t0))
		assert.True(t, store.CheckAndUpdate("+1555", t0.Add(3*time.Second)))
	})

	t.Run("senders are independent", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)

		assert.True(t, store.CheckAndUpdate("+1555", t0))
		assert.True(t, store.CheckAndUpdate("+1666", t0))
		assert.Equal(t, 2, store.Len())
	})

	t.Run("custom window", func(t *testing.T) {
		store := session.NewStore(session.Config{DuplicateWindow: 10 * time.Second}, t0)

		assert.True(t, store.CheckAndUpdate("+1555", t0))
		assert.False(t, store.CheckAndUpdate("+1555", t0.Add(5*time.Second)))
	})
}

func TestStore_Sweep(t *testing.T) {
	t.Run("removes idle entries and keeps recent ones", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)

		store.CheckAndUpdate("+old", t0)
		store.CheckAndUpdate("+new", t0.Add(200*time.Second))

		removed := store.Sweep(t0.Add(301 * time.Second))

		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, store.Len())
		assert.False(t, store.CheckAndUpdate("+new", t0.Add(201*time.Second)))
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)
		store.CheckAndUpdate("+old", t0)

		now := t0.Add(400 * time.Second)
		assert.Equal(t, 1, store.Sweep(now))
		assert.Equal(t, 0, store.Sweep(now))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("entry exactly at idle timeout survives", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)
		store.CheckAndUpdate("+edge", t0)

		assert.Equal(t, 0, store.Sweep(t0.Add(300*time.Second)))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("check runs the sweep once the interval elapsed", func(t *testing.T) {
		store := session.NewStore(session.Config{}, t0)
		store.CheckAndUpdate("+old", t0)

		store.CheckAndUpdate("+other", t0.Add(299*time.Second))
		assert.Equal(t, 2, store.Len())

		store.CheckAndUpdate("+other", t0.Add(302*time.Second))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("check does not sweep before the interval", func(t *testing.T) {
		store := session.NewStore(session.Config{IdleTimeout: time.Second, SweepInterval: time.Hour}, t0)
		store.CheckAndUpdate("+old", t0)

		store.CheckAndUpdate("+other", t0.Add(time.Minute))
		assert.Equal(t, 2, store.Len())
	})
}

func TestStore_ConcurrentSameSender(t *testing.T) {
	store := session.NewStore(session.Config{}, t0)

	var accepted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.CheckAndUpdate("+1555", t0) {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
}
