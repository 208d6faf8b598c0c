package lockout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLockout(t *testing.T) {
	t.Run(`locks after max failures and unlocks after the window`, func(t *testing.T) {
		store := New(3, 15*time.Minute)
		current := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return current }

		for k := 0; k < 3; k++ {
			allowed, _ := store.Allowed("user@example.com")
			require.True(t, allowed)
			store.Fail("user@example.com")
		}

		allowed, retryAfter := store.Allowed("user@example.com")
		require.False(t, allowed)
		require.Equal(t, 15*time.Minute, retryAfter)

		current = current.Add(16 * time.Minute)
		allowed, _ = store.Allowed("user@example.com")
		require.True(t, allowed)
	})

	t.Run(`reset clears failures`, func(t *testing.T) {
		store := New(2, time.Minute)
		store.Fail("a@example.com")
		store.Fail("a@example.com")
		allowed, _ := store.Allowed("a@example.com")
		require.False(t, allowed)

		store.Reset("a@example.com")
		allowed, _ = store.Allowed("a@example.com")
		require.True(t, allowed)
	})

	t.Run(`keys are independent`, func(t *testing.T) {
		store := New(1, time.Minute)
		store.Fail("a@example.com")
		allowed, _ := store.Allowed("b@example.com")
		require.True(t, allowed)
	})

	t.Run(`old attempts fall out of the window`, func(t *testing.T) {
		store := New(2, 10*time.Minute)
		current := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return current }

		store.Fail("user@example.com")
		current = current.Add(11 * time.Minute)
		store.Fail("user@example.com")

		allowed, _ := store.Allowed("user@example.com")
		require.True(t, allowed)
	})
}
