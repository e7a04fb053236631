package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a Store implementation
// adheres to the interface contract. The store must start empty.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()
	sessionID := "contract-" + time.Now().Format("20060102150405")

	t.Run("Append and Lines", func(t *testing.T) {
		for _, line := range []string{"ls", "cd папка1", "cat  spaced  name.txt"} {
			require.NoError(t, store.Append(ctx, sessionID, line))
		}

		lines, err := store.Lines(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, []string{"ls", "cd папка1", "cat  spaced  name.txt"}, lines)
	})

	t.Run("Lines Non-Existent", func(t *testing.T) {
		_, err := store.Lines(ctx, "missing-"+sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Empty Session ID", func(t *testing.T) {
		assert.Error(t, store.Append(ctx, "", "ls"))
	})

	t.Run("Sessions", func(t *testing.T) {
		other := "a-" + sessionID
		require.NoError(t, store.Append(ctx, other, "tree"))

		ids, err := store.Sessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{other, sessionID}, ids)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, sessionID))

		_, err := store.Lines(ctx, sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)

		assert.ErrorIs(t, store.Delete(ctx, sessionID), ErrSessionNotFound)

		ids, err := store.Sessions(ctx)
		require.NoError(t, err)
		assert.NotContains(t, ids, sessionID)
	})
}
