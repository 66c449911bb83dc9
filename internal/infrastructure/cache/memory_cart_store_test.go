package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCartStore(t *testing.T) {
	store := NewInMemoryCartStore()
	ctx := context.Background()

	t.Run("unknown id loads an empty cart", func(t *testing.T) {
		c, err := store.Load(ctx, "fresh-visitor")
		require.NoError(t, err)
		assert.Equal(t, "fresh-visitor", c.ID)
		assert.True(t, c.IsEmpty())
	})

	t.Run("save and reload round-trips items", func(t *testing.T) {
		c, err := store.Load(ctx, "visitor-1")
		require.NoError(t, err)
		c.AddItem(uuid.New(), "LP-001", "口红管", "")
		require.NoError(t, store.Save(ctx, c))

		loaded, err := store.Load(ctx, "visitor-1")
		require.NoError(t, err)
		require.Len(t, loaded.Items, 1)
		assert.Equal(t, "LP-001", loaded.Items[0].ProductCode)
	})

	t.Run("corrupt payload surfaces an error", func(t *testing.T) {
		store.mu.Lock()
		store.carts["visitor-1"] = []byte("{not json")
		store.mu.Unlock()

		_, err := store.Load(ctx, "visitor-1")
		assert.Error(t, err)
	})

	t.Run("delete clears the cart", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "visitor-1"))

		c, err := store.Load(ctx, "visitor-1")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("language store round-trip", func(t *testing.T) {
		langs := NewInMemoryLanguageStore()

		lang, err := langs.Get(ctx, "visitor-1")
		require.NoError(t, err)
		assert.Empty(t, lang)

		require.NoError(t, langs.Set(ctx, "visitor-1", "en"))
		lang, err = langs.Get(ctx, "visitor-1")
		require.NoError(t, err)
		assert.Equal(t, "en", lang)
	})
}
