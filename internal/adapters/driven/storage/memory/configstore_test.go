package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Seeded(t *testing.T) {
	seed := map[string]any{"snippets.folder_path": "~/snips"}
	store := NewConfigStore(seed)
	require.NotNil(t, store)

	assert.Equal(t, "~/snips", store.GetString("snippets.folder_path"))

	seed["snippets.folder_path"] = "changed"
	assert.Equal(t, "~/snips", store.GetString("snippets.folder_path"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore(nil)

	require.NoError(t, store.Set("key", "original"))
	require.NoError(t, store.Set("key", "updated"))

	val, ok := store.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"str":      "value",
		"int":      7,
		"int64":    int64(64),
		"float":    2.9,
		"bool":     true,
		"strings":  []string{"a", "b"},
		"anys":     []any{"a", 1, "b"},
		"mismatch": 42,
	})

	assert.Equal(t, "value", store.GetString("str"))
	assert.Empty(t, store.GetString("mismatch"))
	assert.Equal(t, 7, store.GetInt("int"))
	assert.Equal(t, 64, store.GetInt("int64"))
	assert.Equal(t, 2, store.GetInt("float"))
	assert.Zero(t, store.GetInt("str"))
	assert.True(t, store.GetBool("bool"))
	assert.False(t, store.GetBool("str"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("strings"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("anys"))
	assert.Nil(t, store.GetStringSlice("str"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_Persistence(t *testing.T) {
	store := NewConfigStore(nil)
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrent(t *testing.T) {
	store := NewConfigStore(nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set("key", i)
			_ = store.GetInt("key")
		}()
	}
	wg.Wait()

	_, ok := store.Get("key")
	assert.True(t, ok)
}
