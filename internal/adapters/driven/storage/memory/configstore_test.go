package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	store.Set("search.database", "nr")
	store.Set("search.database", "refseq_rna")

	val, ok := store.Get("search.database")
	assert.True(t, ok)
	assert.Equal(t, "refseq_rna", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.Zero(t, store.GetFloat("missing"))
	assert.Zero(t, store.GetDuration("missing"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	store.Set("search.limit", int64(50))
	store.Set("search.e_value", 0.001)
	store.Set("search.e_int", 5)
	store.Set("ncbi.poll_interval", "15s")
	store.Set("ncbi.http_timeout", 2*time.Minute)
	store.Set("ncbi.bad", "soon")

	assert.Equal(t, 50, store.GetInt("search.limit"))
	assert.InDelta(t, 0.001, store.GetFloat("search.e_value"), 1e-12)
	assert.InDelta(t, 5.0, store.GetFloat("search.e_int"), 1e-12)
	assert.Equal(t, 15*time.Second, store.GetDuration("ncbi.poll_interval"))
	assert.Equal(t, 2*time.Minute, store.GetDuration("ncbi.http_timeout"))
	assert.Zero(t, store.GetDuration("ncbi.bad"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := NewConfigStore()
	store.Set("s", 1)
	store.Set("i", "one")

	assert.Empty(t, store.GetString("s"))
	assert.Zero(t, store.GetInt("i"))
	assert.Zero(t, store.GetFloat("i"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			store.Set("search.limit", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("search.limit")
		}()
	}
	wg.Wait()

	_, ok := store.Get("search.limit")
	assert.True(t, ok)
}
