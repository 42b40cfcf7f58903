package store_test

import (
	"context"
	"testing"

	"github.com/effective-security/gentools/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryCache(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryCache()

	// empty cache misses
	res, ok := st.Get(ctx, "add", `{"a":2,"b":3}`)
	assert.False(t, ok)
	assert.Empty(t, res)

	require.NoError(t, st.Set(ctx, "add", `{"a":2,"b":3}`, "5"))

	res, ok = st.Get(ctx, "add", `{"a":2,"b":3}`)
	assert.True(t, ok)
	assert.Equal(t, "5", res)

	// the key covers both the tool name and the arguments
	_, ok = st.Get(ctx, "add", `{"a":2,"b":4}`)
	assert.False(t, ok)
	_, ok = st.Get(ctx, "sub", `{"a":2,"b":3}`)
	assert.False(t, ok)

	// overwrite
	require.NoError(t, st.Set(ctx, "add", `{"a":2,"b":3}`, "6"))
	res, ok = st.Get(ctx, "add", `{"a":2,"b":3}`)
	assert.True(t, ok)
	assert.Equal(t, "6", res)
}

func TestKey(t *testing.T) {
	k1 := store.Key("add", `{"a":2,"b":3}`)
	k2 := store.Key("add", `{"a":2,"b":3}`)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, store.Key("add", `{"a":2,"b":4}`))
	assert.NotEqual(t, k1, store.Key("sub", `{"a":2,"b":3}`))
}
