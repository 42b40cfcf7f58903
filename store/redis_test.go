package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/effective-security/gentools/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	rediscon "github.com/testcontainers/testcontainers-go/modules/redis"
)

func Test_RedisCache(t *testing.T) {
	ctx := context.Background()
	redisContainer, err := rediscon.Run(ctx, "redis:7",
		testcontainers.WithConfigModifier(func(config *container.Config) {
			config.Env = []string{
				"ALLOW_EMPTY_PASSWORD=yes",
				"REDIS_PASSWORD=redis",
				"REDIS_TLS_PORT=16379",
			}
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, redisContainer.Terminate(ctx))
	})

	state, err := redisContainer.State(ctx)
	require.NoError(t, err)
	require.True(t, state.Running)

	root := fmt.Sprintf("test-%d", time.Now().Unix())

	host, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	options, err := redis.ParseURL(host)
	require.NoError(t, err)

	client := redis.NewClient(options)

	rs := client.Ping(ctx) // Ensure the connection is established
	require.NoError(t, rs.Err(), "failed to connect to Redis")

	st := store.NewRedisCache(client, root, time.Minute)

	res, ok := st.Get(ctx, "add", `{"a":2,"b":3}`)
	assert.False(t, ok)
	assert.Empty(t, res)

	require.NoError(t, st.Set(ctx, "add", `{"a":2,"b":3}`, "5"))
	require.NoError(t, st.Set(ctx, "echo", `{"text":"hi"}`, "hi"))

	res, ok = st.Get(ctx, "add", `{"a":2,"b":3}`)
	assert.True(t, ok)
	assert.Equal(t, "5", res)

	res, ok = st.Get(ctx, "echo", `{"text":"hi"}`)
	assert.True(t, ok)
	assert.Equal(t, "hi", res)

	_, ok = st.Get(ctx, "add", `{"a":2,"b":4}`)
	assert.False(t, ok)

	// a different prefix does not see the entries
	other := store.NewRedisCache(client, root+"-other", time.Minute)
	_, ok = other.Get(ctx, "add", `{"a":2,"b":3}`)
	assert.False(t, ok)

	// a short TTL expires the entry
	expiring := store.NewRedisCache(client, root, time.Second)
	require.NoError(t, expiring.Set(ctx, "fast", `{}`, "gone"))
	_, ok = expiring.Get(ctx, "fast", `{}`)
	assert.True(t, ok)
	time.Sleep(1500 * time.Millisecond)
	_, ok = expiring.Get(ctx, "fast", `{}`)
	assert.False(t, ok)
}
