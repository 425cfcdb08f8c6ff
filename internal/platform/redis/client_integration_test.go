//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"membership/internal/platform/config"
	"membership/internal/platform/redis"
	"membership/pkg/testutil/containers"
)

func TestNew(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rc := containers.GetManager().GetRedis(t)
	ctx := context.Background()

	client, err := redis.New(ctx, config.RedisConfig{
		URL:         rc.URL,
		PoolSize:    4,
		DialTimeout: 2 * time.Second,
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	require.NoError(t, client.Health(ctx))
	require.Equal(t, 4, client.Options().PoolSize)
}

func TestNewWithoutURL(t *testing.T) {
	client, err := redis.New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	require.Nil(t, client)
}
