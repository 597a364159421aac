package redis_test

import (
	"context"
	"testing"

	"github.com/itspb-ux/AccessHire/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { _ = redis.Close() })

	t.Run("Should reject missing or malformed URLs", func(t *testing.T) {
		assert.Error(t, redis.Initialize(redis.Config{}))
		assert.Error(t, redis.Initialize(redis.Config{URL: "http://localhost:6379"}))
		assert.Nil(t, redis.Client())
	})

	t.Run("Should leave the client nil when unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		assert.Error(t, redis.Initialize(redis.Config{URL: "redis://" + addr}))
		assert.Error(t, redis.HealthCheck(context.Background()))
	})

	t.Run("Should connect and report healthy", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.RequireAuth("s3cret")

		require.NoError(t, redis.Initialize(redis.Config{URL: "redis://" + mr.Addr(), Password: "s3cret"}))
		assert.NotNil(t, redis.Client())
		assert.NoError(t, redis.HealthCheck(context.Background()))

		require.NoError(t, redis.Close())
		assert.Nil(t, redis.Client())
	})

	t.Run("Should take the password from the URL", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.RequireAuth("fromurl")

		c, err := redis.NewClient(redis.Config{URL: "redis://default:fromurl@" + mr.Addr()})
		require.NoError(t, err)
		defer c.Close()
		assert.NoError(t, c.Ping(context.Background()).Err())
	})
}
