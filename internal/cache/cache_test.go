package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClient_IsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "user:1", []byte("x"), time.Minute))
	assert.NoError(t, c.SetJSON(ctx, "user:1", map[string]string{"a": "b"}, time.Minute))
	assert.NoError(t, c.Delete(ctx, "user:1"))
	assert.NoError(t, c.Close())
	assert.Error(t, c.Ping(ctx))

	var dst map[string]string
	assert.False(t, c.GetJSON(ctx, "user:1", &dst))
}

func TestUnreachableRedis_BehavesLikeMiss(t *testing.T) {
	// nothing listens on port 1
	c := New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "user:1", []byte("x"), time.Minute))
	assert.Error(t, c.Ping(ctx))
}
