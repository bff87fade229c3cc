package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

// TestRedisAdapter_GetSet verifies a stored value reads back unchanged.
func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "elitestore-cart:s1", []byte(`[{"id":1,"quantity":2}]`), 0)
	require.NoError(t, err)

	value, err := adapter.Get(ctx, "elitestore-cart:s1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"quantity":2}]`, string(value))
}

// TestRedisAdapter_GetNotFound verifies an absent key maps to ErrNotFound.
func TestRedisAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "lastOrder:missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "lastOrder:missing")
}

// TestRedisAdapter_Overwrite verifies Set replaces the previous value.
func TestRedisAdapter_Overwrite(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "lastOrder:s1", []byte(`{"orderNumber":"ES-1"}`), 0))
	require.NoError(t, adapter.Set(ctx, "lastOrder:s1", []byte(`{"orderNumber":"ES-2"}`), 0))

	value, err := adapter.Get(ctx, "lastOrder:s1")
	require.NoError(t, err)
	assert.Contains(t, string(value), "ES-2")
}

// TestRedisAdapter_TTL verifies keys expire after their ttl.
func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl_test", []byte("expires_soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl_test")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl_test")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestRedisAdapter_Ping verifies a healthy server answers ping.
func TestRedisAdapter_Ping(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	assert.NoError(t, adapter.Ping(context.Background()))
}

// TestRedisAdapter_PingClosedServer verifies ping fails once the server is gone.
func TestRedisAdapter_PingClosedServer(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	mr.Close()

	err := adapter.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

// TestRedisAdapter_InvalidURL verifies a malformed URL is rejected.
func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

// TestParseError verifies ParseError unwraps to its cause and names the key.
func TestParseError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := error(&ParseError{Key: "elitestore-cart:s1", Err: cause})

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "elitestore-cart:s1")
}

// TestKey verifies namespace and session are joined with a colon.
func TestKey(t *testing.T) {
	assert.Equal(t, "elitestore-cart:default", Key("elitestore-cart", "default"))
}
