package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGenerator(t *testing.T) {
	a, b := ULIDGenerator{}.NewID(), ULIDGenerator{}.NewID()
	assert.Len(t, a, ulid.EncodedSize)
	assert.NotEqual(t, a, b)
	_, err := ulid.ParseStrict(a)
	assert.NoError(t, err)
}

func TestClocks(t *testing.T) {
	at := time.Date(2025, 11, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, at, FixedClock{T: at}.Now())
	assert.Equal(t, time.UTC, SystemClock{}.Now().Location())
}

func TestRedisClaim(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	ctx := context.Background()

	ok, err := RedisClaim(ctx, rdb, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = RedisClaim(ctx, rdb, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, RedisDel(ctx, rdb, "k"))
	assert.False(t, mr.Exists("k"))
}
