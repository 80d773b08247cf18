package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

func TestSetJSONAndGetJSON(t *testing.T) {
	rdb, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, rdb, "k", payload{Name: "모네", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, GetJSON(ctx, rdb, "k", &got))
	assert.Equal(t, payload{Name: "모네", Count: 3}, got)
}

func TestGetJSON_Miss(t *testing.T) {
	rdb, _ := newTestClient(t)

	var got payload
	err := GetJSON(context.Background(), rdb, "missing", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSetJSON_Expires(t *testing.T) {
	rdb, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, rdb, "ttl", payload{Name: "a"}, time.Second))
	mr.FastForward(2 * time.Second)

	var got payload
	assert.ErrorIs(t, GetJSON(ctx, rdb, "ttl", &got), ErrCacheMiss)
}

func TestDeletePattern(t *testing.T) {
	rdb, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, rdb, "exhibition:page:0", 1, 0))
	require.NoError(t, SetJSON(ctx, rdb, "exhibition:page:1", 2, 0))
	require.NoError(t, SetJSON(ctx, rdb, "exhibition:popular", 3, 0))

	require.NoError(t, DeletePattern(ctx, rdb, "exhibition:page:*"))

	assert.False(t, mr.Exists("exhibition:page:0"))
	assert.False(t, mr.Exists("exhibition:page:1"))
	assert.True(t, mr.Exists("exhibition:popular"))
}
