package feed

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestFeed(t *testing.T) (*RedisLedgerFeed, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLedgerFeed(client, nil), srv
}

func TestRedisLedgerFeed_PublishSubscribe(t *testing.T) {
	f, srv := newTestFeed(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 4)
	unsubscribe, err := f.Subscribe(ctx, []string{"jobs", "assets"}, func(c string) { got <- c })
	require.NoError(t, err)

	require.NoError(t, f.Publish(ctx, "jobs"))
	require.NoError(t, f.Publish(ctx, "settings"))
	require.NoError(t, f.Publish(ctx, "assets"))

	for _, want := range []string{"jobs", "assets"} {
		select {
		case c := <-got:
			require.Equal(t, want, c)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}

	ver, err := srv.Get("ledger:version:jobs")
	require.NoError(t, err)
	require.Equal(t, "1", ver)

	unsubscribe()
	require.NoError(t, f.Publish(ctx, "jobs"))
	select {
	case c := <-got:
		t.Fatalf("unexpected notification after unsubscribe: %s", c)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRedisLedgerFeed_PublishBumpsVersion(t *testing.T) {
	f, srv := newTestFeed(t)
	ctx := context.Background()

	require.False(t, srv.Exists("ledger:version:jobs"))
	require.NoError(t, f.Publish(ctx, "jobs"))
	require.NoError(t, f.Publish(ctx, "jobs"))
	val, err := srv.Get("ledger:version:jobs")
	require.NoError(t, err)
	require.Equal(t, "2", val)
}

func TestRedisLedgerFeed_Disabled(t *testing.T) {
	var f *RedisLedgerFeed
	ctx := context.Background()

	require.NoError(t, f.Publish(ctx, "jobs"))
	unsubscribe, err := f.Subscribe(ctx, []string{"jobs"}, func(string) { t.Fatalf("no callbacks expected") })
	require.NoError(t, err)
	unsubscribe()

	require.NoError(t, NewRedisLedgerFeed(nil, nil).Publish(ctx, "jobs"))
}
