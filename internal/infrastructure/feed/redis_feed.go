package feed

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"bengkel_service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "ledger:"
	versionPrefix = "ledger:version:"
)

// RedisLedgerFeed is the live change feed of the ledger store, carried over
// Redis pub/sub. Every publish bumps a per-collection version counter and
// broadcasts the new version on the "ledger:<collection>" channel.
//
// A nil feed or a feed without a client is a no-op, so the service runs
// without Redis and only loses live updates.
type RedisLedgerFeed struct {
	client *redis.Client
	logger *slog.Logger
}

var _ interfaces.ILedgerFeed = (*RedisLedgerFeed)(nil)

func NewRedisLedgerFeed(client *redis.Client, logger *slog.Logger) *RedisLedgerFeed {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisLedgerFeed{client: client, logger: logger.With(slog.String("component", "ledger_feed"))}
}

func Channel(collection string) string {
	return channelPrefix + collection
}

func (f *RedisLedgerFeed) Publish(ctx context.Context, collection string) error {
	if f == nil || f.client == nil {
		return nil
	}
	ver, err := f.client.Incr(ctx, versionPrefix+collection).Result()
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, Channel(collection), strconv.FormatInt(ver, 10)).Err()
}

// Subscribe calls onChange from a single goroutine, in message order, until
// ctx is done or unsubscribe is called. It returns once the subscription is
// confirmed by Redis.
func (f *RedisLedgerFeed) Subscribe(ctx context.Context, collections []string, onChange func(collection string)) (func(), error) {
	if f == nil || f.client == nil || len(collections) == 0 {
		return func() {}, nil
	}
	channels := make([]string, 0, len(collections))
	for _, c := range collections {
		channels = append(channels, Channel(c))
	}

	pubsub := f.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() { _ = pubsub.Close() }()
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				f.logger.DebugContext(subCtx, "ledger change", slog.String("channel", msg.Channel), slog.String("version", msg.Payload))
				onChange(strings.TrimPrefix(msg.Channel, channelPrefix))
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}
