package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a Locker built on SET NX PX. Keys expire after ttl; release
// deletes the key only while it still holds the caller's token.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	wait   time.Duration
	log    zerolog.Logger
}

func NewRedis(client redis.UniversalClient, ttl, wait time.Duration, log zerolog.Logger) *Redis {
	return &Redis{
		client: client,
		prefix: "lock:",
		ttl:    ttl,
		wait:   wait,
		log:    log,
	}
}

func (r *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	if r.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.wait)
		defer cancel()
	}

	fullKey := r.prefix + key
	token := uuid.NewString()
	backoff := 10 * time.Millisecond

	for {
		ok, err := r.client.SetNX(ctx, fullKey, token, r.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ErrNotAcquired
		case <-time.After(backoff):
		}
		if backoff < 200*time.Millisecond {
			backoff *= 2
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, r.client, []string{fullKey}, token).Err(); err != nil {
				r.log.Warn().Err(err).Str("key", fullKey).Msg("failed to release lock")
			}
		})
	}, nil
}
