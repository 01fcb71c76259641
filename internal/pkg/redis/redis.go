package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"homezy-service/config"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

func SetupClient(cfg *config.RedisConfig) *goredislib.Client {
	client := goredislib.NewClient(&goredislib.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("error connect redis: %v", err)
	}

	return client
}

// Locker hands out short-lived distributed mutexes keyed by resource name.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type redsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewLocker(client *goredislib.Client, expiry time.Duration) Locker {
	pool := goredis.NewPool(client)
	return &redsyncLocker{
		rs:     redsync.New(pool),
		expiry: expiry,
	}
}

func (l *redsyncLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex("lock:"+key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(8),
		redsync.WithRetryDelay(50*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		// expiry releases the lock if unlock fails
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}
