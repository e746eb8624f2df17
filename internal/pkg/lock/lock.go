package lock

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// Locker grants exclusive access to a set of keys. Keys are always acquired
// in sorted order so two callers locking overlapping sets cannot deadlock.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (unlock func(), err error)
}

func TrainKey(trainID int64) string {
	return fmt.Sprintf("train:%d", trainID)
}

func AccountKey(username string) string {
	return "account:" + username
}

func sortedUnique(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type localLocker struct {
	mutex sync.Mutex
	slots map[string]chan struct{}
}

// NewLocal returns a Locker for callers sharing one process.
func NewLocal() Locker {
	return &localLocker{slots: make(map[string]chan struct{})}
}

func (l *localLocker) slot(key string) chan struct{} {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

func (l *localLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	var held []chan struct{}
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}

	for _, key := range sortedUnique(keys) {
		ch := l.slot(key)
		select {
		case ch <- struct{}{}:
			held = append(held, ch)
		case <-ctx.Done():
			release()
			return nil, fmt.Errorf("lock %s: %w", key, ctx.Err())
		}
	}
	return release, nil
}

type redisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

// NewRedis returns a Locker backed by redsync, for several processes sharing
// one database.
func NewRedis(client *redis.Client, expiry time.Duration) Locker {
	return &redisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

func (l *redisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	var held []*redsync.Mutex
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			_, _ = held[i].UnlockContext(context.Background())
		}
	}

	for _, key := range sortedUnique(keys) {
		m := l.rs.NewMutex("railway:lock:"+key, redsync.WithExpiry(l.expiry))
		if err := m.LockContext(ctx); err != nil {
			release()
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		held = append(held, m)
	}
	return release, nil
}
