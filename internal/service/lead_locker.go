package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

// LeadLocker serialises upserts of the same lead id.
// The returned unlock func must be called exactly once.
type LeadLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// KeyedMutex is an in-process LeadLocker. Entries are reference counted and
// removed when the last holder or waiter is gone.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedEntry)}
}

func (k *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyedEntry{sem: make(chan struct{}, 1)}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(key, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			k.release(key, entry)
		})
	}, nil
}

func (k *KeyedMutex) release(key string, entry *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
}

// size is the number of keys currently tracked
func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

// releaseLeaseScript deletes the lease only when it still holds our token
const releaseLeaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type redisLeaseClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisLeaseLocker is a LeadLocker shared by every API replica.
// A lease expires after ttl so a crashed holder cannot block a lead forever.
type RedisLeaseLocker struct {
	client       redisLeaseClient
	ttl          time.Duration
	pollInterval time.Duration
	prefix       string
	logger       logger.Logger
}

func NewRedisLeaseLocker(client redisLeaseClient, ttl time.Duration, logger logger.Logger) *RedisLeaseLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLeaseLocker{
		client:       client,
		ttl:          ttl,
		pollInterval: 25 * time.Millisecond,
		prefix:       "pixeltrack:lead-lock:",
		logger:       logger,
	}
}

func (l *RedisLeaseLocker) Lock(ctx context.Context, key string) (func(), error) {
	leaseKey := l.prefix + key
	token := uuid.New().String()

	for {
		acquired, err := l.client.SetNX(ctx, leaseKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lead lease: %w", err)
		}
		if acquired {
			break
		}

		select {
		case <-time.After(l.pollInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := l.client.Eval(releaseCtx, releaseLeaseScript, []string{leaseKey}, token).Err()
			if err != nil && !errors.Is(err, redis.Nil) {
				l.logger.WithField("lead_id", key).WithField("error", err.Error()).Warn("Failed to release lead lease")
			}
		})
	}, nil
}
