package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// CounterStore tracks request counts per key over a rolling window. Incr
// records one hit and returns the in-window count plus how long until the
// oldest hit leaves the window.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, retryAfter time.Duration, err error)
}

// RateLimit gates the contact endpoint: at most max requests per client
// address per rolling window. Over-limit requests get a 429 with standard
// RateLimit headers and never reach the handler.
func RateLimit(store CounterStore, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		count, retryAfter, err := store.Incr(c.Request.Context(), key, window)
		if err != nil {
			// The limiter backend being down should not take the form down.
			log.Printf("rate limiter unavailable, letting request through: %v", err)
			c.Next()
			return
		}

		remaining := int64(max) - count
		if remaining < 0 {
			remaining = 0
		}
		resetSeconds := int64(retryAfter.Round(time.Second).Seconds())
		if resetSeconds < 1 {
			resetSeconds = 1
		}

		c.Header("RateLimit-Limit", strconv.Itoa(max))
		c.Header("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("RateLimit-Reset", strconv.FormatInt(resetSeconds, 10))

		if count > int64(max) {
			c.Header("Retry-After", strconv.FormatInt(resetSeconds, 10))
			minutes := int(window.Minutes())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Demasiados intentos de contacto. Intenta nuevamente en %d minutos.", minutes),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// memoryCounterStore keeps per-key hit timestamps behind a mutex. Good
// enough for a single process; use the Redis store when running more than
// one replica.
type memoryCounterStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryCounterStore() CounterStore {
	return &memoryCounterStore{
		hits: make(map[string][]time.Time),
		now:  time.Now,
	}
}

func (s *memoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-window)

	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	s.hits[key] = kept

	retryAfter := kept[0].Add(window).Sub(now)
	return int64(len(kept)), retryAfter, nil
}

// rollingWindowScript records a hit in a sorted set keyed by timestamp and
// returns the in-window count and the oldest hit. All four operations run
// atomically so concurrent requests from one address cannot slip past the
// limit.
var rollingWindowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1] - ARGV[2])
redis.call('ZADD', KEYS[1], ARGV[1], ARGV[3])
redis.call('PEXPIRE', KEYS[1], ARGV[2])
local count = redis.call('ZCARD', KEYS[1])
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
return {count, oldest[2]}
`)

type redisCounterStore struct {
	client *redis.Client
	seq    uint64
	mu     sync.Mutex
}

func NewRedisCounterStore(client *redis.Client) CounterStore {
	return &redisCounterStore{client: client}
}

func (s *redisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := time.Now()
	nowMs := now.UnixMilli()

	s.mu.Lock()
	s.seq++
	member := fmt.Sprintf("%d-%d", nowMs, s.seq)
	s.mu.Unlock()

	res, err := rollingWindowScript.Run(ctx, s.client, []string{key},
		nowMs, window.Milliseconds(), member).Result()
	if err != nil {
		return 0, 0, err
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return 0, 0, fmt.Errorf("unexpected script result: %v", res)
	}

	count, _ := vals[0].(int64)
	oldestMs := nowMs
	if raw, ok := vals[1].(string); ok {
		if parsed, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			oldestMs = parsed
		}
	}

	retryAfter := time.Duration(oldestMs)*time.Millisecond + window - time.Duration(nowMs)*time.Millisecond
	return count, retryAfter, nil
}
