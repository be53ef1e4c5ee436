package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/i18n"
)

const defaultLimiterShards = 16

// bucket tracks the remaining budget for one client within the current window.
type bucket struct {
	remaining   int
	windowStart time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// ShardedRateLimiter is a fixed-window rate limiter. Clients are hashed
// across shards so concurrent requests rarely contend on the same lock.
type ShardedRateLimiter struct {
	shards []*limiterShard
	rate   int
	window time.Duration
	stopCh chan struct{}
}

// RateLimiter is an alias for ShardedRateLimiter.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter creates a rate limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultLimiterShards)
}

// NewShardedRateLimiter creates a rate limiter with an explicit shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultLimiterShards
	}

	rl := &ShardedRateLimiter{
		shards: make([]*limiterShard, numShards),
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{buckets: make(map[string]*bucket)}
	}

	go rl.reapLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(client string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(client))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes one request from the client's window budget.
func (rl *ShardedRateLimiter) take(client string) (allowed bool, remaining int) {
	shard := rl.shardFor(client)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	b, ok := shard.buckets[client]
	if !ok || now.Sub(b.windowStart) > rl.window {
		shard.buckets[client] = &bucket{remaining: rl.rate - 1, windowStart: now}
		return true, rl.rate - 1
	}

	if b.remaining <= 0 {
		return false, 0
	}
	b.remaining--
	return true, b.remaining
}

func (rl *ShardedRateLimiter) enforce(c *gin.Context, client string) {
	allowed, remaining := rl.take(client)

	c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

	if !allowed {
		c.Header("Retry-After", rl.window.String())
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		resp := dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
		return
	}

	c.Next()
}

// RateLimit limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.enforce(c, "ip:"+c.ClientIP())
	}
}

// UserRateLimit limits requests per authenticated user, falling back to the
// client IP when the request carries no identity.
func (rl *ShardedRateLimiter) UserRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := "ip:" + c.ClientIP()
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(primitive.ObjectID); ok {
				client = "user:" + id.Hex()
			}
		}
		rl.enforce(c, client)
	}
}

func (rl *ShardedRateLimiter) reapLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.reapStale()
		case <-rl.stopCh:
			return
		}
	}
}

// reapStale drops buckets idle for more than two windows.
func (rl *ShardedRateLimiter) reapStale() {
	now := time.Now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for client, b := range shard.buckets {
			if now.Sub(b.windowStart) > threshold {
				delete(shard.buckets, client)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop terminates the background reaper.
func (rl *ShardedRateLimiter) Stop() {
	close(rl.stopCh)
}

// Stats reports the tracked-client count, total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.buckets)
		total += perShard[i]
		shard.mu.Unlock()
	}
	return total, perShard
}
