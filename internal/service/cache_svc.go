package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// TranscriptCacheTTL bounds staleness of cached transcript views. Transcripts
// are immutable once completed, so the TTL mostly limits memory use.
const TranscriptCacheTTL = 5 * time.Minute

// CacheService provides a Redis cache-aside layer for transcript views.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetTranscript retrieves a cached transcript view. Returns nil if not
// cached or cache is disabled.
func (c *CacheService) GetTranscript(ctx context.Context, sourceID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, transcriptKey(sourceID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetTranscript stores a transcript view in cache.
func (c *CacheService) SetTranscript(ctx context.Context, sourceID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, transcriptKey(sourceID), b, TranscriptCacheTTL).Err()
}

// InvalidateTranscript removes a transcript view from cache (called when a
// source completes, retries, or is deleted).
func (c *CacheService) InvalidateTranscript(ctx context.Context, sourceID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, transcriptKey(sourceID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func transcriptKey(sourceID string) string {
	return fmt.Sprintf("transcript:%s", sourceID)
}
