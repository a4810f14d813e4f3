package database

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	config "github.com/mahfuzr/coaching_center/configs"
)

// Rdb stays nil when REDIS_URL is unset; callers treat the cache as
// best-effort and fall back to the database.
var Rdb *redis.Client

func ConnectRedis() {
	redisURL := config.Config("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, leaderboard caching disabled")
		return
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("🔥 Invalid REDIS_URL, caching disabled: %v", err)
		return
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("🔥 Redis unreachable, caching disabled: %v", err)
		return
	}

	Rdb = client
	log.Println("✅ Redis connected, leaderboard caching enabled")
}

// CacheGet returns the cached payload for key, or "" on miss or when
// the cache is disabled.
func CacheGet(ctx context.Context, key string) string {
	if Rdb == nil {
		return ""
	}
	val, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis GET %s failed: %v", key, err)
		}
		return ""
	}
	return val
}

func CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Redis SET %s failed: %v", key, err)
	}
}

// keyScanner is the slice of the redis client the invalidation walk
// needs; *redis.Client satisfies it.
type keyScanner interface {
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// scanAndDelete walks the keyspace with SCAN, deleting each page of
// matches. Unlike KEYS this never blocks Redis on a full sweep.
func scanAndDelete(ctx context.Context, client keyScanner, pattern string) (int, error) {
	deleted := 0
	var cursor uint64
	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				return deleted, err
			}
			deleted += len(keys)
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

// CacheInvalidate drops every key matching pattern, e.g. after a new
// attempt lands.
func CacheInvalidate(ctx context.Context, pattern string) {
	if Rdb == nil {
		return
	}
	if _, err := scanAndDelete(ctx, Rdb, pattern); err != nil {
		log.Printf("Redis invalidate %s failed: %v", pattern, err)
	}
}
