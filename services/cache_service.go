package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	config "github.com/dkimathi/airline_reservation/configs"
	"github.com/redis/go-redis/v9"
)

// Optional read-through cache in front of the inventory store. Purely a
// performance layer: every code path works identically with caching disabled.
var cacheClient *redis.Client

const (
	searchCacheTTL   = 5 * time.Minute
	externalCacheTTL = 10 * time.Minute
)

func InitCache() {
	url := config.Config("REDIS_URL")
	if url == "" {
		log.Println("⚠️ REDIS_URL not set, flight caches disabled")
		return
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("🔥 Invalid REDIS_URL, flight caches disabled: %v", err)
		return
	}

	cacheClient = redis.NewClient(opts)
	if err := cacheClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("🔥 Redis unreachable, flight caches disabled: %v", err)
		cacheClient = nil
		return
	}
	log.Println("✅ Flight cache connected successfully")
}

func cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if cacheClient == nil {
		return false
	}
	raw, err := cacheClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if cacheClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cacheClient.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
}

// GetCachedFlightSearch looks up a cached internal search result.
func GetCachedFlightSearch(ctx context.Context, depCode, arrCode, date string, dest interface{}) bool {
	return cacheGet(ctx, flightSearchKey(depCode, arrCode, date), dest)
}

// SetCachedFlightSearch stores an internal search result for a short window.
func SetCachedFlightSearch(ctx context.Context, depCode, arrCode, date string, flights interface{}) {
	cacheSet(ctx, flightSearchKey(depCode, arrCode, date), flights, searchCacheTTL)
}

func flightSearchKey(depCode, arrCode, date string) string {
	return "flights:search:" + depCode + "-" + arrCode + ":" + date
}

// InvalidateFlightCaches drops every cached search result. Issued explicitly
// by flight, airport and booking mutation paths.
func InvalidateFlightCaches(ctx context.Context) {
	if cacheClient == nil {
		return
	}
	for _, pattern := range []string{"flights:*", "extflights:*"} {
		keys, err := cacheClient.Keys(ctx, pattern).Result()
		if err != nil || len(keys) == 0 {
			continue
		}
		if err := cacheClient.Del(ctx, keys...).Err(); err != nil {
			log.Printf("Cache invalidation failed for %s: %v", pattern, err)
		}
	}
}
