package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects the shared Redis client. The catalog itself lives
// in memory, so Redis is optional here: it backs rate limiting and the
// trending-search counters. When it is unreachable the server runs without
// either rather than refusing to start.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, continuing without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)

	res, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("⚠️  Redis unreachable, continuing without rate limiting: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
}
