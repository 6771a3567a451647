package db

import (
	"context"
	"os"
	"sportadmin-backend/utils"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// InitRedis ouvre la connexion Redis utilisée pour le cache du tableau de
// bord. Sans REDIS_ADDR le client reste nil et le cache est désactivé.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		utils.LogInfo("REDIS_ADDR not set, dashboard cache disabled")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		utils.LogError(err, "Could not connect to Redis, dashboard cache disabled")
		RedisClient = nil
		return
	}

	utils.LogSuccess("Redis connection successful")
}
