package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"playtube.com/config"
)

var rdb *redis.Client

func Init() error {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	return rdb.Ping(context.Background()).Err()
}

// Client exposes the shared connection for the lock package.
func Client() *redis.Client {
	return rdb
}
