package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jfeng32/polypop-backend/platform/config"
)

func CreateRedisPool() *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", config.C.RedisURL) },
	}
}

func CreateRedisConnection() (redis.Conn, error) {
	return redis.Dial("tcp", config.C.RedisURL)
}
