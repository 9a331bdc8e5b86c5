package redisx

import (
	"context"
	"time"

	"hotelbooking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Room cache key: room:{room_id} -> JSON room row.
const keyRoom = "room:"

func New(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
