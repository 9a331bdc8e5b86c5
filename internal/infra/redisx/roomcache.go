package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRoomCache(rdb *redis.Client, ttl time.Duration) *RoomCache {
	return &RoomCache{rdb: rdb, ttl: ttl}
}

func (c *RoomCache) Get(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	raw, err := c.rdb.Get(ctx, keyRoom+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var r room.Room
	if err := json.Unmarshal(raw, &r); err != nil {
		// Stale or corrupt entry: drop it and treat as a miss.
		_ = c.rdb.Del(ctx, keyRoom+id.String()).Err()
		return nil, nil
	}
	return &r, nil
}

func (c *RoomCache) Set(ctx context.Context, r room.Room) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyRoom+r.ID.String(), raw, c.ttl).Err()
}

func (c *RoomCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.rdb.Del(ctx, keyRoom+id.String()).Err()
}

// NopRoomCache backs deployments that run without Redis.
type NopRoomCache struct{}

func (NopRoomCache) Get(context.Context, uuid.UUID) (*room.Room, error) { return nil, nil }
func (NopRoomCache) Set(context.Context, room.Room) error               { return nil }
func (NopRoomCache) Invalidate(context.Context, uuid.UUID) error        { return nil }

var (
	_ shared.RoomCache = (*RoomCache)(nil)
	_ shared.RoomCache = NopRoomCache{}
)
