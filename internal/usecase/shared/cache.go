package shared

import (
	"context"

	"hotelbooking/internal/domain/room"

	"github.com/google/uuid"
)

// RoomCache is a best-effort read-through cache over room rows. A miss
// returns (nil, nil); callers fall back to storage and never fail a
// request on cache errors.
type RoomCache interface {
	Get(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Set(ctx context.Context, r room.Room) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
