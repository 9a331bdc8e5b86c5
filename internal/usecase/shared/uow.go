package shared

import (
	"context"
	"time"

	"hotelbooking/internal/domain/block"
	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-committed transaction for write operations with
	// retry on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinRepeatableRead: the confirm-availability path runs its
	// read-then-write conflict check under repeatable read.
	WithinRepeatableRead(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the repositories bound to one open transaction. Each
// service only reaches the repositories of its own storage domain; the
// two domains never share a transaction.
type Tx interface {
	Hotels() HotelRepository
	Rooms() RoomRepository
	Blocks() BlockRepository
	Bookings() BookingRepository
	Users() UserRepository
}

type HotelRepository interface {
	Create(ctx context.Context, h room.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Hotel, error)
	Update(ctx context.Context, h room.Hotel) error
}

type RoomRepository interface {
	Create(ctx context.Context, r room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// Update persists all mutable fields guarded by the optimistic
	// version token; a stale version surfaces as KindVersionConflict.
	Update(ctx context.Context, r room.Room) error
	// IncrementTimesBooked / DecrementTimesBooked are storage-level
	// atomic counter updates that also bump the version token. The
	// decrement floors at zero.
	IncrementTimesBooked(ctx context.Context, id uuid.UUID) error
	DecrementTimesBooked(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlockRepository interface {
	// FindByRequestID returns (nil, nil) when no block exists for the
	// idempotency key.
	FindByRequestID(ctx context.Context, requestID uuid.UUID) (*block.Block, error)
	// FindConflicting returns PENDING and CONFIRMED blocks of the room
	// whose period overlaps the given one (inclusive on both ends).
	FindConflicting(ctx context.Context, roomID uuid.UUID, period block.Period) ([]block.Block, error)
	Create(ctx context.Context, b block.Block) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status block.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllForRoom(ctx context.Context, roomID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	// UpsertByEmail backs the idempotent admin seed at process start.
	UpsertByEmail(ctx context.Context, u user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
