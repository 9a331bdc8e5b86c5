//go:build unit

package commands_test

import (
	"context"
	"time"

	"hotelbooking/internal/domain/block"
	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/domain/user"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory unit of work used by the command tests.
type fakeStore struct {
	hotels   map[uuid.UUID]room.Hotel
	rooms    map[uuid.UUID]room.Room
	blocks   map[uuid.UUID]block.Block
	bookings map[uuid.UUID]*booking.Booking
	users    map[string]user.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels:   make(map[uuid.UUID]room.Hotel),
		rooms:    make(map[uuid.UUID]room.Room),
		blocks:   make(map[uuid.UUID]block.Block),
		bookings: make(map[uuid.UUID]*booking.Booking),
		users:    make(map[string]user.User),
	}
}

type fakeUoW struct {
	store *fakeStore
	// err short-circuits every transaction when set.
	err error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.err != nil {
		return u.err
	}
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinRepeatableRead(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Within(ctx, fn)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Hotels() shared.HotelRepository     { return &fakeHotelRepo{store: t.store} }
func (t *fakeTx) Rooms() shared.RoomRepository       { return &fakeRoomRepo{store: t.store} }
func (t *fakeTx) Blocks() shared.BlockRepository     { return &fakeBlockRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{store: t.store} }

type fakeHotelRepo struct {
	store *fakeStore
}

func (r *fakeHotelRepo) Create(_ context.Context, h room.Hotel) error {
	if _, ok := r.store.hotels[h.ID]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "hotel already exists", nil)
	}
	r.store.hotels[h.ID] = h
	return nil
}

func (r *fakeHotelRepo) Update(_ context.Context, h room.Hotel) error {
	if _, ok := r.store.hotels[h.ID]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "hotel not found", nil)
	}
	r.store.hotels[h.ID] = h
	return nil
}

func (r *fakeHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*room.Hotel, error) {
	h, ok := r.store.hotels[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "hotel not found", nil)
	}
	return &h, nil
}

type fakeRoomRepo struct {
	store *fakeStore
}

func (r *fakeRoomRepo) Create(_ context.Context, rm room.Room) error {
	for _, existing := range r.store.rooms {
		if existing.HotelID == rm.HotelID && existing.Number == rm.Number {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "room number taken", nil)
		}
	}
	r.store.rooms[rm.ID] = rm
	return nil
}

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	return &rm, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, rm room.Room) error {
	existing, ok := r.store.rooms[rm.ID]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	if existing.Version != rm.Version {
		return infra.WrapRepoErr(infra.KindVersionConflict, "stale room version", nil)
	}
	rm.Version++
	r.store.rooms[rm.ID] = rm
	return nil
}

func (r *fakeRoomRepo) IncrementTimesBooked(_ context.Context, id uuid.UUID) error {
	rm, ok := r.store.rooms[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	rm.TimesBooked++
	rm.Version++
	r.store.rooms[id] = rm
	return nil
}

func (r *fakeRoomRepo) DecrementTimesBooked(_ context.Context, id uuid.UUID) error {
	rm, ok := r.store.rooms[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	if rm.TimesBooked > 0 {
		rm.TimesBooked--
	}
	rm.Version++
	r.store.rooms[id] = rm
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.rooms[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	delete(r.store.rooms, id)
	return nil
}

type fakeBlockRepo struct {
	store *fakeStore
}

func (r *fakeBlockRepo) FindByRequestID(_ context.Context, requestID uuid.UUID) (*block.Block, error) {
	for _, b := range r.store.blocks {
		if b.RequestID == requestID {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeBlockRepo) FindConflicting(_ context.Context, roomID uuid.UUID, period block.Period) ([]block.Block, error) {
	var out []block.Block
	for _, b := range r.store.blocks {
		if b.RoomID == roomID && b.Period.Overlaps(period) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBlockRepo) Create(_ context.Context, b block.Block) error {
	for _, existing := range r.store.blocks {
		if existing.RequestID == b.RequestID {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "request id already holds a block", nil)
		}
	}
	r.store.blocks[b.ID] = b
	return nil
}

func (r *fakeBlockRepo) UpdateStatus(_ context.Context, id uuid.UUID, status block.Status) error {
	b, ok := r.store.blocks[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "block not found", nil)
	}
	b.Status = status
	r.store.blocks[id] = b
	return nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.blocks, id)
	return nil
}

func (r *fakeBlockRepo) DeleteAllForRoom(_ context.Context, roomID uuid.UUID) error {
	for id, b := range r.store.blocks {
		if b.RoomID == roomID {
			delete(r.store.blocks, id)
		}
	}
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	for _, existing := range r.store.bookings {
		if existing.RequestID() == b.RequestID() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "request id already booked", nil)
		}
	}
	r.store.bookings[b.ID()] = copyBooking(b)
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return copyBooking(b), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	b, ok := r.store.bookings[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	r.store.bookings[id] = booking.Reconstruct(
		b.ID(), b.UserID(), b.RoomID(), b.HotelID(),
		b.Stay(), status, b.RequestID(), b.TotalPrice(),
		b.CreatedAt(), updatedAt,
	)
	return nil
}

func copyBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(
		b.ID(), b.UserID(), b.RoomID(), b.HotelID(),
		b.Stay(), b.Status(), b.RequestID(), b.TotalPrice(),
		b.CreatedAt(), b.UpdatedAt(),
	)
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := r.store.users[u.Email]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "user already exists", nil)
	}
	r.store.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := r.store.users[email]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return &u, nil
}

func (r *fakeUserRepo) UpsertByEmail(_ context.Context, u user.User) error {
	r.store.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	for email, u := range r.store.users {
		if u.ID == id {
			u.LastLoginAt = &at
			r.store.users[email] = u
		}
	}
	return nil
}

// fakeRoomCache records invalidations so tests can assert cache hygiene.
type fakeRoomCache struct {
	invalidated []uuid.UUID
}

func (c *fakeRoomCache) Get(context.Context, uuid.UUID) (*room.Room, error) { return nil, nil }

func (c *fakeRoomCache) Set(context.Context, room.Room) error { return nil }

func (c *fakeRoomCache) Invalidate(_ context.Context, id uuid.UUID) error {
	c.invalidated = append(c.invalidated, id)
	return nil
}
