package commands

import (
	"context"
	"log/slog"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/pkg/errs"
	"hotelbooking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrVersionConflict = errs.New("room was modified concurrently")
	ErrDuplicateRoom   = errs.New("room number already taken")
)

type CreateHotelCommand struct {
	Name    string
	Address string
}

type CreateRoomCommand struct {
	HotelID            uuid.UUID
	Number             string
	Available          bool
	RoomType           string
	PricePerNightCents int64
	Capacity           int32
}

type UpdateHotelCommand struct {
	ID      uuid.UUID
	Name    string
	Address string
}

// UpdateRoomCommand carries the version the caller read; a stale
// version is rejected with ErrVersionConflict rather than silently
// overwriting a concurrent change.
type UpdateRoomCommand struct {
	ID                 uuid.UUID
	Number             string
	Available          bool
	RoomType           string
	PricePerNightCents int64
	Capacity           int32
	Version            int64
}

type AdminCommands interface {
	CreateHotel(ctx context.Context, cmd CreateHotelCommand) (*room.Hotel, error)
	UpdateHotel(ctx context.Context, cmd UpdateHotelCommand) error
	CreateRoom(ctx context.Context, cmd CreateRoomCommand) (*room.Room, error)
	UpdateRoom(ctx context.Context, cmd UpdateRoomCommand) error
	// DeleteRoom removes the room together with all of its blocks.
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type adminUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.RoomCache
	clock clock.Clock
}

func NewAdminUseCase(uow shared.UnitOfWork, cache shared.RoomCache, clock clock.Clock) AdminCommands {
	return &adminUseCaseImpl{uow: uow, cache: cache, clock: clock}
}

func (u *adminUseCaseImpl) CreateHotel(ctx context.Context, cmd CreateHotelCommand) (*room.Hotel, error) {
	if cmd.Name == "" {
		return nil, errs.Mark(errs.New("hotel name is required"), ErrInvalidRequest)
	}

	h := room.Hotel{
		ID:        uuid.New(),
		Name:      cmd.Name,
		Address:   cmd.Address,
		CreatedAt: u.clock.Now(),
	}
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hotels().Create(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (u *adminUseCaseImpl) UpdateHotel(ctx context.Context, cmd UpdateHotelCommand) error {
	if cmd.Name == "" {
		return errs.Mark(errs.New("hotel name is required"), ErrInvalidRequest)
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Hotels().FindByID(ctx, cmd.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrHotelNotFound)
			}
			return err
		}

		current.Name = cmd.Name
		current.Address = cmd.Address
		return tx.Hotels().Update(ctx, *current)
	})
	return err
}

func (u *adminUseCaseImpl) CreateRoom(ctx context.Context, cmd CreateRoomCommand) (*room.Room, error) {
	if cmd.Number == "" || cmd.PricePerNightCents < 0 || cmd.Capacity < 1 {
		return nil, errs.Mark(errs.New("invalid room attributes"), ErrInvalidRequest)
	}

	rm := room.Room{
		ID:                 uuid.New(),
		HotelID:            cmd.HotelID,
		Number:             cmd.Number,
		Available:          cmd.Available,
		TimesBooked:        0,
		RoomType:           cmd.RoomType,
		PricePerNightCents: cmd.PricePerNightCents,
		Capacity:           int(cmd.Capacity),
		Version:            0,
		CreatedAt:          u.clock.Now(),
	}
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Hotels().FindByID(ctx, cmd.HotelID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrHotelNotFound)
			}
			return err
		}
		return tx.Rooms().Create(ctx, rm)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateRoom)
		}
		return nil, err
	}
	return &rm, nil
}

func (u *adminUseCaseImpl) UpdateRoom(ctx context.Context, cmd UpdateRoomCommand) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Rooms().FindByID(ctx, cmd.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return err
		}

		current.Number = cmd.Number
		current.Available = cmd.Available
		current.RoomType = cmd.RoomType
		current.PricePerNightCents = cmd.PricePerNightCents
		current.Capacity = int(cmd.Capacity)
		current.Version = cmd.Version
		return tx.Rooms().Update(ctx, *current)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindVersionConflict) {
			return errs.Mark(err, ErrVersionConflict)
		}
		return err
	}

	u.invalidate(ctx, cmd.ID)
	return nil
}

func (u *adminUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Blocks().DeleteAllForRoom(ctx, id); err != nil {
			return err
		}
		if err := tx.Rooms().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.invalidate(ctx, id)
	return nil
}

func (u *adminUseCaseImpl) invalidate(ctx context.Context, roomID uuid.UUID) {
	if err := u.cache.Invalidate(ctx, roomID); err != nil {
		slog.Warn("room cache invalidation failed", "room_id", roomID, "error", err)
	}
}
