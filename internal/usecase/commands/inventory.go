package commands

import (
	"context"
	"log/slog"
	"time"

	"hotelbooking/internal/domain/block"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/pkg/errs"
	"hotelbooking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound      = errs.New("room not found")
	ErrRoomUnavailable   = errs.New("room unavailable")
	ErrDateRangeConflict = errs.New("date range conflicts with an existing confirmed hold")
	ErrInvalidRequest    = errs.New("invalid request")
)

type ConfirmResult struct {
	BlockID  uuid.UUID
	Status   block.Status
	Replayed bool
}

type InventoryCommands interface {
	// ConfirmAvailability places a hold on the room for the date range.
	// Calls are idempotent on requestID: a replay promotes a pending
	// hold to confirmed instead of creating a second block.
	ConfirmAvailability(ctx context.Context, roomID uuid.UUID, startDate, endDate time.Time, bookingID, requestID uuid.UUID) (*ConfirmResult, error)
	// ReleaseRoom is the compensating action, safe to call any number
	// of times.
	ReleaseRoom(ctx context.Context, roomID, requestID uuid.UUID) error
	IncrementTimesBooked(ctx context.Context, roomID uuid.UUID) error
}

type inventoryUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.RoomCache
	clock clock.Clock
}

func NewInventoryUseCase(uow shared.UnitOfWork, cache shared.RoomCache, clock clock.Clock) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow, cache: cache, clock: clock}
}

func (u *inventoryUseCaseImpl) ConfirmAvailability(
	ctx context.Context,
	roomID uuid.UUID,
	startDate, endDate time.Time,
	bookingID, requestID uuid.UUID,
) (*ConfirmResult, error) {
	period, err := block.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	var result *ConfirmResult
	// Repeatable read narrows the window between the conflict check and
	// the insert; see the pending-block note on the conflict check.
	err = u.uow.WithinRepeatableRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Idempotency first: a replay of a request that already holds
		// the room must succeed without touching anything else.
		existing, err := tx.Blocks().FindByRequestID(ctx, requestID)
		if err != nil {
			return err
		}
		if existing != nil {
			// Confirm reports ErrAlreadyConfirmed on a re-replay; either
			// way the block ends CONFIRMED.
			if err := existing.Confirm(); err == nil {
				if err := tx.Blocks().UpdateStatus(ctx, existing.ID, existing.Status); err != nil {
					return err
				}
			}
			result = &ConfirmResult{BlockID: existing.ID, Status: existing.Status, Replayed: true}
			return nil
		}

		rm, err := tx.Rooms().FindByID(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomUnavailable)
			}
			return err
		}
		if !rm.Available {
			return errs.Mark(errs.New("room is not open for booking"), ErrRoomUnavailable)
		}

		// Only a confirmed overlap is a conflict; overlapping pending
		// holds from concurrent callers are tolerated here and caught
		// at the confirmed transition.
		conflicting, err := tx.Blocks().FindConflicting(ctx, roomID, period)
		if err != nil {
			return err
		}
		for _, c := range conflicting {
			if c.Status == block.StatusConfirmed {
				return errs.Mark(errs.Newf("room blocked %s to %s",
					c.Period.Start.Format("2006-01-02"), c.Period.End.Format("2006-01-02")), ErrDateRangeConflict)
			}
		}

		nb := block.NewPending(roomID, bookingID, requestID, period, u.clock.Now())
		if err := tx.Blocks().Create(ctx, nb); err != nil {
			// A concurrent call with the same request id won the insert;
			// treat it as the replay it is.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				replayed, ferr := tx.Blocks().FindByRequestID(ctx, requestID)
				if ferr != nil || replayed == nil {
					return err
				}
				result = &ConfirmResult{BlockID: replayed.ID, Status: replayed.Status, Replayed: true}
				return nil
			}
			return err
		}
		result = &ConfirmResult{BlockID: nb.ID, Status: nb.Status, Replayed: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *inventoryUseCaseImpl) ReleaseRoom(ctx context.Context, roomID, requestID uuid.UUID) error {
	var touchedRoom *uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Blocks().FindByRequestID(ctx, requestID)
		if err != nil {
			return err
		}
		if b == nil {
			// Already released.
			return nil
		}

		if b.Status == block.StatusConfirmed {
			if err := tx.Rooms().DecrementTimesBooked(ctx, b.RoomID); err != nil {
				return err
			}
			touchedRoom = &b.RoomID
		}
		// Hard delete: a released hold must not be visible to future
		// conflict checks.
		return tx.Blocks().Delete(ctx, b.ID)
	})
	if err != nil {
		return err
	}

	if touchedRoom != nil {
		u.invalidateRoom(ctx, *touchedRoom)
	}
	return nil
}

func (u *inventoryUseCaseImpl) IncrementTimesBooked(ctx context.Context, roomID uuid.UUID) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().IncrementTimesBooked(ctx, roomID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRoomNotFound)
		}
		return err
	}

	u.invalidateRoom(ctx, roomID)
	return nil
}

func (u *inventoryUseCaseImpl) invalidateRoom(ctx context.Context, roomID uuid.UUID) {
	if err := u.cache.Invalidate(ctx, roomID); err != nil {
		slog.Warn("room cache invalidation failed", "room_id", roomID, "error", err)
	}
}
