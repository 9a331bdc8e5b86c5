package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/pkg/errs"
	"hotelbooking/internal/pkg/resilience"
	"hotelbooking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoAvailableRoom     = errs.New("no available room")
	ErrUpstreamUnavailable = errs.New("hotel service did not answer")
	ErrAccessDenied        = errs.New("access denied")
	ErrBookingNotFound     = errs.New("booking not found")
)

type CreateBookingCommand struct {
	UserID     uuid.UUID
	RoomID     *uuid.UUID
	AutoSelect bool
	StartDate  time.Time
	EndDate    time.Time
}

type BookingCommands interface {
	// CreateBooking runs the whole saga in one call: persist PENDING,
	// confirm the hold upstream through the guarded path, then finalize
	// to CONFIRMED or compensate to CANCELLED.
	CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway HotelGateway
	retryer *resilience.Retryer
	breaker *resilience.Breaker
	clock   clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	gateway HotelGateway,
	retryer *resilience.Retryer,
	breaker *resilience.Breaker,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		retryer: retryer,
		breaker: breaker,
		clock:   clock,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	now := u.clock.Now()

	stay, err := booking.NewStayRange(cmd.StartDate, cmd.EndDate, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	rm, err := u.resolveRoom(ctx, cmd)
	if err != nil {
		return nil, err
	}

	totalPrice, err := booking.TotalPrice(rm.PricePerNightCents, stay)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	b := booking.NewBooking(cmd.UserID, rm.ID, rm.HotelID, stay, totalPrice, now)
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	if err := u.confirmGuarded(ctx, b); err != nil {
		return nil, u.compensate(ctx, b, err)
	}

	finalizedAt := u.clock.Now()
	if err := b.Confirm(finalizedAt); err != nil {
		return nil, err
	}
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().UpdateStatus(ctx, b.ID(), booking.StatusConfirmed, finalizedAt)
	})
	if err != nil {
		return nil, err
	}

	// Replaying the confirm with the same request id promotes the hold
	// from PENDING to CONFIRMED, so future conflict checks see it.
	// Best-effort: the booking stays CONFIRMED either way.
	if err := u.gateway.ConfirmAvailability(ctx, b.RoomID(), confirmRequest(b)); err != nil {
		slog.Warn("hold promotion failed after booking confirmed",
			"booking_id", b.ID(), "request_id", b.RequestID(), "error", err.Error())
	}

	if err := u.gateway.IncrementTimesBooked(ctx, b.RoomID()); err != nil {
		slog.Warn("times_booked increment failed after booking confirmed",
			"booking_id", b.ID(), "room_id", b.RoomID(), "error", err.Error())
	}

	return b, nil
}

func (u *bookingUseCaseImpl) resolveRoom(ctx context.Context, cmd CreateBookingCommand) (*room.Room, error) {
	if cmd.RoomID != nil {
		rm, err := u.gateway.RoomByID(ctx, *cmd.RoomID)
		if err != nil {
			if errors.Is(err, ErrGatewayNotFound) {
				return nil, errs.Mark(err, ErrRoomNotFound)
			}
			return nil, errs.Mark(err, ErrUpstreamUnavailable)
		}
		return rm, nil
	}
	if !cmd.AutoSelect {
		return nil, errs.Mark(errs.New("room id required when auto select is off"), ErrInvalidRequest)
	}

	candidates, err := u.gateway.RecommendedRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}
	selected, err := room.SelectLeastBooked(candidates)
	if err != nil {
		return nil, errs.Mark(err, ErrNoAvailableRoom)
	}
	return &selected, nil
}

// confirmGuarded drives the upstream confirm through the circuit
// breaker and the retry policy. Only upstream-unavailable failures are
// retried; a conflict or an open circuit fails at once.
func (u *bookingUseCaseImpl) confirmGuarded(ctx context.Context, b *booking.Booking) error {
	return u.retryer.Do(ctx, func(ctx context.Context) error {
		if err := u.breaker.Allow(); err != nil {
			return err
		}
		err := u.gateway.ConfirmAvailability(ctx, b.RoomID(), confirmRequest(b))
		if errors.Is(err, ErrGatewayUnavailable) {
			u.breaker.Record(err)
		} else {
			u.breaker.Record(nil)
		}
		return err
	}, func(err error) bool {
		return errors.Is(err, ErrGatewayUnavailable) && !errors.Is(err, resilience.ErrCircuitOpen)
	})
}

// compensate marks the booking CANCELLED and maps the saga failure to
// a caller-facing kind, keeping conflicts distinguishable from outages.
func (u *bookingUseCaseImpl) compensate(ctx context.Context, b *booking.Booking, cause error) error {
	cancelledAt := u.clock.Now()
	b.Cancel(cancelledAt)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().UpdateStatus(ctx, b.ID(), booking.StatusCancelled, cancelledAt)
	})
	if err != nil {
		slog.Error("compensation failed, booking left pending",
			"booking_id", b.ID(), "error", err.Error())
	}

	switch {
	case errors.Is(cause, ErrGatewayConflict):
		return errs.Mark(cause, ErrDateRangeConflict)
	case errors.Is(cause, resilience.ErrCircuitOpen),
		errors.Is(cause, resilience.ErrRetriesExhausted),
		errors.Is(cause, ErrGatewayUnavailable):
		return errs.Mark(cause, ErrUpstreamUnavailable)
	default:
		return cause
	}
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	var (
		releaseRoomID    uuid.UUID
		releaseRequestID uuid.UUID
		needsRelease     bool
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}
		if !b.IsOwnedBy(userID) {
			return errs.Mark(errs.New("booking owned by another user"), ErrAccessDenied)
		}

		wasConfirmed := b.Status() == booking.StatusConfirmed
		cancelledAt := u.clock.Now()
		if !b.Cancel(cancelledAt) {
			// Already cancelled.
			return nil
		}
		if err := tx.Bookings().UpdateStatus(ctx, b.ID(), booking.StatusCancelled, cancelledAt); err != nil {
			return err
		}

		if wasConfirmed {
			needsRelease = true
			releaseRoomID = b.RoomID()
			releaseRequestID = b.RequestID()
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Best-effort release of the upstream hold. A failure leaves an
	// orphaned block but never blocks the local cancellation.
	if needsRelease {
		if err := u.gateway.ReleaseRoom(ctx, releaseRoomID, releaseRequestID); err != nil {
			slog.Warn("room release failed after cancellation",
				"booking_id", bookingID, "request_id", releaseRequestID, "error", err.Error())
		}
	}
	return nil
}

func confirmRequest(b *booking.Booking) ConfirmAvailabilityRequest {
	return ConfirmAvailabilityRequest{
		StartDate: b.Stay().Start(),
		EndDate:   b.Stay().End(),
		BookingID: b.ID(),
		RequestID: b.RequestID(),
	}
}
