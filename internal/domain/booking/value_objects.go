package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrStartInPast   = errors.New("start date cannot be in the past")
	ErrStartAfterEnd = errors.New("start date must not be after end date")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// StayRange is an inclusive check-in/check-out date pair. Dates are
// normalized to midnight UTC; the time component is ignored.
type StayRange struct {
	start time.Time
	end   time.Time
}

func NewStayRange(start, end, now time.Time) (StayRange, error) {
	start = TruncateToDate(start)
	end = TruncateToDate(end)

	if start.Before(TruncateToDate(now)) {
		return StayRange{}, ErrStartInPast
	}
	if start.After(end) {
		return StayRange{}, ErrStartAfterEnd
	}

	return StayRange{start: start, end: end}, nil
}

// ReconstructStayRange rebuilds a range from storage without the
// not-in-the-past check, which only applies at creation time.
func ReconstructStayRange(start, end time.Time) StayRange {
	return StayRange{start: TruncateToDate(start), end: TruncateToDate(end)}
}

func (s StayRange) Start() time.Time { return s.start }
func (s StayRange) End() time.Time   { return s.end }

// Nights is the number of nights between check-in and check-out. A
// same-day range yields zero nights (and a zero total price); the
// original product behavior permits this, so it is not rejected here.
func (s StayRange) Nights() int {
	return int(s.end.Sub(s.start).Hours() / 24)
}

func (s StayRange) String() string {
	return fmt.Sprintf("%s/%s", s.start.Format(time.DateOnly), s.end.Format(time.DateOnly))
}

func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// TotalPrice computes pricePerNight * nights.
func TotalPrice(pricePerNightCents int64, stay StayRange) (Money, error) {
	return NewMoney(pricePerNightCents * int64(stay.Nights()))
}
