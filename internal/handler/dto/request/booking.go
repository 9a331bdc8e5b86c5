package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest carries dates as calendar days; time-of-day is
// never part of a stay.
type CreateBookingRequest struct {
	RoomID     *uuid.UUID `json:"room_id,omitempty"`
	AutoSelect bool       `json:"auto_select"`
	StartDate  string     `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string     `json:"end_date" binding:"required,datetime=2006-01-02"`
}

func (r CreateBookingRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
