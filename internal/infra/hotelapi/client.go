// Package hotelapi is the HTTP client for the hotel inventory service.
package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/pkg/config"
	"hotelbooking/internal/pkg/errs"
	"hotelbooking/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient builds a client authenticated as a service principal. The
// token is minted once at startup and carried as a bearer credential.
func NewClient(cfg config.HotelClientConfig, token string) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		token:      token,
	}
}

var _ commands.HotelGateway = (*Client)(nil)

type roomPayload struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	Number             string    `json:"number"`
	Available          bool      `json:"available"`
	TimesBooked        int64     `json:"times_booked"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Capacity           int32     `json:"capacity"`
	Version            int64     `json:"version"`
	CreatedAt          time.Time `json:"created_at"`
}

type confirmPayload struct {
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	BookingID uuid.UUID `json:"booking_id"`
	RequestID uuid.UUID `json:"request_id"`
}

type releasePayload struct {
	RequestID uuid.UUID `json:"request_id"`
}

func (c *Client) RecommendedRooms(ctx context.Context) ([]room.Room, error) {
	var payload []roomPayload
	if err := c.do(ctx, http.MethodGet, "/api/rooms/recommend", nil, &payload); err != nil {
		return nil, err
	}

	rooms := make([]room.Room, len(payload))
	for i, p := range payload {
		rooms[i] = toRoom(p)
	}
	return rooms, nil
}

func (c *Client) RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var payload roomPayload
	if err := c.do(ctx, http.MethodGet, "/api/rooms/"+id.String(), nil, &payload); err != nil {
		return nil, err
	}
	rm := toRoom(payload)
	return &rm, nil
}

func (c *Client) ConfirmAvailability(ctx context.Context, roomID uuid.UUID, req commands.ConfirmAvailabilityRequest) error {
	body := confirmPayload{
		StartDate: req.StartDate.Format(dateLayout),
		EndDate:   req.EndDate.Format(dateLayout),
		BookingID: req.BookingID,
		RequestID: req.RequestID,
	}
	return c.do(ctx, http.MethodPost, "/api/rooms/"+roomID.String()+"/confirm-availability", body, nil)
}

func (c *Client) ReleaseRoom(ctx context.Context, roomID, requestID uuid.UUID) error {
	body := releasePayload{RequestID: requestID}
	return c.do(ctx, http.MethodPost, "/api/rooms/"+roomID.String()+"/release", body, nil)
}

func (c *Client) IncrementTimesBooked(ctx context.Context, roomID uuid.UUID) error {
	return c.do(ctx, http.MethodPost, "/api/rooms/"+roomID.String()+"/increment-booking", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and connection resets all read as a down upstream.
		return errs.Mark(err, commands.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if err := statusToError(resp); err != nil {
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}

func statusToError(resp *http.Response) error {
	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return errs.Mark(responseError(resp), commands.ErrGatewayConflict)
	case resp.StatusCode == http.StatusNotFound:
		return errs.Mark(responseError(resp), commands.ErrGatewayNotFound)
	case resp.StatusCode >= 500:
		return errs.Mark(responseError(resp), commands.ErrGatewayUnavailable)
	default:
		return responseError(resp)
	}
}

func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return errs.Newf("hotel service returned %d: %s", resp.StatusCode, string(bytes.TrimSpace(raw)))
}

func toRoom(p roomPayload) room.Room {
	return room.Room{
		ID:                 p.ID,
		HotelID:            p.HotelID,
		Number:             p.Number,
		Available:          p.Available,
		TimesBooked:        int(p.TimesBooked),
		RoomType:           p.RoomType,
		PricePerNightCents: p.PricePerNightCents,
		Capacity:           int(p.Capacity),
		Version:            p.Version,
		CreatedAt:          p.CreatedAt,
	}
}
