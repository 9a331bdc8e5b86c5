//go:build unit

package hotelapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelbooking/internal/infra/hotelapi"
	"hotelbooking/internal/pkg/config"
	"hotelbooking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *hotelapi.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return hotelapi.NewClient(config.HotelClientConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, "service-token")
}

func TestRoomByID(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("decodes the room payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/rooms/"+roomID.String(), r.URL.Path)
			assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":                    roomID,
				"hotel_id":              uuid.New(),
				"number":                "305",
				"available":             true,
				"times_booked":          7,
				"room_type":             "suite",
				"price_per_night_cents": 25000,
				"capacity":              4,
			})
		})

		rm, err := client.RoomByID(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, roomID, rm.ID)
		assert.Equal(t, "305", rm.Number)
		assert.Equal(t, 7, rm.TimesBooked)
		assert.Equal(t, int64(25000), rm.PricePerNightCents)
	})

	t.Run("404 maps to gateway not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"Room not found"}`, http.StatusNotFound)
		})

		_, err := client.RoomByID(ctx, roomID)
		assert.ErrorIs(t, err, commands.ErrGatewayNotFound)
	})

	t.Run("500 maps to gateway unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := client.RoomByID(ctx, roomID)
		assert.ErrorIs(t, err, commands.ErrGatewayUnavailable)
	})

	t.Run("unreachable server maps to gateway unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client := hotelapi.NewClient(config.HotelClientConfig{
			BaseURL: srv.URL,
			Timeout: time.Second,
		}, "service-token")

		_, err := client.RoomByID(ctx, roomID)
		assert.ErrorIs(t, err, commands.ErrGatewayUnavailable)
	})
}

func TestRecommendedRooms(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/recommend", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": uuid.New(), "number": "101", "times_booked": 1},
			{"id": uuid.New(), "number": "102", "times_booked": 4},
		})
	})

	rooms, err := client.RecommendedRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, 4, rooms[1].TimesBooked)
}

func TestConfirmAvailability(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	req := commands.ConfirmAvailabilityRequest{
		StartDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		BookingID: uuid.New(),
		RequestID: uuid.New(),
	}

	t.Run("sends dates as plain days", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/rooms/"+roomID.String()+"/confirm-availability", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "2026-06-10", body["start_date"])
			assert.Equal(t, "2026-06-15", body["end_date"])
			assert.Equal(t, req.RequestID.String(), body["request_id"])

			w.WriteHeader(http.StatusOK)
		})

		assert.NoError(t, client.ConfirmAvailability(ctx, roomID, req))
	})

	t.Run("409 maps to gateway conflict", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"conflict"}`, http.StatusConflict)
		})

		err := client.ConfirmAvailability(ctx, roomID, req)
		assert.ErrorIs(t, err, commands.ErrGatewayConflict)
	})

	t.Run("422 is neither conflict nor outage", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"room closed"}`, http.StatusUnprocessableEntity)
		})

		err := client.ConfirmAvailability(ctx, roomID, req)
		require.Error(t, err)
		assert.NotErrorIs(t, err, commands.ErrGatewayConflict)
		assert.NotErrorIs(t, err, commands.ErrGatewayUnavailable)
	})
}

func TestReleaseRoom(t *testing.T) {
	roomID, requestID := uuid.New(), uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/"+roomID.String()+"/release", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, requestID.String(), body["request_id"])

		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.ReleaseRoom(context.Background(), roomID, requestID))
}

func TestIncrementTimesBooked(t *testing.T) {
	roomID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/rooms/"+roomID.String()+"/increment-booking", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.IncrementTimesBooked(context.Background(), roomID))
}
