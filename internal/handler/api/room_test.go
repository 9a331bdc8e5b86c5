//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelbooking/internal/handler/api"
	resdto "hotelbooking/internal/handler/dto/response"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/usecase/commands"
	"hotelbooking/internal/usecase/queries"
	"hotelbooking/tests/common/httptest"
	commandsmock "hotelbooking/tests/mock/commands"
	queriesmock "hotelbooking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/api/rooms")
	group.GET("", s.handler.ListRooms)
	group.GET("/recommend", s.handler.RecommendRooms)
	group.GET("/popular", s.handler.PopularRooms)
	group.GET("/:id", s.handler.GetRoom)
	group.POST("/:id/confirm-availability", s.handler.ConfirmAvailability)
	group.POST("/:id/release", s.handler.ReleaseRoom)
	group.POST("/:id/increment-booking", s.handler.IncrementBooking)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestGetRoom() {
	roomID := uuid.New()
	url := "/api/rooms/" + roomID.String()

	s.Run("success: returns the room view", func() {
		view := &queries.RoomView{ID: roomID, Number: "204", Available: true, TimesBooked: 3}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(roomID, response.ID)
		s.Equal("204", response.Number)
		s.Equal(int64(3), response.TimesBooked)
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/banana", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestRecommendRooms() {
	s.Run("success: returns recommended rooms", func() {
		views := []*queries.RoomView{
			{ID: uuid.New(), TimesBooked: 0},
			{ID: uuid.New(), TimesBooked: 2},
		}
		s.mockQueries.EXPECT().ListRecommended(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/recommend", nil, "")

		var response []*resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *RoomHandlerTestSuite) TestPopularRooms() {
	url := "/api/rooms/popular"

	s.Run("success: default limit", func() {
		s.mockQueries.EXPECT().ListPopular(gomock.Any(), 10).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: explicit limit", func() {
		s.mockQueries.EXPECT().ListPopular(gomock.Any(), 3).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=3", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a bad limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=zero", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestConfirmAvailability() {
	roomID := uuid.New()
	url := "/api/rooms/" + roomID.String() + "/confirm-availability"
	reqBody := map[string]any{
		"start_date": "2026-06-10",
		"end_date":   "2026-06-15",
		"booking_id": uuid.New(),
		"request_id": uuid.New(),
	}

	s.Run("success: returns the hold", func() {
		blockID := uuid.New()
		s.mockCommands.EXPECT().
			ConfirmAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.ConfirmResult{BlockID: blockID, Status: "PENDING", Replayed: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ConfirmAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(blockID, response.BlockID)
		s.Equal("PENDING", response.Status)
		s.False(response.Replayed)
	})

	s.Run("error: maps hold failures to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"invalid range", commands.ErrInvalidRequest, http.StatusBadRequest},
			{"room unavailable", commands.ErrRoomUnavailable, http.StatusUnprocessableEntity},
			{"date conflict", commands.ErrDateRangeConflict, http.StatusConflict},
			{"unexpected failure", errors.New("database error"), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					ConfirmAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 on missing request id", func() {
		body := map[string]any{
			"start_date": "2026-06-10",
			"end_date":   "2026-06-15",
			"booking_id": uuid.New(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestReleaseRoom() {
	roomID := uuid.New()
	url := "/api/rooms/" + roomID.String() + "/release"

	s.Run("success: 200 with released status", func() {
		requestID := uuid.New()
		s.mockCommands.EXPECT().ReleaseRoom(gomock.Any(), roomID, requestID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"request_id": requestID}, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("released", response["status"])
	})

	s.Run("error: 400 on missing request id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestIncrementBooking() {
	roomID := uuid.New()
	url := "/api/rooms/" + roomID.String() + "/increment-booking"

	s.Run("success: 200 with incremented status", func() {
		s.mockCommands.EXPECT().IncrementTimesBooked(gomock.Any(), roomID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("incremented", response["status"])
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockCommands.EXPECT().IncrementTimesBooked(gomock.Any(), roomID).
			Return(commands.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
