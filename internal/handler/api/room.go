package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hotelbooking/internal/handler/dto/request"
	resdto "hotelbooking/internal/handler/dto/response"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/usecase/commands"
	"hotelbooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

type RoomHandler struct {
	inventoryCommands commands.InventoryCommands
	roomQueries       queries.RoomQueries
}

func NewRoomHandler(inventoryCommands commands.InventoryCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		inventoryCommands: inventoryCommands,
		roomQueries:       roomQueries,
	}
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Recommended rooms
// @Description List bookable rooms for today, least-booked first
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/recommend [get]
func (h *RoomHandler) RecommendRooms(c *gin.Context) {
	views, err := h.roomQueries.ListRecommended(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List rooms
// @Description List all rooms open for booking
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomQueries.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Popular rooms
// @Description List rooms by booking count, most booked first
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rooms to return" default(10)
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/popular [get]
func (h *RoomHandler) PopularRooms(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	views, err := h.roomQueries.ListPopular(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Confirm availability
// @Description Place or idempotently replay a hold on a room for a date range
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.ConfirmAvailabilityRequest true "Hold request"
// @Success 200 {object} resdto.ConfirmAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id}/confirm-availability [post]
func (h *RoomHandler) ConfirmAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.ConfirmAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	start, end, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	result, err := h.inventoryCommands.ConfirmAvailability(
		c.Request.Context(), roomID, start, end, req.BookingID, req.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Room is not available for booking",
			})
		case errors.Is(err, commands.ErrDateRangeConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Date range conflicts with an existing hold",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

// @Summary Release room
// @Description Release a hold; releasing an unknown request id succeeds
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.ReleaseRoomRequest true "Release request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /rooms/{id}/release [post]
func (h *RoomHandler) ReleaseRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.ReleaseRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.inventoryCommands.ReleaseRoom(c.Request.Context(), roomID, req.RequestID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "released"})
}

// @Summary Increment booking counter
// @Description Bump the room's popularity counter
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/increment-booking [post]
func (h *RoomHandler) IncrementBooking(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.inventoryCommands.IncrementTimesBooked(c.Request.Context(), roomID); err != nil {
		if errors.Is(err, commands.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "incremented"})
}
