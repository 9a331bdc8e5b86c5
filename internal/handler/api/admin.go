package api

import (
	"errors"
	"net/http"

	reqdto "hotelbooking/internal/handler/dto/request"
	resdto "hotelbooking/internal/handler/dto/response"
	"hotelbooking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
}

func NewAdminHandler(adminCommands commands.AdminCommands) *AdminHandler {
	return &AdminHandler{adminCommands: adminCommands}
}

// @Summary Create hotel
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/hotels [post]
func (h *AdminHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	hotel, err := h.adminCommands.CreateHotel(c.Request.Context(), commands.CreateHotelCommand{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid hotel attributes",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotel(hotel))
}

// @Summary Update hotel
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Hotel"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/hotels/{id} [put]
func (h *AdminHandler) UpdateHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	var req reqdto.UpdateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.adminCommands.UpdateHotel(c.Request.Context(), commands.UpdateHotelCommand{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid hotel attributes",
			})
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// @Summary Create room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/rooms [post]
func (h *AdminHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.adminCommands.CreateRoom(c.Request.Context(), commands.CreateRoomCommand{
		HotelID:            req.HotelID,
		Number:             req.Number,
		Available:          req.Available,
		RoomType:           req.RoomType,
		PricePerNightCents: req.PricePerNightCents,
		Capacity:           req.Capacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room attributes",
			})
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, commands.ErrDuplicateRoom):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room number already taken",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(rm))
}

// @Summary Update room
// @Description Update a room; a stale version is rejected with 409
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/rooms/{id} [put]
func (h *AdminHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.adminCommands.UpdateRoom(c.Request.Context(), commands.UpdateRoomCommand{
		ID:                 id,
		Number:             req.Number,
		Available:          req.Available,
		RoomType:           req.RoomType,
		PricePerNightCents: req.PricePerNightCents,
		Capacity:           req.Capacity,
		Version:            req.Version,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room was modified concurrently, reload and retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// @Summary Delete room
// @Description Delete a room together with its blocks
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [delete]
func (h *AdminHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.adminCommands.DeleteRoom(c.Request.Context(), id); err != nil {
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

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
