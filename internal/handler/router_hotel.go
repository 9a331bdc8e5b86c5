package handler

import (
	"net/http"

	"hotelbooking/internal/domain/user"
	"hotelbooking/internal/handler/api"
	"hotelbooking/internal/handler/middleware"
	"hotelbooking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewHotelRouter wires the inventory service: hotel and room reads for
// any authenticated caller, hold mutations for service and operator
// principals, admin CRUD behind the role hierarchy.
func NewHotelRouter(
	engine *gin.Engine,
	cfg config.HotelConfig,
	hotelHandler *api.HotelHandler,
	roomHandler *api.RoomHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg.CORS, cfg.Log)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	holdRoles := authMiddleware.RequireAnyRole(user.RoleService, user.RoleOperator, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		hotels := apiGroup.Group("/hotels")
		hotels.Use(authMiddleware.RequireAuth())
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:id", Handler: hotelHandler.GetHotel},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/recommend", Handler: roomHandler.RecommendRooms},
				{Method: http.MethodGet, Path: "/popular", Handler: roomHandler.PopularRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodPost, Path: "/:id/confirm-availability", Handler: roomHandler.ConfirmAvailability, Mw: []gin.HandlerFunc{holdRoles}},
				{Method: http.MethodPost, Path: "/:id/release", Handler: roomHandler.ReleaseRoom, Mw: []gin.HandlerFunc{holdRoles}},
				{Method: http.MethodPost, Path: "/:id/increment-booking", Handler: roomHandler.IncrementBooking, Mw: []gin.HandlerFunc{holdRoles}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/hotels", Handler: adminHandler.CreateHotel},
				{Method: http.MethodPut, Path: "/hotels/:id", Handler: adminHandler.UpdateHotel},
				{Method: http.MethodPost, Path: "/rooms", Handler: adminHandler.CreateRoom},
				{Method: http.MethodPut, Path: "/rooms/:id", Handler: adminHandler.UpdateRoom},
				{Method: http.MethodDelete, Path: "/rooms/:id", Handler: adminHandler.DeleteRoom},
			})
		}
	}
}
