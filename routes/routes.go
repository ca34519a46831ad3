package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-gateway/controllers"
	"hotel-gateway/middleware"
	"hotel-gateway/services"
)

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Home         *controllers.HomeController
	Booking      *controllers.BookingController
	Gallery      *controllers.GalleryController
	Rooms        *controllers.RoomController
	Reservations *controllers.ReservationController
	Events       *controllers.EventController
	Users        *controllers.UserController
	Stats        *controllers.StatsController
}

func SetupRouter(ctrl Controllers, tokens *services.TokenService, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/login", ctrl.Auth.Login)
		api.GET("/home", ctrl.Home.GetHome)
		api.GET("/habitaciones", ctrl.Rooms.GetRoomViews)

		galleries := api.Group("/gallery")
		{
			galleries.GET("/pool", ctrl.Gallery.GetPool)
			galleries.GET("/food", ctrl.Gallery.GetFood)
		}

		booking := api.Group("/booking")
		{
			booking.POST("/search", ctrl.Booking.StartSearch)
			booking.GET("/:token", ctrl.Booking.GetSession)
			booking.POST("/:token/select", ctrl.Booking.SelectRoom)
			booking.POST("/:token/checkout", ctrl.Booking.Checkout)
			booking.DELETE("/:token", ctrl.Booking.Close)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.Auth(tokens), middleware.RequireAdmin())
		{
			rooms := admin.Group("/habitaciones")
			{
				rooms.GET("", ctrl.Rooms.GetRooms)
				rooms.POST("", ctrl.Rooms.CreateRoom)
				rooms.PUT("/:id", ctrl.Rooms.UpdateRoom)
				rooms.DELETE("/:id", ctrl.Rooms.DeleteRoom)
				rooms.POST("/:id/images", ctrl.Rooms.UploadImages)
				rooms.DELETE("/:id/images/:filename", ctrl.Rooms.DeleteImage)
			}

			reservations := admin.Group("/reservas")
			{
				reservations.GET("", ctrl.Reservations.GetReservations)
				reservations.GET("/opciones", ctrl.Reservations.GetModalOptions)
				reservations.POST("", ctrl.Reservations.CreateReservation)
				reservations.PUT("/:id", ctrl.Reservations.UpdateReservation)
				reservations.PUT("/:id/estado", ctrl.Reservations.UpdateStatus)
				reservations.DELETE("/:id", ctrl.Reservations.DeleteReservation)
				reservations.GET("/:id/contrato", ctrl.Reservations.DownloadContract)
			}

			events := admin.Group("/eventos")
			{
				events.GET("", ctrl.Events.GetEvents)
				events.POST("", ctrl.Events.CreateEvent)
				events.PUT("/:id", ctrl.Events.UpdateEvent)
				events.DELETE("/:id", ctrl.Events.DeleteEvent)
				events.GET("/:id/contrato", ctrl.Events.DownloadContract)
			}

			admin.GET("/usuarios", ctrl.Users.GetUsers)
			admin.GET("/stats", ctrl.Stats.GetStats)
		}
	}

	return r
}
