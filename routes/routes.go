package routes

import (
	"net/http"
	"time"

	"github.com/HarshCode115/AapdaRakshak/config"
	"github.com/HarshCode115/AapdaRakshak/controllers"
	"github.com/HarshCode115/AapdaRakshak/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	AdminAlerts   *controllers.AdminAlertController
	UserAlerts    *controllers.UserAlertController
	Notifications *controllers.NotificationController
	Volunteers    *controllers.VolunteerController
	Payments      *controllers.PaymentController
	Disasters     *controllers.DisasterController
	Weather       *controllers.WeatherController
	News          *controllers.NewsController
	Realtime      *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		database := "Disconnected"
		if config.IsConnected() {
			database = "Connected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"database":  database,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Admin review surface
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireDB())
	{
		admin.POST("/createadminalert", ctrl.AdminAlerts.Create)
		admin.POST("/getalerts", ctrl.AdminAlerts.List)
		admin.POST("/updatealert", ctrl.AdminAlerts.Update)
		admin.POST("/deletealert", ctrl.AdminAlerts.Delete)
		admin.POST("/approvealert", ctrl.AdminAlerts.Approve)
		admin.POST("/getvolunteers", ctrl.Volunteers.List)
	}

	// Public user routes
	user := r.Group("/user")
	{
		user.POST("/register", middlewares.RequireDB(), controllers.Register)
		user.POST("/login", middlewares.RequireDB(), controllers.Login)
		user.GET("/getfunds", middlewares.RequireDB(), ctrl.Payments.ListFunds)
	}

	// Authenticated user routes
	authed := r.Group("/user")
	authed.Use(middlewares.AuthMiddleware(), middlewares.RequireDB())
	{
		authed.POST("/createalert", ctrl.UserAlerts.Create)
		authed.POST("/volunteer", ctrl.Volunteers.Apply)
		authed.POST("/verifypayment", ctrl.Payments.Verify)
		authed.GET("/ws", ctrl.Realtime.NotificationsWS)
	}

	// Read APIs consumed by the dashboard
	api := r.Group("/api")
	{
		api.GET("/notifications/:id", middlewares.RequireDB(), ctrl.Notifications.List)
		api.PATCH("/notifications/:id/read", middlewares.RequireDB(), ctrl.Notifications.MarkRead)
		api.PATCH("/notifications/:id/read-all", middlewares.RequireDB(), ctrl.Notifications.MarkAllRead)

		api.GET("/disasters", ctrl.Disasters.List)
		api.GET("/disasters/earthquakes", ctrl.Disasters.RecentEarthquakes)
		api.GET("/disasters/type/:type", ctrl.Disasters.ByType)
		api.GET("/disasters/:id", ctrl.Disasters.Get)

		api.GET("/weather", ctrl.Weather.List)
		api.GET("/weather/:city", ctrl.Weather.Get)

		api.GET("/news", ctrl.News.List)
		api.GET("/news/alerts/active", ctrl.News.ActiveAlerts)
		api.GET("/news/:id", ctrl.News.Get)
	}

	return r
}
