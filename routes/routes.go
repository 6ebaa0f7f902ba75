package routes

import (
	"net/http"
	"time"

	"github.com/Jprcko/canberra-boating-signoffs-sub000/config"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/handlers"
	"github.com/Jprcko/canberra-boating-signoffs-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCalendarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterCalendarRoutes registers the public calendar and pricing endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/calendar", hb.GetCalendarHandler)
		api.POST("/quote", hb.GetQuoteHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking funnel.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartSessionHandler)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSessionHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
		bookingGroup.POST("/confirm", hb.ConfirmSessionHandler)
		bookingGroup.GET("/:bookingID", hb.GetBookingHandler)
		bookingGroup.DELETE("/:bookingID", hb.CancelBookingHandler)
	}
}

// RegisterAdminRoutes registers the availability administration endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin/availability")
	{
		admin.PUT("", hb.UpsertAvailabilityHandler)
		admin.GET("", hb.ListAvailabilityHandler)
		admin.DELETE("/:date", hb.DeleteAvailabilityHandler)
	}
}
