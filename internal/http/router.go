package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelgo/internal/config"
	h "travelgo/internal/http/handlers"
	"travelgo/internal/http/middleware"
	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)
	h.SetMailer(services.MailService{APIKey: env.MailAPIKey, From: env.MailFrom})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)
	requireAuth := middleware.RequireAuth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", authLimiter.Limit(), h.Login)
		auth.POST("/register", authLimiter.Limit(), h.Register)

		// Catalog (public)
		servicesGroup := api.Group("/services")
		servicesGroup.GET("", h.GetServices)
		servicesGroup.GET("/:id", h.GetServiceByID)

		cities := api.Group("/cities")
		cities.GET("/suggest", h.SuggestCities)

		// Static showcase data
		mock := api.Group("/mock")
		mock.GET("/destinations", h.GetMockDestinations)
		mock.GET("/hotels", h.GetMockHotels)
		mock.GET("/buses", h.GetMockBuses)

		// Bookings (authenticated)
		bookings := api.Group("/bookings", requireAuth)
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookings)
		bookings.DELETE("/:id", h.CancelBooking)
		bookings.GET("/:id/e-ticket", h.GetBookingETicketPDF)

		// Profile
		api.GET("/profile", requireAuth, h.Profile)
	}

	h.SetRouter(r)
	return r
}
