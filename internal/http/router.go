package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "motortransport/internal/config"
	h "motortransport/internal/http/handlers"
	"motortransport/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		trips := api.Group("/trips", middleware.Auth(h.JWTSecret()))
		trips.GET("", h.GetTrips)
		trips.GET("/rows", h.GetSessionRows)
		trips.GET("/report", h.GetTripsReportPDF)

		// clients are read-only; everything below mutates
		staff := trips.Group("", middleware.RequireStaff())
		staff.POST("", h.AddTrip)
		staff.DELETE("/:id", h.DeleteTrip)
		staff.POST("/edit", h.BeginEdit)
		staff.PUT("/rows/:id", h.UpdateSessionRow)
		staff.POST("/save", h.SaveEdit)
		staff.POST("/cancel", h.CancelEdit)
	}

	return r
}
