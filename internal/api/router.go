package api

import (
	"io"

	"github.com/gin-gonic/gin"

	"travelguide/internal/api/controllers"
	"travelguide/pkg/middleware"
	"travelguide/pkg/utils"
)

type Handlers struct {
	Destinations *controllers.DestinationController
	Experiences  *controllers.ExperienceController
	Trips        *controllers.TripController
	Accounts     *controllers.AccountController
	System       *controllers.SystemController
}

type Options struct {
	FrontendURLs []string
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog io.Writer
	// Auth guards every route that needs a caller identity.
	Auth gin.HandlerFunc
}

func NewRouter(opts Options, h Handlers) *gin.Engine {
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	if opts.AccessLog != nil {
		r.Use(middleware.AccessLogMiddleware(opts.AccessLog))
	}
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(opts.FrontendURLs))

	RegisterRoutes(r, opts.Auth, h)
	return r
}

func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, h Handlers) {
	api := r.Group("/api")

	api.GET("/health", h.System.Health)
	api.POST("/seed", h.System.Seed)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Accounts.Register)
	authGroup.POST("/login", h.Accounts.Login)
	authGroup.POST("/logout", auth, h.Accounts.Logout)
	authGroup.GET("/me", auth, h.Accounts.Me)

	destinations := api.Group("/destinations")
	destinations.GET("", h.Destinations.ListDestinations)
	destinations.GET("/:id", h.Destinations.GetDestination)
	destinations.POST("", h.Destinations.CreateDestination)

	experiences := api.Group("/experiences")
	experiences.GET("", h.Experiences.ListExperiences)
	experiences.GET("/:id", h.Experiences.GetExperience)
	experiences.POST("", h.Experiences.CreateExperience)
	experiences.POST("/:id/reviews", auth, h.Experiences.AddReview)

	trips := api.Group("/trips", auth)
	trips.GET("", h.Trips.ListTrips)
	trips.POST("", h.Trips.CreateTrip)
	trips.GET("/:id", h.Trips.GetTrip)
	trips.PUT("/:id", h.Trips.UpdateTrip)
	trips.DELETE("/:id", h.Trips.DeleteTrip)
	trips.POST("/:id/destinations", h.Trips.AddDestination)
	trips.DELETE("/:id/destinations/:idx", h.Trips.RemoveDestination)
	trips.POST("/:id/destinations/:idx/experiences", h.Trips.AddExperience)
	trips.DELETE("/:id/destinations/:idx/experiences/:eidx", h.Trips.RemoveExperience)
	trips.DELETE("/:id/entries/:entryId", h.Trips.RemoveEntry)
	trips.POST("/:id/entries/:entryId/experiences", h.Trips.AddEntryExperience)
	trips.DELETE("/:id/entries/:entryId/experiences/:experienceId", h.Trips.RemoveEntryExperience)
}
