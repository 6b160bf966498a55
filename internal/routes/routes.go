package routes

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"starwars-api/internal/apperror"
	"starwars-api/internal/cache"
	"starwars-api/internal/config"
	"starwars-api/internal/controllers"
	"starwars-api/internal/middleware"
	"starwars-api/internal/models"
	"starwars-api/internal/repository"
	"starwars-api/internal/service"
)

// Dependencies are the shared resources the router is built from.
// Cache and RateLimiter are optional.
type Dependencies struct {
	DB          *gorm.DB
	Cache       cache.Cache
	Config      *config.Config
	Log         *logrus.Logger
	RateLimiter *middleware.RateLimiter
}

// SetupRouter wires repositories, services and controllers and registers
// every catalog endpoint
func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	// Initialize repositories
	userRepo := repository.NewUserRepository(deps.DB)
	planetRepo := repository.NewPlanetRepository(deps.DB)
	characterRepo := repository.NewCharacterRepository(deps.DB)
	favoriteRepo := repository.NewFavoriteRepository(deps.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, deps.Cache, cfg.CacheTTL)
	planetService := service.NewPlanetService(planetRepo, deps.Cache, cfg.CacheTTL)
	characterService := service.NewCharacterService(characterRepo, deps.Cache, cfg.CacheTTL)
	favoriteService := service.NewFavoriteService(favoriteRepo, userRepo, planetRepo, characterRepo)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	planetController := controllers.NewPlanetController(planetService)
	characterController := controllers.NewCharacterController(characterService)
	favoriteController := controllers.NewFavoriteController(favoriteService)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		deps.Log.WithError(err).Warn("Invalid TRUSTED_PROXIES, trusting no proxy")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Log))
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	r.Use(apperror.Handler(deps.Log))

	r.GET("/", sitemap(r))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.LimitMiddleware())
	}
	{
		api.GET("/users", userController.ListUsers)
		api.POST("/users", userController.CreateUser)
		api.GET("/users/favorites", favoriteController.ListFavorites)
		api.GET("/users/:id", userController.GetUser)
		api.GET("/users/:id/favorites", favoriteController.ListUserFavorites)

		api.GET("/planets", planetController.ListPlanets)
		api.GET("/planets/:id", planetController.GetPlanet)
		api.POST("/planet", planetController.CreatePlanet)
		api.DELETE("/planet/:id", planetController.DeletePlanet)

		api.GET("/people", characterController.ListCharacters)
		api.GET("/people/:id", characterController.GetCharacter)
		api.POST("/people", characterController.CreateCharacter)
		api.DELETE("/people/:id", characterController.DeleteCharacter)

		api.POST("/favorite/planet/:planet_id", favoriteController.AddFavoritePlanet)
		api.DELETE("/favorite/planet/:planet_id", favoriteController.RemoveFavoritePlanet)
		api.POST("/favorite/character/:character_id", favoriteController.AddFavoriteCharacter)
		api.DELETE("/favorite/character/:character_id", favoriteController.RemoveFavoriteCharacter)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

// sitemap lists the engine's routes, sorted by path then method
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		endpoints := make([]models.Endpoint, 0, len(routes))
		for _, route := range routes {
			endpoints = append(endpoints, models.Endpoint{Method: route.Method, Path: route.Path})
		}
		sort.Slice(endpoints, func(i, j int) bool {
			if endpoints[i].Path != endpoints[j].Path {
				return endpoints[i].Path < endpoints[j].Path
			}
			return endpoints[i].Method < endpoints[j].Method
		})

		c.JSON(http.StatusOK, models.SitemapResponse{Endpoints: endpoints})
	}
}
