package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itsyourradio/radio-api/internal/api/handler"
	"github.com/itsyourradio/radio-api/internal/api/middleware"
	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/service"
	"github.com/itsyourradio/radio-api/internal/infrastructure/config"
	mongodb "github.com/itsyourradio/radio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/itsyourradio/radio-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("iyr"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	albumRepo := mongodb.NewAlbumRepository(db)
	songRepo := mongodb.NewSongRepository(db)
	showRepo := mongodb.NewShowRepository(db)
	episodeRepo := mongodb.NewEpisodeRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	feedCache := redisdb.NewFeedCache(rdb, cfg.Redis.FeedTTL)

	hasher := service.NewPasswordHasher(cfg.BcryptCost, cfg.MaxConcurrentHashes)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, log)
	musicService := service.NewMusicService(albumRepo, songRepo, log)
	podcastService := service.NewPodcastService(showRepo, episodeRepo, feedCache, log)
	blogService := service.NewBlogService(blogRepo, log)
	feedService := service.NewFeedService(showRepo, episodeRepo, feedCache, cfg.BaseURL, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	musicHandler := handler.NewMusicHandler(musicService)
	podcastHandler := handler.NewPodcastHandler(podcastService, feedService)
	blogHandler := handler.NewBlogHandler(blogService)

	authn := middleware.Authenticate(tokens, log)
	staffOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleStaff)
	artists := middleware.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RoleArtist)
	podcasters := middleware.RequireRoles(domain.RoleAdmin, domain.RoleStaff, domain.RolePodcaster)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	apiGroup := e.Group("/api")

	// --- Auth ---
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Users ---
	users := apiGroup.Group("/users", authn)
	users.GET("/me", userHandler.Me)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Music ---
	apiGroup.GET("/albums", musicHandler.ListAlbums)
	apiGroup.GET("/albums/:id", musicHandler.GetAlbum)
	apiGroup.GET("/albums/:id/songs", musicHandler.ListAlbumSongs)
	apiGroup.POST("/albums", musicHandler.CreateAlbum, authn, artists)
	apiGroup.DELETE("/albums/:id", musicHandler.DeleteAlbum, authn, artists)
	apiGroup.POST("/songs", musicHandler.CreateSong, authn, artists)
	apiGroup.DELETE("/songs/:id", musicHandler.DeleteSong, authn, artists)

	// --- Podcasts ---
	apiGroup.GET("/shows", podcastHandler.ListShows)
	apiGroup.GET("/shows/:id", podcastHandler.GetShow)
	apiGroup.GET("/shows/:id/episodes", podcastHandler.ListEpisodes)
	apiGroup.GET("/shows/:id/rss", podcastHandler.Feed)
	apiGroup.POST("/shows", podcastHandler.CreateShow, authn, podcasters)
	apiGroup.DELETE("/shows/:id", podcastHandler.DeleteShow, authn, podcasters)
	apiGroup.POST("/shows/:id/episodes", podcastHandler.CreateEpisode, authn, podcasters)
	apiGroup.DELETE("/shows/:id/episodes/:episode_id", podcastHandler.DeleteEpisode, authn, podcasters)

	// --- Blog ---
	apiGroup.GET("/blog", blogHandler.List)
	apiGroup.GET("/blog/:id", blogHandler.Get)
	apiGroup.POST("/blog", blogHandler.Create, authn, staffOnly)
	apiGroup.PUT("/blog/:id", blogHandler.Update, authn, staffOnly)
	apiGroup.DELETE("/blog/:id", blogHandler.Delete, authn, staffOnly)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
