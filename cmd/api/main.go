package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/h3nr7M3d/Praxia-sub000/internal/cache"
	"github.com/h3nr7M3d/Praxia-sub000/internal/config"
	dbpkg "github.com/h3nr7M3d/Praxia-sub000/internal/db"
	"github.com/h3nr7M3d/Praxia-sub000/internal/lock"
	"github.com/h3nr7M3d/Praxia-sub000/internal/middleware"
	"github.com/h3nr7M3d/Praxia-sub000/internal/routes"
	"github.com/h3nr7M3d/Praxia-sub000/internal/timezone"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	timezone.SetDefault(cfg.DefaultTimezone)

	db := dbpkg.NewDB(cfg)

	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect redis")
	}

	locker := lock.NewRedisLocker(redisClient)
	availCache := cache.NewAvailabilityCache(redisClient, cfg.AvailabilityCacheTTL, log.Logger)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker, availCache)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
