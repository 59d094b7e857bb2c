package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/heartman0001/ForeCase/internal/config"
	"github.com/heartman0001/ForeCase/internal/db"
	"github.com/heartman0001/ForeCase/internal/logger"
	"github.com/heartman0001/ForeCase/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db error")
	}
	log.Info().Str("env", cfg.AppEnv).Msg("database connected")

	if cfg.AppEnv != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, database, cfg)

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
