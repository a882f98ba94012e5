package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/config"
	infraRepo "github.com/RITWIKRUDRA01/calendar-booking-system/internal/infra/repository"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/logger"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/middleware"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/routes"
)

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.AppEnv); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	store := infraRepo.NewMemoryStore()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, log, store)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
