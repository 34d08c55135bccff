// File: gearbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gearbook/config"
	"gearbook/cron"
	"gearbook/database"
	appointmentRepo "gearbook/database/repository/appointment"
	blockRepo "gearbook/database/repository/block"
	"gearbook/handlers"
	"gearbook/middleware"
	"gearbook/routes"
	"gearbook/services/availability"
	"gearbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	loc := config.BusinessLocation()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	manualBlockRepo := blockRepo.NewMongoBlockRepo()
	appointmentRepo.EnsureIndexes()
	blockRepo.EnsureIndexes()

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		AppointmentRepo:  apptRepo,
		BlockRepo:        manualBlockRepo,
		Cache:            utils.GetCacheClient(),
		CacheTTL:         time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second,
		Location:         loc,
		RangeConcurrency: config.AppConfig.RangeConcurrency,
		Logger:           logger,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(
		availabilitySvc, loc, config.AppConfig.MaxRangeDays, logger,
	)

	routes.RegisterAvailabilityRoutes(router, availabilityHandler)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	cron.InitPrewarmWorker(availabilitySvc, loc)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
