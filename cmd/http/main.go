package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scolaris-service/internal/app/config"
	"scolaris-service/internal/app/delivery/http/controllers"
	"scolaris-service/internal/app/delivery/http/middlewares"
	"scolaris-service/internal/app/delivery/http/routers"
	"scolaris-service/internal/app/drivers/database"
	"scolaris-service/internal/app/drivers/logger"
	"scolaris-service/internal/app/services/core/schedules"
	"scolaris-service/internal/app/services/schoolrest/baseschedules"
	"scolaris-service/internal/app/services/schoolrest/directory"
	"scolaris-service/internal/app/services/schoolrest/scheduleexceptions"
	"scolaris-service/internal/app/services/schoolrest/terms"
	sharedredis "scolaris-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	accessLog := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLog.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		accessLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         accessLog,
		ZapLogger:      zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			accessLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		accessLog.Fatalf("Server forced to shutdown: %v", err)
	}

	err = redisClient.Close()
	if err != nil {
		accessLog.Printf("Error closing Redis: %v", err)
	}

	accessLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// School backend clients
	schoolBaseUrl := bootstrap.InternalConfig.SchoolAPI.BaseUrl
	baseScheduleClient := baseschedules.NewBaseScheduleRestClient(schoolBaseUrl)
	scheduleExceptionClient := scheduleexceptions.NewScheduleExceptionRestClient(schoolBaseUrl)
	termClient := terms.NewTermRestClient(schoolBaseUrl)
	directoryClient := directory.NewDirectoryRestClient(schoolBaseUrl)

	// Week schedule
	weekScheduleUsecase := schedules.NewWeekScheduleUsecase(
		baseScheduleClient,
		scheduleExceptionClient,
		termClient,
		directoryClient,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	timetableController := controllers.NewTimetableController(bootstrap.ZapLogger, weekScheduleUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, bootstrap.Logger, timetableController)
}
