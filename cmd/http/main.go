package main

import (
	"context"
	"fmt"
	"giya-service/internal/app/config"
	"giya-service/internal/app/delivery/http/controllers"
	"giya-service/internal/app/delivery/http/middlewares"
	"giya-service/internal/app/delivery/http/routers"
	"giya-service/internal/app/drivers/database"
	"giya-service/internal/app/drivers/logger"
	"giya-service/internal/app/drivers/messaging"
	"giya-service/internal/app/drivers/rbac"
	"giya-service/internal/app/drivers/storage"
	"giya-service/internal/app/services/backend"
	"giya-service/internal/app/services/core/appointments"
	"giya-service/internal/app/services/core/auth"
	"giya-service/internal/app/services/core/availability"
	"giya-service/internal/app/services/core/marketplace"
	"giya-service/internal/app/services/core/reports"
	"giya-service/internal/app/services/core/session"
	"giya-service/internal/app/services/core/toolkits"
	"giya-service/internal/app/services/core/uploads"
	"giya-service/internal/app/services/core/users"
	"giya-service/internal/app/services/shared/locker"
	"giya-service/internal/app/services/shared/notifier"
	"giya-service/internal/app/services/shared/pagecache"
	"giya-service/internal/app/services/shared/ratelimiter"
	"giya-service/internal/app/services/shared/redis"
	minioStorage "giya-service/internal/app/services/shared/storage"
	"giya-service/internal/pkg/forms"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		MongoDB:        database.NewMongoDB(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	pageCache := pagecache.NewPageCache(redisRepository, time.Duration(cfg.PageCache.TTLInSeconds)*time.Second)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, log, cfg)
	notificationQueue, err := notifier.NewService(bootstrap.RabbitMQ, log, cfg.RabbitMQ.NotificationQueue)
	if err != nil {
		return err
	}
	enforcer, err := rbac.NewRouteEnforcer()
	if err != nil {
		return err
	}

	// Backend API
	backendClient := backend.NewClient(cfg.Backend.BaseUrl, time.Duration(cfg.Backend.HTTPTimeoutInSeconds)*time.Second, log)
	authBackend := backend.NewAuthBackend(backendClient)
	usersBackend := backend.NewUsersBackend(backendClient)
	appointmentsBackend := backend.NewAppointmentsBackend(backendClient)
	schedulesBackend := backend.NewSchedulesBackend(backendClient)
	marketplaceBackend := backend.NewMarketplaceBackend(backendClient)
	toolkitsBackend := backend.NewToolkitsBackend(backendClient)

	// Repositories
	reportRepository := reports.NewReportMongoRepository(bootstrap.MongoDB)

	// Usecases
	sessionService := session.NewSessionService(redisRepository)
	authUsecase := auth.NewAuthUsecase(authBackend, usersBackend, sessionService, cfg, log)
	userUsecase := users.NewUserUsecase(usersBackend, toolkitsBackend, storageService, pageCache, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentsBackend, usersBackend, pageCache, notificationQueue, cfg, log)
	availabilityUsecase := availability.NewAvailabilityUsecase(appointmentsBackend, schedulesBackend, lockerService, pageCache, cfg, log)
	marketplaceUsecase := marketplace.NewMarketplaceUsecase(marketplaceBackend, usersBackend, reportRepository, storageService, pageCache, notificationQueue, log)
	toolkitUsecase := toolkits.NewToolkitUsecase(toolkitsBackend, storageService, pageCache, log)
	reportUsecase := reports.NewReportUsecase(reportRepository, pageCache, cfg.App.FrontendDomain, log)
	uploadUsecase := uploads.NewUploadUsecase(storageService, resourceLimiter, cfg, log)

	// Workers
	uploadWorker := uploads.NewWorker(log, cfg, lockerService, uploadUsecase)
	uploadWorker.Start(context.Background())
	bootstrap.WorkerStop = uploadWorker.Stop

	// Delivery
	binder := forms.NewBinder(int64(cfg.App.RequestBodyLimitInMegabyte) << 20)
	middlewares := middlewares.NewMiddlewares(log, authUsecase, pageCache, enforcer, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, bootstrap.AccessLogger, middlewares, &routers.Controllers{
		Auth:         controllers.NewAuthController(log, authUsecase, binder, cfg),
		User:         controllers.NewUserController(log, userUsecase, binder, cfg),
		Appointment:  controllers.NewAppointmentController(log, appointmentUsecase, binder, cfg),
		Availability: controllers.NewAvailabilityController(log, availabilityUsecase, binder, cfg),
		Marketplace:  controllers.NewMarketplaceController(log, marketplaceUsecase, binder, cfg),
		Toolkit:      controllers.NewToolkitController(log, toolkitUsecase, binder, cfg),
		Report:       controllers.NewReportController(log, reportUsecase, cfg),
		Upload:       controllers.NewUploadController(log, uploadUsecase, binder, cfg),
		Revalidate:   controllers.NewRevalidateController(log, pageCache, cfg),
	})

	return nil
}
