package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/app/delivery/http/controllers"
	"healthcamp-service/internal/app/delivery/http/middlewares"
	"healthcamp-service/internal/app/delivery/http/routers"
	"healthcamp-service/internal/app/drivers/database"
	"healthcamp-service/internal/app/drivers/logger"
	"healthcamp-service/internal/app/drivers/messaging"
	"healthcamp-service/internal/app/drivers/storage"
	"healthcamp-service/internal/app/services/core/analytics"
	"healthcamp-service/internal/app/services/core/labs"
	"healthcamp-service/internal/app/services/core/patients"
	"healthcamp-service/internal/app/services/shared/keepalive"
	"healthcamp-service/internal/app/services/shared/notifier"
	"healthcamp-service/internal/app/services/shared/redis"
	minioStorage "healthcamp-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	zapLogger.Info("Starting healthcamp analytics service",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	err := bootstrapingTheApp(workerCtx, bootstrap, accessLog)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	stopWorkers()
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, accessLog *logrus.Logger) error {
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig

	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	} else {
		redisRepository = redis.NewNoopRepository()
	}

	// Minio
	var exportStorage contracts.Storage
	if bootstrap.Minio != nil {
		exportStorage = minioStorage.NewMinioStorage(bootstrap.Minio)
	}

	// RabbitMQ
	var exportPublisher contracts.Publisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := notifier.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Export.RabbitMQQueue)
		if err != nil {
			return err
		}
		exportPublisher = publisher
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	// Patients
	patientRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		driverConfig.MongoDB.DbName,
		driverConfig.MongoDB.Collection,
	)
	patientUsecase := patients.NewPatientUsecase(bootstrap.Logger, patientRepository, internalConfig)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, internalConfig)

	// Analytics
	analyticsUsecase := analytics.NewAnalyticsUsecase(bootstrap.Logger, patientRepository, redisRepository, internalConfig)
	analyticsController := controllers.NewAnalyticsController(bootstrap.Logger, analyticsUsecase, internalConfig)

	// Labs
	labUsecase := labs.NewLabUsecase(
		bootstrap.Logger,
		patientRepository,
		exportStorage,
		exportPublisher,
		internalConfig,
		driverConfig.Minio.BucketName,
	)
	labController := controllers.NewLabController(bootstrap.Logger, labUsecase, internalConfig)

	// Keep-alive
	keepAliveWorker := keepalive.NewWorker(bootstrap.Logger, internalConfig)
	keepAliveWorker.Start(ctx)
	bootstrap.WorkerStop = keepAliveWorker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		accessLog,
		middlewares,
		patientController,
		analyticsController,
		labController,
	)
	return nil
}
