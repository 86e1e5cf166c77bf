package main

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/delivery/http/routers"
	"intake-service/internal/app/drivers/database"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/app/drivers/messaging"
	driverstorage "intake-service/internal/app/drivers/storage"
	"intake-service/internal/app/services/core/billing"
	"intake-service/internal/app/services/core/bookings"
	"intake-service/internal/app/services/core/directory"
	"intake-service/internal/app/services/core/doctors"
	"intake-service/internal/app/services/core/identity"
	"intake-service/internal/app/services/core/patients"
	"intake-service/internal/app/services/core/registry"
	"intake-service/internal/app/services/shared/locker"
	"intake-service/internal/app/services/shared/reconciler"
	sharedredis "intake-service/internal/app/services/shared/redis"
	"intake-service/internal/app/services/shared/storage"
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

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()
	requestLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	primaryMongo := database.NewMongoDB(driverConfig.PrimaryMongo, "primary")
	mirrorMongo := database.NewMongoDB(driverConfig.MirrorMongo, "mirror")
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	stopWorker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		PrimaryMongo:   primaryMongo,
		MirrorMongo:    mirrorMongo,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		RequestLogger:  requestLog,
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
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) (stopWorker func()) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	photoStorage := storage.NewMinioStorage(bootstrap.Minio)

	intentQueue, err := reconciler.NewQueue(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Reconciler.MaxBatch)
	if err != nil {
		bootstrap.Logger.Fatal("failed to initialize reconciler queue", zap.Error(err))
	}

	// Middlewares
	mw := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		RequestLog:     bootstrap.RequestLogger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Registries
	primaryRepository := patients.NewPrimaryPatientMongoRepository(
		bootstrap.PrimaryMongo,
		bootstrap.DriverConfig.PrimaryMongo.DbName,
	)
	mirrorRepository := patients.NewMirrorPatientMongoRepository(
		bootstrap.MirrorMongo,
		bootstrap.DriverConfig.MirrorMongo.DbName,
	)
	intentRepository := registry.NewIntentMongoRepository(
		bootstrap.PrimaryMongo,
		bootstrap.DriverConfig.PrimaryMongo.DbName,
	)
	registryMirror := registry.NewRegistryMirror(
		bootstrap.Logger,
		primaryRepository,
		mirrorRepository,
		intentRepository,
		intentQueue,
		bootstrap.InternalConfig.Hospital.Name,
	)

	// Identity
	uhidAllocator := identity.NewAllocator(primaryRepository)

	// Patient
	patientUsecase := patients.NewPatientUsecase(
		bootstrap.Logger,
		uhidAllocator,
		registryMirror,
		primaryRepository,
		photoStorage,
		bootstrap.InternalConfig,
	)
	directoryUsecase := directory.NewDirectoryUsecase(primaryRepository, mirrorRepository)
	patientController := patients.NewPatientController(
		bootstrap.Logger,
		patientUsecase,
		directoryUsecase,
		bootstrap.InternalConfig,
	)

	// Doctor
	doctorRepository := doctors.NewDoctorMongoRepository(
		bootstrap.PrimaryMongo,
		bootstrap.DriverConfig.PrimaryMongo.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(
		bootstrap.Logger,
		doctorRepository,
		redisRepository,
		bootstrap.InternalConfig.Cache.DoctorTTLInSeconds,
	)
	chargeResolver := billing.NewChargeResolver(doctorUsecase)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase, chargeResolver)

	// Booking
	ledgerRepository := bookings.NewLedgerMongoRepository(
		bootstrap.PrimaryMongo,
		bootstrap.DriverConfig.PrimaryMongo.DbName,
	)
	bookingUsecase := bookings.NewBookingUsecase(
		bootstrap.Logger,
		patientUsecase,
		doctorUsecase,
		chargeResolver,
		ledgerRepository,
	)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		patientController,
		doctorController,
		bookingController,
	)

	// Mirror reconciliation worker
	worker := reconciler.NewWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		intentQueue,
		intentRepository,
		mirrorRepository,
	)
	return worker.Start(context.Background())
}
