package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"waitingwell-service/internal/app/config"
	"waitingwell-service/internal/app/delivery/http/middlewares"
	"waitingwell-service/internal/app/delivery/http/routers"
	"waitingwell-service/internal/app/drivers/database"
	"waitingwell-service/internal/app/drivers/logger"
	"waitingwell-service/internal/app/drivers/messaging"
	"waitingwell-service/internal/app/services/core/assessments"
	"waitingwell-service/internal/app/services/core/journals"
	"waitingwell-service/internal/app/services/core/onboarding"
	"waitingwell-service/internal/app/services/core/resources"
	"waitingwell-service/internal/app/services/shared/escalations"
	"waitingwell-service/internal/app/services/shared/locker"
	sharedredis "waitingwell-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Failed to close application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	escalationService, err := escalations.NewEscalationService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.EscalationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.InternalConfig, bootstrap.Logger)

	// Assessments
	assessmentRepository := assessments.NewAssessmentPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	assessmentUsecase := assessments.NewAssessmentUsecase(assessmentRepository, lockerService, escalationService, bootstrap.InternalConfig, bootstrap.Logger)
	assessmentController := assessments.NewAssessmentController(bootstrap.Logger, assessmentUsecase)

	// Onboarding
	onboardingRepository := onboarding.NewOnboardingPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	onboardingUsecase := onboarding.NewOnboardingUsecase(onboardingRepository, escalationService, bootstrap.Logger)
	onboardingController := onboarding.NewOnboardingController(bootstrap.Logger, onboardingUsecase)

	// Journals
	journalRepository := journals.NewJournalPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	journalUsecase := journals.NewJournalUsecase(journalRepository, bootstrap.Logger)
	journalController := journals.NewJournalController(bootstrap.Logger, journalUsecase)

	// Resource library
	resourceRepository := resources.NewResourcePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	resourceUsecase := resources.NewResourceUsecase(resourceRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	resourceController := resources.NewResourceController(bootstrap.Logger, resourceUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		assessmentController,
		onboardingController,
		journalController,
		resourceController,
	)
	return nil
}
