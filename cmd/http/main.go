package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patientor-service/internal/app/config"
	"patientor-service/internal/app/delivery/http/middlewares"
	"patientor-service/internal/app/delivery/http/routers"
	"patientor-service/internal/app/drivers/database"
	"patientor-service/internal/app/drivers/logger"
	"patientor-service/internal/app/models"
	coreDiagnoses "patientor-service/internal/app/services/core/diagnoses"
	corePatients "patientor-service/internal/app/services/core/patients"
	recordDiagnoses "patientor-service/internal/app/services/record_api/diagnoses"
	recordPatients "patientor-service/internal/app/services/record_api/patients"
	"patientor-service/internal/app/services/shared/ratelimiter"
	sharedRedis "patientor-service/internal/app/services/shared/redis"
	"patientor-service/internal/app/services/shared/status"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	if err := models.VerifyEntryDispatch(); err != nil {
		logrus.Fatalf("Entry dispatch table is incomplete: %v", err)
	}

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Status banner
	statusService := status.NewStatusService(
		time.Duration(bootstrap.InternalConfig.Banner.VisibleDurationInSeconds) * time.Second,
	)
	statusController := status.NewStatusController(bootstrap.Logger, statusService)

	// Record API clients
	patientRecordClient := recordPatients.NewPatientRecordClient(bootstrap.InternalConfig.RecordAPI.BaseUrl, bootstrap.Logger)
	diagnosisRecordClient := recordDiagnoses.NewDiagnosisRecordClient(bootstrap.InternalConfig.RecordAPI.BaseUrl, bootstrap.Logger)

	// Diagnosis
	diagnosisUsecase := coreDiagnoses.NewDiagnosisUsecase(diagnosisRecordClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	diagnosisController := coreDiagnoses.NewDiagnosisController(bootstrap.Logger, diagnosisUsecase, requestTimeout)

	// Patient
	submissionLimiter := ratelimiter.NewSubmissionLimiter(
		bootstrap.InternalConfig.App.SubmissionsPerMinute,
		bootstrap.InternalConfig.App.SubmissionBurst,
	)
	patientUsecase := corePatients.NewPatientUsecase(patientRecordClient, diagnosisUsecase, statusService, bootstrap.Logger)
	patientController := corePatients.NewPatientController(bootstrap.Logger, patientUsecase, submissionLimiter, requestTimeout)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, patientController, diagnosisController, statusController)
}
