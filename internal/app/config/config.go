package config

import (
	"patientor-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SubmissionsPerMinute:     utils.GetEnvInt("APP_SUBMISSIONS_PER_MINUTE", 30),
			SubmissionBurst:          utils.GetEnvInt("APP_SUBMISSION_BURST", 5),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		RecordAPI: RecordAPI{
			BaseUrl: utils.GetEnvString("RECORD_API_BASE_URL", "http://localhost:3001/api"),
		},
		Banner: Banner{
			VisibleDurationInSeconds: utils.GetEnvInt("APP_BANNER_VISIBLE_DURATION_IN_SECONDS", 10),
		},
		Catalog: Catalog{
			CacheTTLInMinutes: utils.GetEnvInt("APP_CATALOG_CACHE_TTL_IN_MINUTES", 15),
		},
	}
}
