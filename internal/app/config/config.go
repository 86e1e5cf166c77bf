package config

import (
	"intake-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PrimaryMongo: MongoDB{
			Port:     utils.GetEnvString("PRIMARY_MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("PRIMARY_MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("PRIMARY_MONGODB_DB_NAME", "hospital"),
			Username: utils.GetEnvString("PRIMARY_MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("PRIMARY_MONGODB_PASSWORD", "defaultPassword"),
		},
		MirrorMongo: MongoDB{
			Port:     utils.GetEnvString("MIRROR_MONGODB_PORT", "27018"),
			Host:     utils.GetEnvString("MIRROR_MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MIRROR_MONGODB_DB_NAME", "hospital_mirror"),
			Username: utils.GetEnvString("MIRROR_MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MIRROR_MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
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
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		Hospital: Hospital{
			Name: utils.GetEnvString("HOSPITAL_NAME", "City General Hospital"),
		},
		Minio: MinioInternal{
			BucketName:                  utils.GetEnvString("MINIO_BUCKET_NAME", "patient-photos"),
			PhotoMaxUploadSizeInMB:      utils.GetEnvInt("MINIO_PHOTO_UPLOAD_MAX_SIZE_IN_MB", 2),
			PresignedURLExpTimeInMinute: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXP_TIME_IN_MINUTE", 30),
		},
		Cache: Cache{
			DoctorTTLInSeconds: utils.GetEnvInt("CACHE_DOCTOR_TTL_IN_SECONDS", 300),
		},
		Reconciler: Reconciler{
			SweepIntervalInSeconds: utils.GetEnvInt("RECONCILER_SWEEP_INTERVAL_IN_SECONDS", 60),
			MaxAttempts:            utils.GetEnvInt("RECONCILER_MAX_ATTEMPTS", 5),
			MaxBatch:               utils.GetEnvInt("RECONCILER_MAX_BATCH", 20),
			PendingAgeInSeconds:    utils.GetEnvInt("RECONCILER_PENDING_AGE_IN_SECONDS", 30),
		},
	}
}
