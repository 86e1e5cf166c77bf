package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		PrimaryMongo   *mongo.Client
		MirrorMongo    *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		RequestLogger  *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		PrimaryMongo MongoDB
		MirrorMongo  MongoDB
		Redis        Redis
		RabbitMQ     RabbitMQ
		Minio        Minio
		Logger       Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App        App
		Hospital   Hospital
		Minio      MinioInternal
		Cache      Cache
		Reconciler Reconciler
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}
	Hospital struct {
		// Stamped into every mirror record, the second registry is shared
		// between facilities.
		Name string
	}
	MinioInternal struct {
		BucketName                  string
		PhotoMaxUploadSizeInMB      int
		PresignedURLExpTimeInMinute int
	}
	Cache struct {
		DoctorTTLInSeconds int
	}
	Reconciler struct {
		SweepIntervalInSeconds int
		MaxAttempts            int
		MaxBatch               int
		PendingAgeInSeconds    int
	}
)
