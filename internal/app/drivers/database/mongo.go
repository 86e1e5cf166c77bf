package database

import (
	"context"
	"fmt"
	"intake-service/internal/app/config"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDB connects to one registry. The primary and mirror
// registries are independently administered, so the caller dials each
// with its own config block.
func NewMongoDB(cfg config.MongoDB, registryName string) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
	)
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to %s registry: %s", registryName, err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping %s registry: %s", registryName, err.Error())
	}
	log.Printf("Successfully connected to %s registry", registryName)
	return client
}
