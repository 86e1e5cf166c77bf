package bookings

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

// LedgerMongoRepository holds the whole primary registry database
// because entries land in a per-modality collection.
type LedgerMongoRepository struct {
	Database *mongo.Database
}

func NewLedgerMongoRepository(db *mongo.Client, dbName string) LedgerRepository {
	return &LedgerMongoRepository{
		Database: db.Database(dbName),
	}
}

func (r *LedgerMongoRepository) Append(ctx context.Context, entry *models.AppointmentEntry) (string, error) {
	_, err := r.Database.Collection(entry.Modality).InsertOne(ctx, entry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return entry.ID, nil
}
