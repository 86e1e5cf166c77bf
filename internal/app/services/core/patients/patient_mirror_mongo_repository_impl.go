package patients

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MirrorPatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewMirrorPatientMongoRepository(db *mongo.Client, dbName string) MirrorPatientRepository {
	return &MirrorPatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMirrorPatients),
	}
}

// Upsert replaces the whole reduced record keyed by UHID, which makes
// reconciliation replays idempotent.
func (r *MirrorPatientMongoRepository) Upsert(ctx context.Context, record *models.MirrorPatientRecord) error {
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MirrorPatientMongoRepository) SearchByName(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"}}
	return r.search(ctx, filter, limit)
}

func (r *MirrorPatientMongoRepository) SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error) {
	filter := bson.M{"contact": primitive.Regex{Pattern: regexp.QuoteMeta(fragment)}}
	return r.search(ctx, filter, limit)
}

func (r *MirrorPatientMongoRepository) search(ctx context.Context, filter bson.M, limit int64) ([]models.MirrorPatientRecord, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.MirrorPatientRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
