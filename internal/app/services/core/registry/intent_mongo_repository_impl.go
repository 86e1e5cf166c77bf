package registry

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IntentMongoRepository keeps the outbox in the primary registry, so an
// intent survives exactly when the registry that owns the full record
// is reachable.
type IntentMongoRepository struct {
	Collection *mongo.Collection
}

func NewIntentMongoRepository(db *mongo.Client, dbName string) IntentRepository {
	return &IntentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMirrorIntents),
	}
}

func (r *IntentMongoRepository) Create(ctx context.Context, intent *models.MirrorIntent) error {
	_, err := r.Collection.InsertOne(ctx, intent)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *IntentMongoRepository) FindByID(ctx context.Context, id string) (*models.MirrorIntent, error) {
	var intent models.MirrorIntent
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&intent)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &intent, nil
}

func (r *IntentMongoRepository) FindPending(ctx context.Context, olderThan time.Time, limit int64) ([]models.MirrorIntent, error) {
	filter := bson.M{
		"status":    models.IntentStatusPending,
		"createdAt": bson.M{"$lt": olderThan},
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetLimit(limit).SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var intents []models.MirrorIntent
	if err := cursor.All(ctx, &intents); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return intents, nil
}

func (r *IntentMongoRepository) MarkComplete(ctx context.Context, id string) error {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":      models.IntentStatusComplete,
		"completedAt": now,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *IntentMongoRepository) IncrementAttempts(ctx context.Context, id string) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"attempts": 1}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
