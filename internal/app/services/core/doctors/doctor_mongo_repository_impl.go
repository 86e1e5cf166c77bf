package doctors

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context, specialist string) ([]models.Doctor, error) {
	filter := bson.M{}
	if specialist != "" {
		filter["specialist"] = specialist
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctorList []models.Doctor
	if err := cursor.All(ctx, &doctorList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctorList, nil
}
