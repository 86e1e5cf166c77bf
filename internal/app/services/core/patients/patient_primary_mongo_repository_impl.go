package patients

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrimaryPatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrimaryPatientMongoRepository(db *mongo.Client, dbName string) PrimaryPatientRepository {
	return &PrimaryPatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PrimaryPatientMongoRepository) Exists(ctx context.Context, uhid string) (bool, error) {
	err := r.Collection.FindOne(ctx, bson.M{"_id": uhid}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return true, nil
}

func (r *PrimaryPatientMongoRepository) FindByUHID(ctx context.Context, uhid string) (*models.PrimaryPatientRecord, error) {
	var record models.PrimaryPatientRecord
	err := r.Collection.FindOne(ctx, bson.M{"_id": uhid}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *PrimaryPatientMongoRepository) Insert(ctx context.Context, record *models.PrimaryPatientRecord) error {
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// MergeFields performs a partial last-writer-wins merge of the editable
// identity fields; createdAt and the identifier itself are never
// rewritten.
func (r *PrimaryPatientMongoRepository) MergeFields(ctx context.Context, uhid string, fields models.PatientFields) error {
	set := bson.M{
		"name":      fields.Name,
		"phone":     fields.Phone,
		"gender":    fields.Gender,
		"updatedAt": time.Now(),
	}
	if fields.Age > 0 {
		set["age"] = fields.Age
	}
	if fields.DOB != "" {
		set["dob"] = fields.DOB
	}
	if fields.Address != "" {
		set["address"] = fields.Address
	}
	if fields.PhotoObjectName != "" {
		set["photoObjectName"] = fields.PhotoObjectName
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": uhid}, bson.M{"$set": set}, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	// A confirmed suggestion can come from the mirror registry, whose
	// identifiers are minted by other facilities; such a UHID has no
	// primary record yet and must not merge into nothing.
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotExist(nil)
	}
	return nil
}

func (r *PrimaryPatientMongoRepository) SearchByName(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"}}
	return r.search(ctx, filter, limit)
}

func (r *PrimaryPatientMongoRepository) SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error) {
	filter := bson.M{"phone": primitive.Regex{Pattern: regexp.QuoteMeta(fragment)}}
	return r.search(ctx, filter, limit)
}

func (r *PrimaryPatientMongoRepository) search(ctx context.Context, filter bson.M, limit int64) ([]models.PrimaryPatientRecord, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.PrimaryPatientRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
