package patients

import (
	"context"
	"time"

	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/exceptions"
	"healthcamp-service/internal/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName, collectionName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (r *PatientMongoRepository) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Patient, error) {
	defer observe("find", time.Now())

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

// FindOne returns nil without error when nothing matches.
func (r *PatientMongoRepository) FindOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	defer observe("find_one", time.Now())

	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	defer observe("count", time.Now())

	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

// Aggregate decodes every output document into results, which must be a pointer to a slice.
func (r *PatientMongoRepository) Aggregate(ctx context.Context, pipeline []bson.M, results interface{}) error {
	defer observe("aggregate", time.Now())

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, results)
	if err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}
	return nil
}

func (r *PatientMongoRepository) Distinct(ctx context.Context, field string, filter bson.M) ([]interface{}, error) {
	defer observe("distinct", time.Now())

	values, err := r.Collection.Distinct(ctx, field, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBDistinct(err)
	}
	return values, nil
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}
