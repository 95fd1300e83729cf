package contracts

import (
	"context"

	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PatientRepository is the read-only view of the patients collection.
type PatientRepository interface {
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Patient, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Patient, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Aggregate(ctx context.Context, pipeline []bson.M, results interface{}) error
	Distinct(ctx context.Context, field string, filter bson.M) ([]interface{}, error)
}

type PatientUsecase interface {
	FindFiltered(ctx context.Context, request requests.PatientFilter) ([]models.Patient, error)
	FindFirstHundred(ctx context.Context, request *requests.LocationScope) ([]models.Patient, error)
	FindAll(ctx context.Context, request *requests.PatientList) (*responses.PatientList, error)
	FindByIdentifier(ctx context.Context, id string) (*models.Patient, error)
	FindByLocation(ctx context.Context, request *requests.LocationPatients) (*responses.LocationPatients, error)
	SearchByDiagnosis(ctx context.Context, request *requests.DiagnosisSearch) (*responses.DiagnosisSearch, error)
	GetHourlyRegistrations(ctx context.Context, request *requests.HourlyRegistrations) (*responses.HourlyRegistrations, error)
}
