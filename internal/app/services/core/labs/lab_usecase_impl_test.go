package labs

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Patient, error) {
	args := m.Called(ctx, filter, opts)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) FindOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	args := m.Called(ctx, filter)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) Aggregate(ctx context.Context, pipeline []bson.M, results interface{}) error {
	args := m.Called(ctx, pipeline, results)
	return args.Error(0)
}

func (m *MockPatientRepository) Distinct(ctx context.Context, field string, filter bson.M) ([]interface{}, error) {
	args := m.Called(ctx, field, filter)
	values, _ := args.Get(0).([]interface{})
	return values, args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadJSON(ctx context.Context, payload []byte, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, payload, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	args := m.Called(ctx, queueName, payload)
	return args.Error(0)
}

var testConfig = &config.InternalConfig{
	Export: config.AppExport{
		RabbitMQQueue:                 "lab-exports",
		PresignedURLExpiryTimeInHours: 24,
	},
}

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestUsecase(repo *MockPatientRepository, storage *MockStorage, publisher *MockPublisher) *labUsecase {
	uc := &labUsecase{
		Log:               zap.NewNop(),
		PatientRepository: repo,
		InternalConfig:    testConfig,
		BucketName:        "healthcamp",
		now:               func() time.Time { return fixedNow },
	}
	if storage != nil {
		uc.Storage = storage
	}
	if publisher != nil {
		uc.Publisher = publisher
	}
	return uc
}

func labPatient() models.Patient {
	sugar := models.FlexibleNumber(5.4)
	return models.Patient{
		Name:     "Jane",
		Location: "Nairobi",
		RandomBloodSugar: &models.RandomBloodSugar{
			Sugar:            &sugar,
			StaffAttribution: models.StaffAttribution{UserEmail: "lab@camp.org", UserRole: "lab"},
		},
	}
}

func TestLabUsecase_GetLabData(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := newTestUsecase(repo, nil, nil)

	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.Patient{labPatient()}, nil)

	result, err := uc.GetLabData(context.Background(), &requests.LabData{
		PatientFilter: requests.PatientFilter{Location: "Nairobi"},
		Pagination:    requests.Pagination{Page: 1, Limit: 20},
	})

	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Contains(t, result.Records[0].Tests, constvars.LabTestBloodSugar)
	assert.Equal(t, int64(1), result.Pagination.TotalRecords)

	filter := repo.Calls[0].Arguments.Get(1).(bson.M)
	assert.Equal(t, "Nairobi", filter["location"])
	assert.Contains(t, filter, "$or")
}

func TestLabUsecase_GetLabStatistics(t *testing.T) {
	t.Run("Without Staff", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, nil, nil)

		repo.On("Aggregate", mock.Anything, mock.Anything, mock.AnythingOfType("*[]models.LabStatisticsFacets")).
			Run(func(args mock.Arguments) {
				facets := args.Get(2).(*[]models.LabStatisticsFacets)
				*facets = []models.LabStatisticsFacets{{
					Tested:     []models.CountRow{{Count: 7}},
					TestCounts: []models.LabTestCountsRow{{BloodSugar: 5, Malaria: 2}},
				}}
			}).
			Return(nil)

		stats, err := uc.GetLabStatistics(context.Background(), &requests.LabStatistics{})

		require.NoError(t, err)
		assert.Equal(t, int64(7), stats.TotalPatientsTested)
		assert.Equal(t, int64(5), stats.TestsByType.BloodSugar)
		assert.Nil(t, stats.ByStaff)
		assert.NotNil(t, stats.ByLocation)
	})

	t.Run("Staff With No Records", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, nil, nil)

		repo.On("Aggregate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		stats, err := uc.GetLabStatistics(context.Background(), &requests.LabStatistics{StaffEmail: "lab@camp.org"})

		require.NoError(t, err)
		require.NotNil(t, stats.ByStaff)
		assert.Equal(t, "lab@camp.org", stats.ByStaff.Email)
		assert.Equal(t, int64(0), stats.ByStaff.TotalPatients)
	})
}

func TestLabUsecase_CreateLabExport(t *testing.T) {
	objectName := "lab-exports/Nairobi_20240601_093000.json"

	t.Run("Storage Not Configured", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, nil, nil)

		snapshot, err := uc.CreateLabExport(context.Background(), requests.PatientFilter{})

		assert.Nil(t, snapshot)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusServiceUnavailable, customErr.StatusCode)
		repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Uploads And Announces", func(t *testing.T) {
		repo := new(MockPatientRepository)
		storage := new(MockStorage)
		publisher := new(MockPublisher)
		uc := newTestUsecase(repo, storage, publisher)

		repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.Patient{labPatient()}, nil)
		storage.On("UploadJSON", mock.Anything, mock.MatchedBy(func(payload []byte) bool {
			var document labExportDocument
			if err := json.Unmarshal(payload, &document); err != nil {
				return false
			}
			return document.RecordCount == 1 && document.Filters.Location == "Nairobi"
		}), "healthcamp", objectName).Return(objectName, nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "healthcamp", objectName, 24*time.Hour).
			Return("https://minio.local/healthcamp/"+objectName+"?sig=abc", nil)
		publisher.On("Publish", mock.Anything, "lab-exports", mock.MatchedBy(func(event labExportEvent) bool {
			return event.Event == constvars.LabExportReadyEvent && event.ObjectName == objectName && event.RecordCount == 1
		})).Return(nil)

		snapshot, err := uc.CreateLabExport(context.Background(), requests.PatientFilter{Location: "Nairobi"})

		require.NoError(t, err)
		assert.Equal(t, objectName, snapshot.ObjectName)
		assert.Equal(t, 1, snapshot.RecordCount)
		assert.Equal(t, fixedNow, snapshot.GeneratedAt)
		assert.Equal(t, fixedNow.Add(24*time.Hour), snapshot.ExpiresAt)
		assert.Contains(t, snapshot.DownloadURL, objectName)
		storage.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Still Succeeds", func(t *testing.T) {
		repo := new(MockPatientRepository)
		storage := new(MockStorage)
		publisher := new(MockPublisher)
		uc := newTestUsecase(repo, storage, publisher)

		repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.Patient{}, nil)
		storage.On("UploadJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("lab-exports/all.json", nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://minio.local/x", nil)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		snapshot, err := uc.CreateLabExport(context.Background(), requests.PatientFilter{})

		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.RecordCount)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		repo := new(MockPatientRepository)
		storage := new(MockStorage)
		publisher := new(MockPublisher)
		uc := newTestUsecase(repo, storage, publisher)
		uploadErr := exceptions.ErrMinioCreateObject(errors.New("bucket missing"), "healthcamp")

		repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.Patient{}, nil)
		storage.On("UploadJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", uploadErr)

		snapshot, err := uc.CreateLabExport(context.Background(), requests.PatientFilter{})

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, uploadErr)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}
