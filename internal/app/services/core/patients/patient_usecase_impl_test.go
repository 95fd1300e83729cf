package patients

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
	"healthcamp-service/internal/pkg/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
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

func newTestUsecase(repo *MockPatientRepository, timezone string) *patientUsecase {
	return &patientUsecase{
		Log:               zap.NewNop(),
		PatientRepository: repo,
		InternalConfig:    &config.InternalConfig{App: config.App{Timezone: timezone}},
		now:               time.Now,
	}
}

func assertStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestPatientUsecase_FindByIdentifier(t *testing.T) {
	t.Run("Found By Object Id", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")
		objectID := primitive.NewObjectID()
		patient := &models.Patient{ID: objectID, Name: "Jane"}

		repo.On("FindOne", mock.Anything, bson.M{queries.FieldID: objectID}).Return(patient, nil)

		result, err := uc.FindByIdentifier(context.Background(), objectID.Hex())

		require.NoError(t, err)
		assert.Equal(t, patient, result)
		repo.AssertExpectations(t)
	})

	t.Run("Found By Numeric Patient Id", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")
		patient := &models.Patient{Name: "Jane"}

		repo.On("FindOne", mock.Anything, bson.M{queries.FieldPatientID: 42}).Return(patient, nil)

		result, err := uc.FindByIdentifier(context.Background(), "42")

		require.NoError(t, err)
		assert.Equal(t, patient, result)
	})

	t.Run("Unknown Id", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")

		repo.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

		result, err := uc.FindByIdentifier(context.Background(), primitive.NewObjectID().Hex())

		assert.Nil(t, result)
		assertStatusCode(t, err, http.StatusNotFound)
	})

	t.Run("Malformed Id Never Reaches The Database", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")

		result, err := uc.FindByIdentifier(context.Background(), "not-an-id")

		assert.Nil(t, result)
		assertStatusCode(t, err, http.StatusNotFound)
		repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})
}

func TestPatientUsecase_FindFiltered(t *testing.T) {
	t.Run("Filters Are Passed Through Unpaginated", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")
		patients := []models.Patient{{Name: "A"}}

		repo.On("Find", mock.Anything, bson.M{queries.FieldLocation: "Nairobi", queries.FieldGender: "female"}, (*options.FindOptions)(nil)).Return(patients, nil)

		result, err := uc.FindFiltered(context.Background(), requests.PatientFilter{Location: "Nairobi", Gender: "female"})

		require.NoError(t, err)
		assert.Equal(t, patients, result)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid Date Skips The Query", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")

		result, err := uc.FindFiltered(context.Background(), requests.PatientFilter{StartDate: "yesterday"})

		assert.Nil(t, result)
		assertStatusCode(t, err, http.StatusInternalServerError)
		repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Repository Error", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")
		dbErr := errors.New("connection reset")

		repo.On("Find", mock.Anything, bson.M{}, (*options.FindOptions)(nil)).Return(nil, dbErr)

		_, err := uc.FindFiltered(context.Background(), requests.PatientFilter{})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPatientUsecase_FindFirstHundred(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := newTestUsecase(repo, "")

	repo.On("Find", mock.Anything, bson.M{}, mock.MatchedBy(func(opts *options.FindOptions) bool {
		return opts != nil && *opts.Limit == constvars.FirstHundredSize
	})).Return([]models.Patient{{Name: "A"}, {Name: "B"}}, nil)

	result, err := uc.FindFirstHundred(context.Background(), &requests.LocationScope{})

	require.NoError(t, err)
	assert.Len(t, result, 2)
	repo.AssertExpectations(t)
}

func TestPatientUsecase_FindAll(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := newTestUsecase(repo, "")
	patients := []models.Patient{{Name: "A"}, {Name: "B"}}

	repo.On("Count", mock.Anything, bson.M{queries.FieldLocation: "Nairobi"}).Return(int64(45), nil)
	repo.On("Find", mock.Anything, bson.M{queries.FieldLocation: "Nairobi"}, mock.MatchedBy(func(opts *options.FindOptions) bool {
		return opts != nil && *opts.Skip == 20 && *opts.Limit == 10
	})).Return(patients, nil)

	result, err := uc.FindAll(context.Background(), &requests.PatientList{
		PatientFilter: requests.PatientFilter{Location: "Nairobi"},
		Pagination:    requests.Pagination{Page: 3, Limit: 10, SortOrder: constvars.SortOrderDesc},
	})

	require.NoError(t, err)
	assert.Equal(t, patients, result.Patients)
	assert.Equal(t, int64(45), result.Pagination.TotalRecords)
	assert.Equal(t, int64(5), result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrevious)
	repo.AssertExpectations(t)
}

func TestPatientUsecase_FindAll_InvalidDate(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := newTestUsecase(repo, "")

	_, err := uc.FindAll(context.Background(), &requests.PatientList{
		PatientFilter: requests.PatientFilter{StartDate: "not-a-date"},
		Pagination:    requests.Pagination{Page: 1, Limit: 10},
	})

	assertStatusCode(t, err, http.StatusInternalServerError)
	repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestPatientUsecase_FindByLocation(t *testing.T) {
	t.Run("Unknown Location", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")

		repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
		repo.On("Aggregate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := uc.FindByLocation(context.Background(), &requests.LocationPatients{
			Location:   "Nowhere",
			Pagination: requests.Pagination{Page: 1, Limit: 20},
		})

		require.NoError(t, err)
		assert.NotNil(t, result.Patients)
		assert.Empty(t, result.Patients)
		assert.Equal(t, int64(0), result.Summary.TotalPatients)
		assert.Equal(t, constvars.ZeroPercentage, result.Summary.Insurance.CoverageRate)
		assert.NotNil(t, result.Summary.TopDiagnoses)
		assert.Empty(t, result.Summary.TopDiagnoses)
		assert.False(t, result.Pagination.HasNext)
	})

	t.Run("Summary Counts", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")
		location := "Nairobi"

		repo.On("Find", mock.Anything, bson.M{queries.FieldLocation: location}, mock.Anything).
			Return([]models.Patient{{Name: "A"}}, nil)
		repo.On("Count", mock.Anything, bson.M{queries.FieldLocation: location}).Return(int64(4), nil)
		repo.On("Count", mock.Anything, queries.GenderCountFilter(location, constvars.GenderMale)).Return(int64(1), nil)
		repo.On("Count", mock.Anything, queries.GenderCountFilter(location, constvars.GenderFemale)).Return(int64(3), nil)
		repo.On("Count", mock.Anything, queries.CoveredFilter(location)).Return(int64(1), nil)
		repo.On("Count", mock.Anything, queries.NotCoveredFilter(location)).Return(int64(3), nil)
		for _, ageRange := range queries.AgeRangeCountFilters(location) {
			count := int64(0)
			if ageRange.Label == constvars.AgeGroup19To30 {
				count = 4
			}
			repo.On("Count", mock.Anything, ageRange.Filter).Return(count, nil)
		}
		repo.On("Aggregate", mock.Anything, mock.Anything, mock.AnythingOfType("*[]models.DiagnosisCountRow")).
			Run(func(args mock.Arguments) {
				rows := args.Get(2).(*[]models.DiagnosisCountRow)
				*rows = []models.DiagnosisCountRow{{ID: models.DiagnosisKey{Code: "B54", Name: "Malaria"}, Count: 2}}
			}).
			Return(nil)

		result, err := uc.FindByLocation(context.Background(), &requests.LocationPatients{
			Location:   location,
			Pagination: requests.Pagination{Page: 1, Limit: 20},
		})

		require.NoError(t, err)
		summary := result.Summary
		assert.Equal(t, int64(4), summary.TotalPatients)
		assert.Equal(t, int64(1), summary.Gender.Male)
		assert.Equal(t, int64(3), summary.Gender.Female)
		assert.Equal(t, int64(4), summary.AgeRanges.Age19To30)
		assert.Equal(t, int64(0), summary.AgeRanges.AgeOver70)
		assert.Equal(t, "25.0%", summary.Insurance.CoverageRate)
		require.Len(t, summary.TopDiagnoses, 1)
		assert.Equal(t, "Malaria", summary.TopDiagnoses[0].Name)
	})

	t.Run("Count Failure", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")
		boom := errors.New("connection reset")

		repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), boom)
		repo.On("Aggregate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := uc.FindByLocation(context.Background(), &requests.LocationPatients{
			Location:   "Nairobi",
			Pagination: requests.Pagination{Page: 1, Limit: 20},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPatientUsecase_SearchByDiagnosis(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := newTestUsecase(repo, "")

	repo.On("Aggregate", mock.Anything, mock.Anything, mock.AnythingOfType("*[]models.PaginatedPatients")).
		Run(func(args mock.Arguments) {
			page := args.Get(2).(*[]models.PaginatedPatients)
			*page = []models.PaginatedPatients{{
				Metadata: []models.CountRow{{Count: 3}},
				Data: []models.Patient{
					{GeneralHealth: &models.GeneralHealth{Diagnosis: models.NewLegacyDiagnoses("Malaria")}},
					{GeneralHealth: &models.GeneralHealth{Diagnosis: models.Diagnoses{
						{Code: "B54", Name: "Malaria, unspecified"},
						{Code: constvars.UnknownDiagnosisCode, Name: "Malaria"},
					}}},
				},
			}}
		}).
		Return(nil)

	result, err := uc.SearchByDiagnosis(context.Background(), &requests.DiagnosisSearch{
		Query:      "malaria",
		Pagination: requests.Pagination{Page: 1, Limit: 2},
	})

	require.NoError(t, err)
	assert.Len(t, result.Patients, 2)
	assert.Equal(t, int64(3), result.Pagination.TotalRecords)
	assert.True(t, result.Pagination.HasNext)
	require.Len(t, result.TopDiagnoses, 2)
	assert.Equal(t, constvars.UnknownDiagnosisCode, result.TopDiagnoses[0].Code)
	assert.Equal(t, int64(2), result.TopDiagnoses[0].Count)
}

func TestPatientUsecase_SearchByDiagnosis_NoMatches(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := newTestUsecase(repo, "")

	repo.On("Aggregate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := uc.SearchByDiagnosis(context.Background(), &requests.DiagnosisSearch{
		Query:      "zzz",
		Pagination: requests.Pagination{Page: 1, Limit: 20},
	})

	require.NoError(t, err)
	assert.NotNil(t, result.Patients)
	assert.Empty(t, result.Patients)
	assert.Equal(t, int64(0), result.Pagination.TotalRecords)
	assert.Empty(t, result.TopDiagnoses)
}

func TestPatientUsecase_GetHourlyRegistrations(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	require.NoError(t, err)

	t.Run("Empty Day", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "Africa/Nairobi")
		uc.now = func() time.Time { return time.Date(2024, 5, 31, 22, 30, 0, 0, time.UTC) }

		start := time.Date(2024, 6, 1, 0, 0, 0, 0, nairobi)
		matchesLocalDay := mock.MatchedBy(func(pipeline []bson.M) bool {
			match := pipeline[0]["$match"].(bson.M)
			window := match[queries.FieldCreatedAt].(bson.M)
			group := pipeline[1]["$group"].(bson.M)[queries.FieldID].(bson.M)["$hour"].(bson.M)
			return match[queries.FieldLocation] == "Nairobi" &&
				window["$gte"].(time.Time).Equal(start) &&
				window["$lt"].(time.Time).Equal(start.AddDate(0, 0, 1)) &&
				group["timezone"] == "Africa/Nairobi"
		})
		repo.On("Aggregate", mock.Anything, matchesLocalDay, mock.Anything).Return(nil)

		result, err := uc.GetHourlyRegistrations(context.Background(), &requests.HourlyRegistrations{Location: "Nairobi"})

		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", result.Date)
		assert.Equal(t, make([]int64, 24), result.HourlyCounts)
		assert.Equal(t, int64(0), result.TotalRegistrations)
		repo.AssertExpectations(t)
	})

	t.Run("Counts Land In Their Hour", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "")
		uc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

		repo.On("Aggregate", mock.Anything, mock.Anything, mock.AnythingOfType("*[]models.HourlyCountRow")).
			Run(func(args mock.Arguments) {
				rows := args.Get(2).(*[]models.HourlyCountRow)
				*rows = []models.HourlyCountRow{{ID: 8, Count: 3}, {ID: 14, Count: 2}}
			}).
			Return(nil)

		result, err := uc.GetHourlyRegistrations(context.Background(), &requests.HourlyRegistrations{Location: "Nairobi"})

		require.NoError(t, err)
		assert.Len(t, result.HourlyCounts, 24)
		assert.Equal(t, int64(3), result.HourlyCounts[8])
		assert.Equal(t, int64(2), result.HourlyCounts[14])
		assert.Equal(t, int64(5), result.TotalRegistrations)
	})

	t.Run("Invalid Timezone Falls Back To UTC", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "Mars/Olympus")
		uc.now = func() time.Time { return time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC) }

		repo.On("Aggregate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := uc.GetHourlyRegistrations(context.Background(), &requests.HourlyRegistrations{Location: "Nairobi"})

		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", result.Date)
	})

	t.Run("Local Timezone Is Sent As UTC", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := newTestUsecase(repo, "Local")
		uc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

		sendsUTC := mock.MatchedBy(func(pipeline []bson.M) bool {
			group := pipeline[1]["$group"].(bson.M)[queries.FieldID].(bson.M)["$hour"].(bson.M)
			return group["timezone"] == "UTC"
		})
		repo.On("Aggregate", mock.Anything, sendsUTC, mock.Anything).Return(nil)

		result, err := uc.GetHourlyRegistrations(context.Background(), &requests.HourlyRegistrations{Location: "Nairobi"})

		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", result.Date)
		repo.AssertExpectations(t)
	})
}
