package analytics

import (
	"context"
	"sort"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/dto/responses"
	"healthcamp-service/internal/pkg/exceptions"
	"healthcamp-service/internal/pkg/queries"
	"healthcamp-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type analyticsUsecase struct {
	Log               *zap.Logger
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
}

func NewAnalyticsUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AnalyticsUsecase {
	return &analyticsUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *analyticsUsecase) GetDemographics(ctx context.Context, request *requests.LocationScope) ([]responses.DemographicsGroup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("AnalyticsUsecase.GetDemographics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	var rows []models.DemographicsRow
	err := uc.PatientRepository.Aggregate(ctx, queries.DemographicsPipeline(request.Location), &rows)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("AnalyticsUsecase.GetDemographics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return utils.ConvertDemographicsRows(rows), nil
}

func (uc *analyticsUsecase) GetLocationStats(ctx context.Context) ([]responses.LocationCount, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("AnalyticsUsecase.GetLocationStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var cached []responses.LocationCount
	if uc.readCache(ctx, constvars.RedisKeyLocationStats, &cached) {
		return cached, nil
	}

	var rows []models.LocationCountRow
	err := uc.PatientRepository.Aggregate(ctx, queries.LocationStatsPipeline(), &rows)
	if err != nil {
		return nil, err
	}
	stats := utils.ConvertLocationCountRows(rows)
	uc.writeCache(ctx, constvars.RedisKeyLocationStats, stats)

	uc.Log.Info("AnalyticsUsecase.GetLocationStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return stats, nil
}

func (uc *analyticsUsecase) GetCoverageStats(ctx context.Context, request *requests.LocationScope) (*responses.CoverageStats, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("AnalyticsUsecase.GetCoverageStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	var rows []models.CoverageRow
	err := uc.PatientRepository.Aggregate(ctx, queries.CoverageStatsPipeline(request.Location), &rows)
	if err != nil {
		return nil, err
	}
	stats := utils.ConvertCoverageRows(rows)

	uc.Log.Info("AnalyticsUsecase.GetCoverageStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, stats.TotalPatients),
	)
	return &stats, nil
}

// GetLocations lists the distinct non-empty locations in ascending order.
func (uc *analyticsUsecase) GetLocations(ctx context.Context) ([]string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("AnalyticsUsecase.GetLocations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var cached []string
	if uc.readCache(ctx, constvars.RedisKeyLocationList, &cached) {
		return cached, nil
	}

	values, err := uc.PatientRepository.Distinct(ctx, queries.FieldLocation, queries.NonEmptyLocationFilter())
	if err != nil {
		return nil, err
	}

	locations := make([]string, 0, len(values))
	for _, value := range values {
		if location, ok := value.(string); ok && location != "" {
			locations = append(locations, location)
		}
	}
	sort.Strings(locations)
	uc.writeCache(ctx, constvars.RedisKeyLocationList, locations)

	uc.Log.Info("AnalyticsUsecase.GetLocations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalRecordsKey, len(locations)),
	)
	return locations, nil
}

func (uc *analyticsUsecase) GetAnalytics(ctx context.Context, request *requests.LocationScope) (*responses.Analytics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("AnalyticsUsecase.GetAnalytics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	var results []models.AnalyticsFacets
	err := uc.PatientRepository.Aggregate(ctx, queries.AnalyticsPipeline(request.Location), &results)
	if err != nil {
		return nil, err
	}

	var facets models.AnalyticsFacets
	if len(results) > 0 {
		facets = results[0]
	}

	analytics := &responses.Analytics{
		TotalPatients:      utils.FirstCount(facets.Total),
		AgeDistribution:    utils.ConvertAgeBucketRows(facets.AgeDistribution),
		GenderDistribution: utils.ConvertGenderRows(facets.GenderDistribution),
		InsuranceCoverage:  utils.ConvertCoverageByLocationRows(facets.CoverageByLocation),
		BloodPressure:      utils.ConvertBloodPressureRows(facets.BloodPressure),
		BMIDistribution:    utils.ConvertBMIRows(facets.BMIDistribution),
		TopConditions:      utils.ConvertConditionRows(facets.TopConditions),
		TopDiagnoses:       utils.ConvertNamedDiagnosisCountRows(facets.TopDiagnoses),
	}

	uc.Log.Info("AnalyticsUsecase.GetAnalytics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, analytics.TotalPatients),
	)
	return analytics, nil
}

func (uc *analyticsUsecase) GetGeneralHealth(ctx context.Context, request *requests.GeneralHealthAnalytics) (*responses.GeneralHealthAnalytics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("AnalyticsUsecase.GetGeneralHealth called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	filter, err := queries.BuildPatientFilter(requests.PatientFilter{
		Location:  request.Location,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
	})
	if err != nil {
		return nil, err
	}

	var results []models.GeneralHealthFacets
	err = uc.PatientRepository.Aggregate(ctx, queries.GeneralHealthPipeline(filter), &results)
	if err != nil {
		return nil, err
	}

	var facets models.GeneralHealthFacets
	if len(results) > 0 {
		facets = results[0]
	}

	report := &responses.GeneralHealthAnalytics{
		TotalRecords:       utils.FirstCount(facets.Total),
		TopDiagnoses:       utils.ConvertDiagnosisCountRows(facets.TopDiagnoses),
		TopComplaints:      utils.ConvertLabelCountRows(facets.TopComplaints),
		TopTreatments:      utils.ConvertLabelCountRows(facets.TopTreatments),
		TopStaff:           utils.ConvertStaffRows(facets.TopStaff),
		ComplaintsByGender: utils.ConvertComplaintGenderRows(facets.ComplaintsByGender),
		AgeDistribution:    utils.ConvertAgeGroupRows(facets.AgeDistribution),
	}

	uc.Log.Info("AnalyticsUsecase.GetGeneralHealth succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, report.TotalRecords),
	)
	return report, nil
}

// readCache reports whether key held a value that decoded into target.
// Cache failures degrade to a miss.
func (uc *analyticsUsecase) readCache(ctx context.Context, key string, target interface{}) bool {
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("AnalyticsUsecase cache read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return false
	}
	if raw == "" {
		return false
	}

	err = json.Unmarshal([]byte(raw), target)
	if err != nil {
		uc.Log.Warn("AnalyticsUsecase cache entry is not valid JSON",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(exceptions.ErrCannotParseJSON(err)),
		)
		uc.evictCache(ctx, key)
		return false
	}
	return true
}

// evictCache drops an entry that can no longer be decoded so the next write replaces it.
func (uc *analyticsUsecase) evictCache(ctx context.Context, key string) {
	err := uc.RedisRepository.Delete(ctx, key)
	if err != nil {
		uc.Log.Warn("AnalyticsUsecase cache eviction failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}

func (uc *analyticsUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	err := uc.RedisRepository.Set(ctx, key, value, uc.InternalConfig.Cache.TTL())
	if err != nil {
		uc.Log.Warn("AnalyticsUsecase cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}
