package labs

import (
	"context"
	"time"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/app/models"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/dto/responses"
	"healthcamp-service/internal/pkg/exceptions"
	"healthcamp-service/internal/pkg/metrics"
	"healthcamp-service/internal/pkg/queries"
	"healthcamp-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type labUsecase struct {
	Log               *zap.Logger
	PatientRepository contracts.PatientRepository
	Storage           contracts.Storage
	Publisher         contracts.Publisher
	InternalConfig    *config.InternalConfig
	BucketName        string
	now               func() time.Time
}

// labExportDocument is the object written to storage for one export.
type labExportDocument struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Filters     requests.PatientFilter `json:"filters"`
	RecordCount int                    `json:"record_count"`
	Records     []responses.LabExport  `json:"records"`
}

// labExportEvent is published once an export object is available.
type labExportEvent struct {
	Event       string    `json:"event"`
	RequestID   string    `json:"request_id"`
	Bucket      string    `json:"bucket"`
	ObjectName  string    `json:"object_name"`
	RecordCount int       `json:"record_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewLabUsecase builds the lab reports. storage and publisher may be nil
// when their drivers are not configured.
func NewLabUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	publisher contracts.Publisher,
	internalConfig *config.InternalConfig,
	bucketName string,
) contracts.LabUsecase {
	return &labUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		Storage:           storage,
		Publisher:         publisher,
		InternalConfig:    internalConfig,
		BucketName:        bucketName,
		now:               time.Now,
	}
}

func (uc *labUsecase) GetLabData(ctx context.Context, request *requests.LabData) (*responses.LabData, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("LabUsecase.GetLabData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
		zap.Int64(constvars.LoggingPageKey, request.Page),
		zap.Int64(constvars.LoggingLimitKey, request.Limit),
	)

	filter, err := queries.BuildPatientFilter(request.PatientFilter)
	if err != nil {
		return nil, err
	}
	filter = queries.LabDataFilter(filter)

	total, err := uc.PatientRepository.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	patients, err := uc.PatientRepository.Find(ctx, filter, queries.PaginatedFindOptions(
		request.SortBy, request.SortOrder, request.Skip(), request.Limit,
	))
	if err != nil {
		return nil, err
	}

	uc.Log.Info("LabUsecase.GetLabData succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, total),
	)
	return &responses.LabData{
		Records:    utils.ConvertPatientsToLabExports(patients),
		Pagination: utils.BuildPaginationResponse(total, request.Page, request.Limit),
	}, nil
}

func (uc *labUsecase) GetLabStatistics(ctx context.Context, request *requests.LabStatistics) (*responses.LabStatistics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("LabUsecase.GetLabStatistics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
		zap.String(constvars.LoggingStaffEmailKey, request.StaffEmail),
	)

	filter, err := queries.BuildPatientFilter(requests.PatientFilter{
		Location:  request.Location,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
	})
	if err != nil {
		return nil, err
	}

	var results []models.LabStatisticsFacets
	err = uc.PatientRepository.Aggregate(ctx, queries.LabStatisticsPipeline(filter, request.StaffEmail), &results)
	if err != nil {
		return nil, err
	}

	var facets models.LabStatisticsFacets
	if len(results) > 0 {
		facets = results[0]
	}

	statistics := &responses.LabStatistics{
		TotalPatientsTested: utils.FirstCount(facets.Tested),
		ByLocation:          utils.ConvertLabLocationRows(facets.ByLocation),
	}
	if len(facets.TestCounts) > 0 {
		statistics.TestsByType = utils.ConvertLabTestCounts(facets.TestCounts[0])
	}
	if request.StaffEmail != "" {
		staff := &responses.LabStaffStatistics{Email: request.StaffEmail}
		if len(facets.ByStaff) > 0 {
			staff.TotalPatients = facets.ByStaff[0].TotalPatients
			staff.TestsByType = utils.ConvertLabTestCounts(facets.ByStaff[0].LabTestCountsRow)
		}
		statistics.ByStaff = staff
	}

	uc.Log.Info("LabUsecase.GetLabStatistics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, statistics.TotalPatientsTested),
	)
	return statistics, nil
}

// CreateLabExport writes every matching lab record to object storage and
// returns a time limited download link. The ready event is best effort.
func (uc *labUsecase) CreateLabExport(ctx context.Context, request requests.PatientFilter) (*responses.LabExportSnapshot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("LabUsecase.CreateLabExport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	if uc.Storage == nil {
		return nil, exceptions.ErrExportStorageUnavailable(nil)
	}

	snapshot, err := uc.createLabExport(ctx, request)
	metrics.RecordLabExport(err == nil)
	if err != nil {
		return nil, err
	}

	uc.publishExportReady(ctx, snapshot)

	uc.Log.Info("LabUsecase.CreateLabExport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, snapshot.Bucket),
		zap.String(constvars.LoggingObjectNameKey, snapshot.ObjectName),
		zap.Int(constvars.LoggingTotalRecordsKey, snapshot.RecordCount),
	)
	return snapshot, nil
}

func (uc *labUsecase) createLabExport(ctx context.Context, request requests.PatientFilter) (*responses.LabExportSnapshot, error) {
	filter, err := queries.BuildPatientFilter(request)
	if err != nil {
		return nil, err
	}

	patients, err := uc.PatientRepository.Find(ctx, queries.LabDataFilter(filter), queries.SortedFindOptions(
		constvars.DefaultSortBy, constvars.SortOrderDesc,
	))
	if err != nil {
		return nil, err
	}

	generatedAt := uc.now().UTC()
	records := utils.ConvertPatientsToLabExports(patients)
	payload, err := json.Marshal(labExportDocument{
		GeneratedAt: generatedAt,
		Filters:     request,
		RecordCount: len(records),
		Records:     records,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName, err := uc.Storage.UploadJSON(ctx, payload, uc.BucketName,
		utils.GenerateLabExportObjectName(request.Location, generatedAt),
	)
	if err != nil {
		return nil, err
	}

	expiry := uc.InternalConfig.Export.PresignedURLExpiry()
	downloadURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.LabExportSnapshot{
		ObjectName:  objectName,
		Bucket:      uc.BucketName,
		RecordCount: len(records),
		DownloadURL: downloadURL,
		ExpiresAt:   generatedAt.Add(expiry),
		GeneratedAt: generatedAt,
	}, nil
}

func (uc *labUsecase) publishExportReady(ctx context.Context, snapshot *responses.LabExportSnapshot) {
	if uc.Publisher == nil {
		return
	}

	requestID := utils.GetRequestID(ctx)
	queueName := uc.InternalConfig.Export.RabbitMQQueue
	err := uc.Publisher.Publish(ctx, queueName, labExportEvent{
		Event:       constvars.LabExportReadyEvent,
		RequestID:   requestID,
		Bucket:      snapshot.Bucket,
		ObjectName:  snapshot.ObjectName,
		RecordCount: snapshot.RecordCount,
		GeneratedAt: snapshot.GeneratedAt,
	})
	if err != nil {
		uc.Log.Warn("LabUsecase.CreateLabExport failed to publish export event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, queueName),
			zap.Error(err),
		)
	}
}
