package patients

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
	"healthcamp-service/internal/pkg/queries"
	"healthcamp-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type patientUsecase struct {
	Log               *zap.Logger
	PatientRepository contracts.PatientRepository
	InternalConfig    *config.InternalConfig
	now               func() time.Time
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	internalConfig *config.InternalConfig,
) contracts.PatientUsecase {
	return &patientUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		InternalConfig:    internalConfig,
		now:               time.Now,
	}
}

func (uc *patientUsecase) FindFiltered(ctx context.Context, request requests.PatientFilter) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("PatientUsecase.FindFiltered called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	filter, err := queries.BuildPatientFilter(request)
	if err != nil {
		return nil, err
	}

	patients, err := uc.PatientRepository.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("PatientUsecase.FindFiltered succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (uc *patientUsecase) FindFirstHundred(ctx context.Context, request *requests.LocationScope) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("PatientUsecase.FindFirstHundred called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	patients, err := uc.PatientRepository.Find(ctx, queries.LocationFilter(request.Location), queries.FirstHundredFindOptions())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("PatientUsecase.FindFirstHundred succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context, request *requests.PatientList) (*responses.PatientList, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("PatientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPageKey, request.Page),
		zap.Int64(constvars.LoggingLimitKey, request.Limit),
	)

	filter, err := queries.BuildPatientFilter(request.PatientFilter)
	if err != nil {
		return nil, err
	}

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

	uc.Log.Info("PatientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, total),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return &responses.PatientList{
		Patients:   patients,
		Pagination: utils.BuildPaginationResponse(total, request.Page, request.Limit),
	}, nil
}

// FindByIdentifier accepts either an ObjectID hex string or a numeric patientId.
func (uc *patientUsecase) FindByIdentifier(ctx context.Context, id string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("PatientUsecase.FindByIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, id),
	)

	filter, ok := queries.PatientIdentifierFilter(id)
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	patient, err := uc.PatientRepository.FindOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	uc.Log.Info("PatientUsecase.FindByIdentifier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, id),
	)
	return patient, nil
}

func (uc *patientUsecase) FindByLocation(ctx context.Context, request *requests.LocationPatients) (*responses.LocationPatients, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("PatientUsecase.FindByLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
		zap.Int64(constvars.LoggingPageKey, request.Page),
		zap.Int64(constvars.LoggingLimitKey, request.Limit),
	)

	var patients []models.Patient
	summary := responses.LocationSummary{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := uc.PatientRepository.Find(gctx, queries.LocationFilter(request.Location), queries.PaginatedFindOptions(
			request.SortBy, request.SortOrder, request.Skip(), request.Limit,
		))
		patients = found
		return err
	})
	uc.countInto(g, gctx, bson.M{queries.FieldLocation: request.Location}, &summary.TotalPatients)
	uc.countInto(g, gctx, queries.GenderCountFilter(request.Location, constvars.GenderMale), &summary.Gender.Male)
	uc.countInto(g, gctx, queries.GenderCountFilter(request.Location, constvars.GenderFemale), &summary.Gender.Female)
	uc.countInto(g, gctx, queries.CoveredFilter(request.Location), &summary.Insurance.Covered)
	uc.countInto(g, gctx, queries.NotCoveredFilter(request.Location), &summary.Insurance.NotCovered)

	ageTargets := map[string]*int64{
		constvars.AgeGroup0To18:  &summary.AgeRanges.Age0To18,
		constvars.AgeGroup19To30: &summary.AgeRanges.Age19To30,
		constvars.AgeGroup31To50: &summary.AgeRanges.Age31To50,
		constvars.AgeGroup51To70: &summary.AgeRanges.Age51To70,
		constvars.AgeGroupOver70: &summary.AgeRanges.AgeOver70,
	}
	for _, ageRange := range queries.AgeRangeCountFilters(request.Location) {
		uc.countInto(g, gctx, ageRange.Filter, ageTargets[ageRange.Label])
	}

	var diagnosisRows []models.DiagnosisCountRow
	g.Go(func() error {
		return uc.PatientRepository.Aggregate(gctx,
			queries.TopDiagnosesPipeline(queries.LocationDiagnosesFilter(request.Location), constvars.TopLocationDiagnosesLimit),
			&diagnosisRows,
		)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if patients == nil {
		patients = make([]models.Patient, 0)
	}
	summary.Insurance.CoverageRate = utils.FormatPercentage(summary.Insurance.Covered, summary.TotalPatients)
	summary.TopDiagnoses = utils.ConvertDiagnosisCountRows(diagnosisRows)

	uc.Log.Info("PatientUsecase.FindByLocation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
		zap.Int64(constvars.LoggingTotalRecordsKey, summary.TotalPatients),
	)
	return &responses.LocationPatients{
		Location:   request.Location,
		Patients:   patients,
		Pagination: utils.BuildPaginationResponse(summary.TotalPatients, request.Page, request.Limit),
		Summary:    summary,
	}, nil
}

// countInto schedules one count query whose result lands in target.
// Each goroutine writes a distinct field, so no locking is needed.
func (uc *patientUsecase) countInto(g *errgroup.Group, ctx context.Context, filter bson.M, target *int64) {
	g.Go(func() error {
		count, err := uc.PatientRepository.Count(ctx, filter)
		if err != nil {
			return err
		}
		*target = count
		return nil
	})
}

func (uc *patientUsecase) SearchByDiagnosis(ctx context.Context, request *requests.DiagnosisSearch) (*responses.DiagnosisSearch, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("PatientUsecase.SearchByDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, request.Query),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	var results []models.PaginatedPatients
	err := uc.PatientRepository.Aggregate(ctx,
		queries.DiagnosisSearchPipeline(request.Query, request.Location, request.Skip(), request.Limit),
		&results,
	)
	if err != nil {
		return nil, err
	}

	var page models.PaginatedPatients
	if len(results) > 0 {
		page = results[0]
	}
	total := utils.FirstCount(page.Metadata)
	patients := page.Data
	if patients == nil {
		patients = make([]models.Patient, 0)
	}

	uc.Log.Info("PatientUsecase.SearchByDiagnosis succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, total),
	)
	return &responses.DiagnosisSearch{
		Patients:     patients,
		Pagination:   utils.BuildPaginationResponse(total, request.Page, request.Limit),
		TopDiagnoses: utils.TopDiagnoses(patients, constvars.TopSearchedDiagnosesLimit),
	}, nil
}

// GetHourlyRegistrations counts today's registrations per hour in the
// configured timezone.
func (uc *patientUsecase) GetHourlyRegistrations(ctx context.Context, request *requests.HourlyRegistrations) (*responses.HourlyRegistrations, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("PatientUsecase.GetHourlyRegistrations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationKey, request.Location),
	)

	loc, err := utils.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		uc.Log.Warn("PatientUsecase.GetHourlyRegistrations invalid timezone, falling back to UTC",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		loc = time.UTC
	}

	start, end := utils.LocalDayBounds(uc.now(), loc)

	var rows []models.HourlyCountRow
	err = uc.PatientRepository.Aggregate(ctx,
		queries.HourlyRegistrationsPipeline(request.Location, start, end, loc.String()),
		&rows,
	)
	if err != nil {
		return nil, err
	}

	hourly, total := utils.FillHourlyCounts(rows)

	uc.Log.Info("PatientUsecase.GetHourlyRegistrations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalRecordsKey, total),
	)
	return &responses.HourlyRegistrations{
		Location:           request.Location,
		Date:               start.Format(dateLayout),
		HourlyCounts:       hourly,
		TotalRegistrations: total,
	}, nil
}
