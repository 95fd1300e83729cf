package controllers

import (
	"net/http"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/exceptions"
	"healthcamp-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) FindFiltered(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.FindFiltered called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	request := utils.BuildPatientFilterRequest(r)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindFiltered(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) FindFirstHundred(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.FindFirstHundred called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := utils.BuildLocationScopeRequest(r)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindFirstHundred(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	request := utils.BuildPatientListRequest(r)
	err := utils.ValidateStruct(request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindAll(ctx, request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	id := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("PatientController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, id),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByIdentifier(ctx, id)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) FindByLocation(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.FindByLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	request := utils.BuildLocationPatientsRequest(r)
	err := utils.ValidateStruct(request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByLocation(ctx, request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) SearchByDiagnosis(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.SearchByDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	request := utils.BuildDiagnosisSearchRequest(r)
	err := utils.ValidateStruct(request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.SearchByDiagnosis(ctx, request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) GetHourlyRegistrations(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.GetHourlyRegistrations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := utils.BuildHourlyRegistrationsRequest(r)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.GetHourlyRegistrations(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(ctrl.Log, w, constvars.StatusOK, result)
}
