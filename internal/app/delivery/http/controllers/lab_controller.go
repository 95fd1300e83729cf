package controllers

import (
	"net/http"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/exceptions"
	"healthcamp-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type LabController struct {
	Log            *zap.Logger
	LabUsecase     contracts.LabUsecase
	InternalConfig *config.InternalConfig
}

func NewLabController(logger *zap.Logger, labUsecase contracts.LabUsecase, internalConfig *config.InternalConfig) *LabController {
	return &LabController{
		Log:            logger,
		LabUsecase:     labUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *LabController) GetLabData(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("LabController.GetLabData called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	request := utils.BuildLabDataRequest(r)
	err := utils.ValidateStruct(request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.LabUsecase.GetLabData(ctx, request)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *LabController) GetLabStatistics(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("LabController.GetLabStatistics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.LabUsecase.GetLabStatistics(ctx, utils.BuildLabStatisticsRequest(r))
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *LabController) CreateLabExport(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("LabController.CreateLabExport called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.LabUsecase.CreateLabExport(ctx, utils.BuildPatientFilterRequest(r))
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusCreated, result)
}
