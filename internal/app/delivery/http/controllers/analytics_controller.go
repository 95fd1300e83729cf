package controllers

import (
	"net/http"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
	InternalConfig   *config.InternalConfig
}

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase, internalConfig *config.InternalConfig) *AnalyticsController {
	return &AnalyticsController{
		Log:              logger,
		AnalyticsUsecase: analyticsUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *AnalyticsController) GetDemographics(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AnalyticsController.GetDemographics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetDemographics(ctx, utils.BuildLocationScopeRequest(r))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *AnalyticsController) GetLocationStats(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AnalyticsController.GetLocationStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetLocationStats(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *AnalyticsController) GetCoverageStats(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AnalyticsController.GetCoverageStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetCoverageStats(ctx, utils.BuildLocationScopeRequest(r))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *AnalyticsController) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AnalyticsController.GetLocations called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetLocations(ctx)
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *AnalyticsController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AnalyticsController.GetAnalytics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetAnalytics(ctx, utils.BuildLocationScopeRequest(r))
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *AnalyticsController) GetGeneralHealth(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AnalyticsController.GetGeneralHealth called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetGeneralHealth(ctx, utils.BuildGeneralHealthRequest(r))
	if err != nil {
		writeEnvelopedError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}
