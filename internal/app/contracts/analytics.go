package contracts

import (
	"context"

	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	GetDemographics(ctx context.Context, request *requests.LocationScope) ([]responses.DemographicsGroup, error)
	GetLocationStats(ctx context.Context) ([]responses.LocationCount, error)
	GetCoverageStats(ctx context.Context, request *requests.LocationScope) (*responses.CoverageStats, error)
	GetLocations(ctx context.Context) ([]string, error)
	GetAnalytics(ctx context.Context, request *requests.LocationScope) (*responses.Analytics, error)
	GetGeneralHealth(ctx context.Context, request *requests.GeneralHealthAnalytics) (*responses.GeneralHealthAnalytics, error)
}
