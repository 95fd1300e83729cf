package contracts

import (
	"context"

	"healthcamp-service/internal/pkg/dto/requests"
	"healthcamp-service/internal/pkg/dto/responses"
)

type LabUsecase interface {
	GetLabData(ctx context.Context, request *requests.LabData) (*responses.LabData, error)
	GetLabStatistics(ctx context.Context, request *requests.LabStatistics) (*responses.LabStatistics, error)
	CreateLabExport(ctx context.Context, request requests.PatientFilter) (*responses.LabExportSnapshot, error)
}
