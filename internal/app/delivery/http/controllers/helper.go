package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"healthcamp-service/internal/pkg/exceptions"
	"healthcamp-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// requestContext bounds one usecase call by the configured request timeout.
func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}

func mapUsecaseError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}

// writeError answers the routes that predate the status envelope.
func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	utils.BuildErrorResponse(log, w, mapUsecaseError(err))
}

func writeEnvelopedError(log *zap.Logger, w http.ResponseWriter, err error) {
	utils.BuildEnvelopedErrorResponse(log, w, mapUsecaseError(err))
}
