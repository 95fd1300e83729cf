package exceptions

import (
	"fmt"
	"healthcamp-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevPatientNotExists)
	}
	ErrCannotParseDate = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientCannotProcessRequest), fmt.Sprintf(constvars.ErrDevCannotParseDate, value))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevCannotParseJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrExportStorageUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientExportStorageUnavailable, constvars.ErrDevServiceUnavailable)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRateLimitExceeded)
	}
	ErrRecoveredPanic = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientUnexpectedPanic), constvars.ErrDevRecoveredPanic)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBAggregate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevDBFailedToAggregate)
	}
	ErrMongoDBDistinct = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevDBFailedToDistinct)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), fmt.Sprintf(constvars.ErrDevMinioFailedToGetObjectPresignedURL, bucketName))
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevRedisDelete)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), constvars.ErrDevRedisSetData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, errorMessage(err, constvars.ErrClientSomethingWrongWithApplication), fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)
