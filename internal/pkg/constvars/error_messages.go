package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"email":    "must be a valid email",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientExportStorageUnavailable      = "lab export storage is not configured"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientUnexpectedPanic               = "unexpected server error"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate        = "cannot parse the requested date %q"
	ErrDevValidationFailed       = "validation failed"
	ErrDevPatientNotExists       = "patient not exists in our system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServiceUnavailable     = "service temporarily unavailable"
	ErrDevRateLimitExceeded      = "rate limit exceeded"
	ErrDevRecoveredPanic         = "recovered from panic"

	// Database messages
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCountDocuments   = "failed when do count documents on database"
	ErrDevDBFailedToAggregate        = "failed when do aggregate pipeline on database"
	ErrDevDBFailedToDistinct         = "failed when do distinct on database"
	ErrDevDBEmptyAggregateResult     = "aggregate pipeline returned no document"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData   = "failed to SET data into redis"
	ErrDevRedisGetNoData = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDelete    = "failed to DEL data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
